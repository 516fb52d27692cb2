package sexp

import (
	"testing"

	"github.com/sexp-format/sexp/ir"
)

func TestApplyPatchReplace(t *testing.T) {
	doc := ir.NewList("net", 1, ir.FromString("VCC"))
	patch := []byte(`[{"op": "replace", "path": "/values/1/text", "value": "GND"}]`)
	res, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if res.ValueText(1) != "GND" {
		t.Errorf("patched doc: %s", MustString(res))
	}
	// the input is untouched
	if doc.ValueText(1) != "VCC" {
		t.Errorf("input mutated: %s", MustString(doc))
	}
}

func TestApplyPatchAdd(t *testing.T) {
	doc := ir.NewList("module", ir.NewList("pad", ir.FromString("1")))
	patch := []byte(`[{"op": "add", "path": "/values/-",
		"value": {"type": "List", "name": "pad",
			"values": [{"type": "String", "text": "2"}]}}]`)
	res, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	pads := res.FindChildren("pad")
	if len(pads) != 2 || pads[1].ValueText(0) != "2" {
		t.Errorf("patched doc: %s", MustString(res))
	}
}

func TestApplyPatchRemove(t *testing.T) {
	doc := ir.NewList("at", 1, 2, 90)
	patch := []byte(`[{"op": "remove", "path": "/values/2"}]`)
	res, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Values) != 2 {
		t.Errorf("patched doc: %s", MustString(res))
	}
}

func TestApplyPatchErrors(t *testing.T) {
	doc := ir.NewList("a")
	if _, err := ApplyPatch(doc, []byte(`{`)); err == nil {
		t.Errorf("bad patch decoded")
	}
	if _, err := ApplyPatch(doc, []byte(`[{"op": "remove", "path": "/values/7"}]`)); err == nil {
		t.Errorf("out of range remove applied")
	}
}
