package sexp

import (
	"testing"

	"github.com/sexp-format/sexp/ir"
)

func queryDoc(t *testing.T) *ir.Node {
	t.Helper()
	doc, err := ParseString(`(module
		(layer "F.Cu")
		(pad "1" smd (at 1.27 0))
		(pad "2" smd (at 3.81 0)))`)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestQuery(t *testing.T) {
	doc := queryDoc(t)
	qts := []struct {
		src  string
		want any
	}{
		{`name(doc)`, "module"},
		{`count(doc)`, 3},
		{`text(find(doc, "pad"), 0)`, "1"},
		{`len(findall(doc, "pad"))`, 2},
		{`num(find(find(doc, "pad"), "at"), 0)`, 1.27},
		{`text(lookup("pad[1]"), 0)`, "2"},
		{`name(doc) + "/" + text(find(doc, "layer"), 0)`, "module/F.Cu"},
	}
	for _, qt := range qts {
		got, err := Query(doc, qt.src)
		if err != nil {
			t.Fatalf("%s: %v", qt.src, err)
		}
		if got != qt.want {
			t.Errorf("%s: got %v (%T), want %v", qt.src, got, got, qt.want)
		}
	}
}

func TestQueryNodes(t *testing.T) {
	doc := queryDoc(t)
	got, err := Query(doc, `findall(doc, "pad")`)
	if err != nil {
		t.Fatal(err)
	}
	pads, ok := got.([]*ir.Node)
	if !ok || len(pads) != 2 {
		t.Fatalf("got %T %v", got, got)
	}
	if pads[0].ValueText(0) != "1" || pads[1].ValueText(0) != "2" {
		t.Errorf("pad order: %q %q", pads[0].ValueText(0), pads[1].ValueText(0))
	}
}

func TestQueryCompileError(t *testing.T) {
	doc := queryDoc(t)
	if _, err := Query(doc, `find(`); err == nil {
		t.Errorf("bad expression compiled")
	}
}
