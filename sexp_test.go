package sexp

import (
	"testing"

	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/ir"
)

func roundTripTrees() []*ir.Node {
	board := ir.NewList("kicad_pcb",
		ir.NewList("version", 20221018),
		ir.NewList("general", ir.NewList("thickness", 1.6)),
		ir.NewList("net", 0, ir.FromString("")),
		ir.NewList("net", 1, ir.FromString("GND")))
	mod := ir.NewList("module", ir.FromAtom("R_0805"))
	mod.AppendList("layer", ir.FromString("F.Cu"))
	pad := mod.AppendList("pad", ir.FromString("1"), ir.FromAtom("smd"), ir.FromAtom("rect"))
	pad.AppendList("at", 1.27, 0, 90)
	pad.AppendList("size", 1, 1.25)
	return []*ir.Node{
		ir.NewList("list"),
		ir.NewList("xy", 1, 2),
		ir.NewList("s", ir.FromString("a b"), ir.FromString("42"), ir.FromAtom("plain")),
		ir.NewList("esc", ir.FromString("line1\nline2\t\"quoted\"")),
		board,
		mod,
	}
}

func TestRoundTrip(t *testing.T) {
	optSets := [][]encode.EncodeOption{
		nil,
		{encode.EncodePretty(false)},
		{encode.EncodeWidth(20)},
		{encode.EncodeCompact(false)},
		{encode.EncodeIndent("\t"), encode.EncodeWidth(1)},
	}
	for _, tree := range roundTripTrees() {
		for i, opts := range optSets {
			text := MustString(tree, opts...)
			back, err := ParseString(text)
			if err != nil {
				t.Fatalf("opts %d: parse(%q): %v", i, text, err)
			}
			if !ir.Equal(tree, back) {
				t.Errorf("opts %d: round trip of %s gave %s",
					i, MustString(tree), MustString(back))
			}
		}
	}
}

func TestEscapingRoundTrip(t *testing.T) {
	tree := ir.NewList("s", ir.FromString("a\nb\tc\"d"))
	text := MustString(tree)
	if got, want := text, "(s \"a\\nb\\tc\\\"d\")"; got != want {
		t.Fatalf("serialization %q, want %q", got, want)
	}
	back, err := ParseString(text)
	if err != nil {
		t.Fatal(err)
	}
	if back.Values[0].Text != "a\nb\tc\"d" {
		t.Errorf("decoded %q", back.Values[0].Text)
	}
}

func TestEmptyListForm(t *testing.T) {
	tree, err := ParseString("()")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Name != "list" || len(tree.Values) != 0 {
		t.Fatalf("() parsed to %v", tree)
	}
	if got := MustString(tree); got != "(list)" {
		t.Errorf("serialized %q", got)
	}
}

func TestNilAsymmetry(t *testing.T) {
	// absent serializes to the bare token nil...
	out := MustString(ir.NewList("a", nil))
	if out != "(a nil)" {
		t.Fatalf("null rendering: %q", out)
	}
	// ...but parses back as an empty raw legacy string, not as an
	// absent value
	back, err := ParseString(out)
	if err != nil {
		t.Fatal(err)
	}
	v := back.Values[0]
	if v.Type != ir.RawType || v.Text != "" {
		t.Errorf("nil parsed to %s %q", v.Type, v.Text)
	}
}

func TestQuotedNameLoss(t *testing.T) {
	tree, err := ParseString(`("module" (pad "1"))`)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Name != "module" {
		t.Fatalf("name %q", tree.Name)
	}
	// the quoting of the name is gone on re-serialization
	if got := MustString(tree, encode.EncodePretty(false)); got != `(module (pad "1"))` {
		t.Errorf("re-serialized %q", got)
	}
}
