package libdiff

import (
	"strings"
	"testing"

	"github.com/sexp-format/sexp/ir"
)

func TestDiffEqual(t *testing.T) {
	a := ir.NewList("module", ir.NewList("pad", "1"), ir.NewList("pad", "2"))
	b := a.Clone()
	if d := Diff(a, b); d != nil {
		t.Errorf("equal trees diffed to %v", d)
	}
}

func TestDiffInsertDelete(t *testing.T) {
	a := ir.NewList("module",
		ir.NewList("layer", ir.FromString("F.Cu")),
		ir.NewList("pad", ir.FromString("1")))
	b := ir.NewList("module",
		ir.NewList("pad", ir.FromString("1")),
		ir.NewList("net", 1))
	d := Diff(a, b)
	if d == nil {
		t.Fatal("no diff")
	}
	if d.Name != "module" {
		t.Fatalf("diff root %q", d.Name)
	}
	if del := d.FindChild("delete"); del == nil || del.Values[0].Name != "layer" {
		t.Errorf("missing delete marker: %v", del)
	}
	if ins := d.FindChild("insert"); ins == nil || ins.Values[0].Name != "net" {
		t.Errorf("missing insert marker: %v", ins)
	}
}

func TestDiffReplaceScalar(t *testing.T) {
	a := ir.NewList("at", 1, 2)
	b := ir.NewList("at", 1, 3)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("no diff")
	}
	// a scalar change aligns as delete+insert or replace depending
	// on alignment; both carry the old and new values
	var from, to bool
	d.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.NumberType {
			return true, nil
		}
		switch n.Float64 {
		case 2:
			from = true
		case 3:
			to = true
		}
		return true, nil
	})
	if !from || !to {
		t.Errorf("diff misses old or new value: %v", d)
	}
}

func TestDiffNestedRecursion(t *testing.T) {
	a := ir.NewList("module", ir.NewList("pad", ir.FromString("1"), ir.NewList("at", 0, 0)))
	b := ir.NewList("module", ir.NewList("pad", ir.FromString("1"), ir.NewList("at", 0, 1)))
	d := Diff(a, b)
	if d == nil {
		t.Fatal("no diff")
	}
	pad := d.FindChild("pad")
	if pad == nil {
		t.Fatalf("diff did not recurse into pad: %v", d)
	}
	if at := pad.FindChild("at"); at == nil {
		t.Errorf("diff did not recurse into at: %v", pad)
	}
}

func TestDiffKindChange(t *testing.T) {
	a := ir.FromAtom("x")
	b := ir.FromString("x")
	d := Diff(a, b)
	if d == nil || d.Name != "replace" {
		t.Fatalf("kind change: %v", d)
	}
	if d.FindChild("from") == nil || d.FindChild("to") == nil {
		t.Errorf("replace marker shape: %v", d)
	}
}

func TestDiffString(t *testing.T) {
	out := DiffString("(xy 1 2)", "(xy 1 3)")
	if !strings.Contains(out, "3") || !strings.Contains(out, "2") {
		t.Errorf("diff text misses changed characters: %q", out)
	}
	if same := DiffString("(a)", "(a)"); same != "(a)" {
		t.Errorf("identical inputs: %q", same)
	}
}
