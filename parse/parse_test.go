package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/token"
)

type parseTest struct {
	in   string
	want *ir.Node
	e    bool
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `(module)`,
			want: ir.NewList("module"),
		},
		{
			in:   `()`,
			want: ir.NewList("list"),
		},
		{
			in:   `(at 1 2.5 -3)`,
			want: ir.NewList("at", 1, 2.5, -3),
		},
		{
			in:   `(pad "1" smd)`,
			want: ir.NewList("pad", ir.FromString("1"), ir.FromAtom("smd")),
		},
		{
			in:   `(a (b (c)))`,
			want: ir.NewList("a", ir.NewList("b", ir.NewList("c"))),
		},
		{
			// quoted name loses its quoting
			in:   `("module" 1)`,
			want: ir.NewList("module", 1),
		},
		{
			// nil reads as an empty raw string, not an absent value
			in:   `(a nil)`,
			want: ir.NewList("a", ir.FromRaw("")),
		},
		{
			// nil in name position is just a name
			in:   `(nil 3)`,
			want: ir.NewList("nil", 3),
		},
		{
			in: `
	(module  R_0402
		(at 1.27	-2.54)
	)`,
			want: ir.NewList("module", ir.FromAtom("R_0402"), ir.NewList("at", 1.27, -2.54)),
		},
		{
			// trailing tokens after the form are ignored
			in:   `(a b) extra`,
			want: ir.NewList("a", ir.FromAtom("b")),
		},
		{
			in:   `(s "a\nb\t\"c\"")`,
			want: ir.NewList("s", ir.FromString("a\nb\t\"c\"")),
		},
		{
			// number-looking words that miss the pattern stay atoms
			in:   `(v 1.2.3 12. -)`,
			want: ir.NewList("v", ir.FromAtom("1.2.3"), ir.FromAtom("12."), ir.FromAtom("-")),
		},
	}
	for _, pt := range pts {
		got, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if !ir.Equal(got, pt.want) {
			t.Errorf("%q: got %v want %v", pt.in, got, pt.want)
		}
	}
}

func TestParseErrs(t *testing.T) {
	pts := []parseTest{
		{in: ``},
		{in: `42`},
		{in: `"str"`},
		{in: `foo`},
		{in: `)`},
		{in: `(42 a)`},
		{in: `(a`},
		{in: `(a (b)`},
		{in: `("abc`},
		{in: `(`},
	}
	for _, pt := range pts {
		got, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: parsed to %v", pt.in, got)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: error %v does not wrap ErrParse", pt.in, err)
		}
		var pe *ParseErr
		if !errors.As(err, &pe) {
			t.Errorf("%q: error %T is not a ParseErr", pt.in, err)
		}
	}
}

func TestParseKinds(t *testing.T) {
	got, err := ParseString(`(a b "b" 1 nil)`)
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Type{ir.AtomType, ir.StringType, ir.NumberType, ir.RawType}
	if len(got.Values) != len(want) {
		t.Fatalf("%d values", len(got.Values))
	}
	for i, w := range want {
		if got.Values[i].Type != w {
			t.Errorf("value %d is %s want %s", i, got.Values[i].Type, w)
		}
	}
	if got.Values[2].Float64 != 1 {
		t.Errorf("number value %v", got.Values[2].Float64)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	got, err := Parse([]byte("(a\n  (b 1))"), ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	b := got.FindChild("b")
	if b == nil {
		t.Fatal("no b child")
	}
	pos := positions[b]
	if pos == nil {
		t.Fatal("no position for b")
	}
	if l, c := pos.LineCol(); l != 1 || c != 2 {
		t.Errorf("b list at line=%d col=%d", l, c)
	}
}

func TestParseErrMessage(t *testing.T) {
	_, err := Parse([]byte(`17`))
	if err == nil {
		t.Fatal("no error")
	}
	const want = "does not contain a valid s-expression"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error %q misses %q", got, want)
	}
}
