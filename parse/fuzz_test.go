package parse

import (
	"bytes"
	"testing"

	"github.com/sexp-format/sexp/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		`()`,
		`(a)`,
		`(list 1 2 3)`,
		`(module R_0402 (layer F.Cu))`,
		`(at 1.27 -2.54 90)`,
		`(pad "1" smd rect)`,
		`(property "Reference" "R1")`,
		`(s "with\nnewline")`,
		`(s "with\ttab")`,
		`(s "with \"quotes\"")`,
		`(a nil)`,
		`("quoted name" 1)`,
		`(a (b (c (d))))`,

		// Broken input
		`(`,
		`)`,
		`42`,
		`(a "unterminated`,
		`(a ))`,
		`((a)`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// Secondary: if parse succeeds, encode should not panic
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			t.Fatalf("encode after parse: %v", err)
		}

		// Tertiary: encoded output must parse again
		if _, err := Parse(buf.Bytes()); err != nil {
			t.Fatalf("re-parse of %q: %v", buf.String(), err)
		}
	})
}
