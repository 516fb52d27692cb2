package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/ir"
)

// Logf writes a debug trace to stderr, rendering node arguments as
// s-expressions and composite arguments as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = encode.MustString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
