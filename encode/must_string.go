package encode

import (
	"bytes"
	"strings"

	"github.com/sexp-format/sexp/ir"
)

// MustString gives node's serialization without the trailing newline.
// Encoding to a buffer cannot fail on well-formed input, so any error
// panics.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
