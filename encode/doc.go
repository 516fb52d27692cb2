// Package encode serializes node trees to s-expression text.
//
// # Usage
//
//	node := ir.NewList("pad", ir.FromString("1"), ir.FromAtom("smd"))
//	err := encode.Encode(node, os.Stdout)
//
//	// single line, no layout
//	s := encode.MustString(node, encode.EncodePretty(false))
//
// Layout is chosen per node: forms whose single-line rendering fits
// the configured width stay on one line, everything else breaks one
// child per indented line with the closing parenthesis attached to
// the last child.
//
// # Related Packages
//
//   - github.com/sexp-format/sexp/ir - node representation
//   - github.com/sexp-format/sexp/parse - parse text to nodes
package encode
