// Package sexp is a codec for a parenthesized symbolic notation: a
// tree of named nodes whose children are typed scalar or nested
// values, as used by structured hardware-design file formats.
//
// # Usage
//
//	doc, err := sexp.ParseString(`(module (pad "1" smd (at 1.27 0)))`)
//	doc.FindChild("pad").AppendList("size", 1, 1)
//	fmt.Println(sexp.MustString(doc))
//
// The subpackages hold the pipeline: token scans text, parse builds
// ir trees, encode lays them out again. This package re-exports the
// two entry points and adds querying, diffing and JSON patching over
// whole documents.
package sexp

import (
	"io"

	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/parse"
)

// Parse parses one s-expression document from d.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString parses one s-expression document from s.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// Encode writes node to w under the given options.
func Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// MustString gives node's serialization as a string.
func MustString(node *ir.Node, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}
