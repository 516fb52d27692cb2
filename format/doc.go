// Package format names the supported document formats and converts
// trees between them.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	err = format.Encode(os.Stdout, node, f)
//
// Conversion to JSON and YAML projects a tree onto plain values: a
// list becomes an array led by its name. The projection is lossy for
// quoting; see ir.ToAny.
//
// # Related Packages
//
//   - github.com/sexp-format/sexp/parse - parse text to nodes
//   - github.com/sexp-format/sexp/encode - encode nodes to text
package format
