// Package parse parses s-expression text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`(module R_0402 (at 1.27 -2.54))`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`(pad "1" smd)`)
//
// The parser is recursive descent with a single token of lookahead
// and no backtracking. The top level must be a parenthesized form.
// All grammar violations wrap ErrParse; errors render the expected
// and found token kinds and the offending position.
//
// Two behaviors are intentional and kept for compatibility: a quoted
// name token loses its quoting, and the symbol nil parses to an empty
// raw string value rather than an absent value.
//
// # Related Packages
//
//   - github.com/sexp-format/sexp/ir - IR representation
//   - github.com/sexp-format/sexp/encode - Encode IR to text
//   - github.com/sexp-format/sexp/token - Tokenization
package parse
