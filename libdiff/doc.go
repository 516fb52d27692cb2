// Package libdiff provides diff computation for s-expression trees.
//
// # Usage
//
//	// structural diff as a patch tree, nil when equal
//	patch := libdiff.Diff(oldNode, newNode)
//
//	// character level diff of two serializations
//	text := libdiff.DiffString(oldText, newText)
//
// Structural diffs are themselves trees, built from the marker forms
// (insert ...), (delete ...) and (replace (from ...) (to ...)) nested
// along the matching child structure.
//
// # Related Packages
//
//   - github.com/sexp-format/sexp/ir - node representation
//   - github.com/sexp-format/sexp/encode - node serialization
package libdiff
