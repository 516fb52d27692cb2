package sexp

import (
	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/libdiff"
)

// Diff computes a structural diff of two trees as a patch tree of
// (insert ...), (delete ...) and (replace ...) marker forms, nil when
// the trees are equal.
func Diff(from, to *ir.Node) *ir.Node {
	return libdiff.Diff(from, to)
}

// DiffString renders a character-level terminal diff of the two
// trees' serializations.
func DiffString(from, to *ir.Node) string {
	return libdiff.DiffString(MustString(from), MustString(to))
}
