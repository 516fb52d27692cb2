package parse

import (
	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the starting position of every parsed node
// into m, for editor tooling.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
