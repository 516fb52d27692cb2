package sexp

import (
	"github.com/sexp-format/sexp/ir"

	"github.com/expr-lang/expr"
)

// Query evaluates an expression against doc and returns its result.
// The environment binds doc plus helpers over nodes: find, findall,
// text, num, name, lookup and count.
//
//	sexp.Query(doc, `text(find(doc, "pad"), 0)`)
//	sexp.Query(doc, `findall(doc, "pad") | map(num(#, 1)) | sum()`)
func Query(doc *ir.Node, src string) (any, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, map[string]any{"doc": doc})
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("find", func(params ...any) (any, error) {
			return params[0].(*ir.Node).FindChild(params[1].(string)), nil
		},
			new(func(*ir.Node, string) *ir.Node)),
		expr.Function("findall", func(params ...any) (any, error) {
			return params[0].(*ir.Node).FindChildren(params[1].(string)), nil
		},
			new(func(*ir.Node, string) []*ir.Node)),
		expr.Function("text", func(params ...any) (any, error) {
			return params[0].(*ir.Node).ValueText(params[1].(int)), nil
		},
			new(func(*ir.Node, int) string)),
		expr.Function("num", func(params ...any) (any, error) {
			n := params[0].(*ir.Node)
			i := params[1].(int)
			if i < 0 || i >= len(n.Values) || n.Values[i].Type != ir.NumberType {
				return float64(0), nil
			}
			return n.Values[i].Float64, nil
		},
			new(func(*ir.Node, int) float64)),
		expr.Function("name", func(params ...any) (any, error) {
			return params[0].(*ir.Node).Name, nil
		},
			new(func(*ir.Node) string)),
		expr.Function("lookup", func(params ...any) (any, error) {
			res, err := doc.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res, nil
		},
			new(func(string) *ir.Node)),
		expr.Function("count", func(params ...any) (any, error) {
			return len(params[0].(*ir.Node).Values), nil
		},
			new(func(*ir.Node) int)),
	}
}
