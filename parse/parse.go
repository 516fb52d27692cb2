// Package parse provides s-expression parsing support.
package parse

import (
	"fmt"
	"strconv"

	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/token"
)

// Parse parses one s-expression from d. The top-level value must be a
// parenthesized form; a bare scalar at the top level is a parse
// error. Tokens past the closing parenthesis of the form are ignored.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks := token.Tokenize(nil, d)
	pi := 0
	if toks[pi].Type != token.TLParen {
		return nil, &ParseErr{
			Err: fmt.Errorf("%w: input does not contain a valid s-expression", ErrParse),
			Pos: *toks[pi].Pos,
		}
	}
	return parseList(toks, &pi, pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

// parseList consumes a parenthesized form, with toks[*pi] the opening
// parenthesis.
func parseList(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	open := &toks[*pi]
	*pi++
	t := &toks[*pi]
	if t.Type == token.TRParen {
		// () is an anonymous empty list
		*pi++
		res := ir.NewList("list")
		trackPos(res, open.Pos, opts)
		return res, nil
	}
	if t.Type != token.TSymbol && t.Type != token.TString {
		return nil, expectedErr("a name symbol or string", t)
	}
	// a quoted name keeps only its text; the quoting is not
	// preserved on round trip
	res := ir.NewList(t.String())
	trackPos(res, open.Pos, opts)
	*pi++
	for {
		t = &toks[*pi]
		switch t.Type {
		case token.TRParen:
			*pi++
			return res, nil
		case token.TEOF:
			return nil, expectedErr("')'", t)
		}
		child, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		res.Append(child)
	}
}

// parseValue consumes one child value.
func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TLParen:
		return parseList(toks, pi, opts)
	case token.TString:
		*pi++
		sy := ir.FromString(t.String())
		trackPos(sy, t.Pos, opts)
		return sy, nil
	case token.TNumber:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %v", errInternal, string(t.Bytes), err)
		}
		ny := ir.FromFloat(f)
		trackPos(ny, t.Pos, opts)
		return ny, nil
	case token.TSymbol:
		*pi++
		// the symbol nil reads as an empty raw string, not as an
		// absent value
		if string(t.Bytes) == "nil" {
			ry := ir.FromRaw("")
			trackPos(ry, t.Pos, opts)
			return ry, nil
		}
		ay := ir.FromAtom(t.String())
		trackPos(ay, t.Pos, opts)
		return ay, nil
	default:
		return nil, unexpectedErr(t)
	}
}
