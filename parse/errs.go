package parse

import (
	"errors"
	"fmt"

	"github.com/sexp-format/sexp/token"
)

var (
	errInternal = errors.New("internal error")

	ErrParse = errors.New("parse error")
)

// ParseErr carries a grammar violation and the offending token's
// position. It wraps ErrParse.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func expectedErr(what string, t *token.Token) error {
	return &ParseErr{
		Err: fmt.Errorf("%w: expected %s, found %s", ErrParse, what, t.Type.Name()),
		Pos: *t.Pos,
	}
}

func unexpectedErr(t *token.Token) error {
	return &ParseErr{
		Err: fmt.Errorf("%w: unexpected %s", ErrParse, t.Type.Name()),
		Pos: *t.Pos,
	}
}
