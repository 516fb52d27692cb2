package token

import (
	"errors"
)

var (
	ErrNotQuoted    = errors.New("not a quoted literal")
	ErrUnterminated = errors.New("unterminated")
	ErrTrailing     = errors.New("trailing input")
)
