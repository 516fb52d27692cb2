package ir

import (
	"errors"
)

var (
	ErrPath = errors.New("path error")
)
