package token

import (
	"fmt"
)

type TokenType int

const (
	TLParen = iota
	TRParen
	TString
	TNumber
	TSymbol
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen: "TLParen",
		TRParen: "TRParen",
		TString: "TString",
		TNumber: "TNumber",
		TSymbol: "TSymbol",
		TEOF:    "TEOF",
	}[t]
}

// Name is the token kind as it appears in error messages.
func (t TokenType) Name() string {
	return map[TokenType]string{
		TLParen: "'('",
		TRParen: "')'",
		TString: "string",
		TNumber: "number",
		TSymbol: "symbol",
		TEOF:    "end of input",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String gives the token's text with string literals decoded.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// TokenizeErr is part of the error vocabulary for symmetry with parse
// errors. Tokenizing is total, so the tokenizer itself never returns
// one; it is raised only by Unquote on input that is not a quoted
// literal.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
