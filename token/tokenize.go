package token

// Tokenize appends the tokens of src to dst and returns the result,
// ending with exactly one TEOF token. It never fails: input that fits
// no other rule comes out as symbol tokens for the parser to judge.
//
// Whitespace separates tokens. '(' and ')' are always single-character
// tokens. A double quote opens a string literal running to the next
// unescaped double quote, or to the end of input when unterminated.
// Every other maximal run of characters up to whitespace or a
// parenthesis is a number token when it reads as one and a symbol
// token otherwise.
func Tokenize(dst []Token, src []byte) []Token {
	doc := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '"':
			ln := quotedLen(src[i:])
			if ln == -1 {
				ln = n - i
			}
			dst = append(dst, Token{Type: TString, Pos: doc.Pos(i), Bytes: src[i : i+ln]})
			i += ln
		default:
			j := i + 1
			for j < n && !isSpace(src[j]) && src[j] != '(' && src[j] != ')' {
				j++
			}
			word := src[i:j]
			typ := TokenType(TSymbol)
			if isNumber(word) {
				typ = TNumber
			}
			dst = append(dst, Token{Type: typ, Pos: doc.Pos(i), Bytes: word})
			i = j
		}
	}
	dst = append(dst, Token{Type: TEOF, Pos: doc.end()})
	return dst
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
