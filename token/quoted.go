package token

import (
	"fmt"
	"strings"
)

// NeedsQuote reports whether a bare value must be quoted to survive a
// round trip. Empty text, text containing whitespace, parentheses, a
// double quote or a backslash, and text that reads as a number all
// need quotes.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case ' ', '\t', '\n', '\r', '(', ')', '"', '\\':
			return true
		}
	}
	return isNumber([]byte(v))
}

// Quote renders v as a double-quoted literal, escaping backslash,
// double quote, newline, carriage return and tab.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a quoted literal, checking that v really is one.
func Unquote(v string) (string, error) {
	if len(v) == 0 || v[0] != '"' {
		return "", ErrNotQuoted
	}
	d := []byte(v)
	n := quotedLen(d)
	if n != len(d) {
		if n == -1 {
			return "", ErrUnterminated
		}
		return "", fmt.Errorf("%w: %q", ErrTrailing, string(d[n:]))
	}
	return QuotedToString(d), nil
}

// quotedLen gives the length of the quoted literal opening d, or -1
// when the closing quote is missing.
func quotedLen(d []byte) int {
	esc := false
	for i := 1; i < len(d); i++ {
		switch {
		case esc:
			esc = false
		case d[i] == '\\':
			esc = true
		case d[i] == '"':
			return i + 1
		}
	}
	return -1
}

// QuotedToString decodes the quoted literal d, which must begin with a
// double quote. The recognized escapes are \n, \r, \t, \\ and \"; a
// backslash before any other character is dropped and the character
// kept. A literal missing its closing quote decodes to everything up
// to the end of input.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		c := d[i]
		i++
		switch {
		case esc:
			esc = false
			switch c {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				// \\ and \" decode to the character itself, as
				// does any unrecognized escape.
				b.WriteByte(c)
			}
		case c == '\\':
			esc = true
		case c == '"':
			if i != len(d) {
				panic(fmt.Sprintf("internal string: trailing %q", string(d[i:])))
			}
			return b.String()
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
