package token

// isNumber reports whether d, taken whole, is an optional minus sign,
// one or more digits, and an optional fraction of a dot plus one or
// more digits. There is no exponent form.
func isNumber(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return false
	}
	d = d[digits:]
	if len(d) == 0 {
		return true
	}
	f := fract(d)
	return f == len(d)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
