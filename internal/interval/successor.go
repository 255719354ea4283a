package interval

import (
	"unicode/utf8"
)

// StringSuccessor returns the string following s, for use as the step function of a range of
// strings: Must(Closed("koala", "koale")).Generate(StringSuccessor).
//
// The rightmost ASCII letter or digit is incremented; '9', 'z' and 'Z' wrap to '0', 'a' and 'A'
// and carry into the next letter or digit on the left. Other characters are left in place and
// skipped by the carry. A carry out of the leftmost letter or digit inserts '1', 'a' or 'A' in
// front of it, so "az" becomes "ba", "zz" becomes "aaa" and "a-9" becomes "b-0".
// A string without letters or digits has its last rune incremented; "" is returned unchanged.
//
// The successor is not always greater than s ("zz" < "aaa" is false), and Generate reports such a
// step as a *GeneratorOrderError.
func StringSuccessor(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	last := -1
	for i := len(b) - 1; i >= 0; i-- {
		if isAlnum(b[i]) {
			last = i
			break
		}
	}
	if last < 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		return s[:len(s)-size] + string(r+1)
	}

	leftmost := last
	for i := last; i >= 0; i-- {
		c := b[i]
		if !isAlnum(c) {
			continue
		}
		leftmost = i
		switch c {
		case '9':
			b[i] = '0'
		case 'z':
			b[i] = 'a'
		case 'Z':
			b[i] = 'A'
		default:
			b[i] = c + 1
			return string(b)
		}
	}

	var carry byte
	switch b[leftmost] {
	case '0':
		carry = '1'
	case 'a':
		carry = 'a'
	default:
		carry = 'A'
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, b[:leftmost]...)
	out = append(out, carry)
	out = append(out, b[leftmost:]...)
	return string(out)
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
