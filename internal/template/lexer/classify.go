package lexer

import "unicode"

// Character classification for the statement sub-lexer. Identifiers are
// ASCII; whitespace follows the Unicode White_Space property, which covers
// the separator code points the grammar names (NBSP, ogham space mark, the
// en-quad..hair-space run, line/paragraph separators, narrow NBSP, MMSP,
// ideographic space) on top of ASCII space and controls 9-13.

func isSpace(ch rune) bool {
	return ch != eof && unicode.IsSpace(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// isDigitRadix reports whether ch is a digit of the given radix (2, 8, 10
// or 16).
func isDigitRadix(ch rune, radix int) bool {
	switch radix {
	case 2:
		return ch == '0' || ch == '1'
	case 8:
		return '0' <= ch && ch <= '7'
	case 10:
		return isDigit(ch)
	case 16:
		return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
	}

	panic("bad radix")
}

// digitVal returns the numeric value of a (hexadecimal) digit, -1 otherwise.
func digitVal(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10
	}

	return -1
}

func isAlpha(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isAlphaNum(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
