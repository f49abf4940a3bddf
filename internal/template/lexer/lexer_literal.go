package lexer

import (
	"strconv"
	"strings"
	"unicode"
)

// ------------------------
// Literal token decoding
// ------------------------

// scanString consumes a string literal whose opening quote (at byte offset
// start) was already consumed. The token's Value carries the decoded string;
// its Text keeps the raw slice, quotes included.
//
// Backslash line-continuation is not supported: a backslash before a line
// break decodes the line break literally, like any other escaped character.
func (l *Lexer) scanString(start int, quote rune) (Token, error) {
	var value strings.Builder

	for {
		at := l.cur.offset()
		ch := l.cur.next()

		switch {
		case ch == eof:
			// Unterminated string: end of input bubbles up as-is.
			return NewToken(Eof, "", at), nil

		case ch == quote:
			text := l.src[start:l.cur.offset()]
			return NewValueToken(StringLit, text, start, value.String()), nil

		case ch == '\\':
			eofSeen, err := l.decodeEscape(at, quote, &value)
			if err != nil {
				return Token{}, err
			}
			if eofSeen {
				return NewToken(Eof, "", l.cur.offset()), nil
			}

		default:
			value.WriteRune(ch)
		}
	}
}

// decodeEscape decodes one escape sequence whose backslash (at byte offset
// escOff) was already consumed, appending the decoded character to value.
func (l *Lexer) decodeEscape(escOff int, quote rune, value *strings.Builder) (eofSeen bool, err error) {
	ch := l.cur.next()

	switch {
	case ch == eof:
		return true, nil

	case ch == 'n':
		value.WriteByte('\n')
	case ch == 'r':
		value.WriteByte('\r')
	case ch == 't':
		value.WriteByte('\t')
	case ch == 'a':
		value.WriteByte('\a')
	case ch == 'b':
		value.WriteByte('\b')
	case ch == 'f':
		value.WriteByte('\f')
	case ch == 'v':
		value.WriteByte('\v')

	case ch == 'x':
		return false, l.decodeFixedEscape(escOff, 2, 'x', value)
	case ch == 'u':
		return false, l.decodeFixedEscape(escOff, 4, 'u', value)
	case ch == 'U':
		return false, l.decodeFixedEscape(escOff, 8, 'U', value)

	case isDigitRadix(ch, 8):
		code := digitVal(ch)
		for i := 0; i < 2; i++ {
			d := l.cur.next()
			if !isDigitRadix(d, 8) {
				return false, syntaxErrorf(escOff, "bad octal escape")
			}
			code = code*8 + digitVal(d)
		}
		value.WriteRune(rune(code))

	case ch == 'N':
		return false, l.decodeNamedEscape(escOff, quote, value)

	default:
		// Any other escaped character decodes to itself.
		value.WriteRune(ch)
	}

	return false, nil
}

// decodeFixedEscape decodes a fixed-width hexadecimal escape of n digits.
func (l *Lexer) decodeFixedEscape(escOff, n int, marker rune, value *strings.Builder) error {
	code := 0
	for i := 0; i < n; i++ {
		d := l.cur.next()
		if !isDigitRadix(d, 16) {
			return syntaxErrorf(escOff, "bad \\%c escape", marker)
		}
		code = code*16 + digitVal(d)
	}

	if code > unicode.MaxRune {
		return syntaxErrorf(escOff, "bad \\%c escape: code point out of range", marker)
	}

	value.WriteRune(rune(code))

	return nil
}

// decodeNamedEscape decodes \N{NAME}, resolving NAME against the Unicode
// character name table.
func (l *Lexer) decodeNamedEscape(escOff int, quote rune, value *strings.Builder) error {
	if l.cur.next() != '{' {
		return syntaxErrorf(escOff, "bad \\N escape: expected '{'")
	}

	var name strings.Builder
	for {
		ch := l.cur.next()
		if ch == '}' {
			break
		}
		if ch == eof || ch == quote {
			return syntaxErrorf(escOff, "bad \\N escape: unterminated name %q", name.String())
		}
		name.WriteRune(ch)
	}

	r, ok := lookupRuneName(name.String())
	if !ok {
		return syntaxErrorf(escOff, "bad \\N escape: unknown character name %q", name.String())
	}

	value.WriteRune(r)

	return nil
}

// scanNumber consumes a numeric literal whose first character ch (a sign, a
// leading dot, or a digit, at byte offset start) was already consumed. The
// token's Value is an int64, or a float64 when a fraction, exponent or
// leading dot is present. Non-decimal radices (0x / 0b / 0o) admit no
// fractional part.
func (l *Lexer) scanNumber(start int, ch rune) (Token, error) {
	if ch == '+' || ch == '-' {
		ch = l.cur.next() // the digit probed by the caller
	}

	if ch == '.' {
		l.consumeDigits(10)
		return l.floatToken(start)
	}

	radix := 10
	if ch == '0' {
		switch l.cur.peek(1) {
		case 'x', 'X':
			radix = 16
			l.cur.next()
		case 'b', 'B':
			radix = 2
			l.cur.next()
		case 'o', 'O':
			radix = 8
			l.cur.next()
		}
	}

	l.consumeDigits(radix)

	if radix != 10 {
		text := l.src[start:l.cur.offset()]
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return Token{}, syntaxErrorf(start, "bad number literal: %s", text)
		}
		return NewValueToken(NumberLit, text, start, v), nil
	}

	isFloat := false

	if l.cur.peek(1) == '.' {
		isFloat = true
		l.cur.next()
		l.consumeDigits(10)
	}

	if la := l.cur.peek(1); la == 'e' || la == 'E' {
		isFloat = true
		l.cur.next()
		l.consumeDigits(10)
	}

	if isFloat {
		return l.floatToken(start)
	}

	text := l.src[start:l.cur.offset()]
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, syntaxErrorf(start, "bad number literal: %s", text)
	}

	return NewValueToken(NumberLit, text, start, v), nil
}

func (l *Lexer) floatToken(start int) (Token, error) {
	text := l.src[start:l.cur.offset()]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, syntaxErrorf(start, "bad number literal: %s", text)
	}

	return NewValueToken(NumberLit, text, start, v), nil
}

func (l *Lexer) consumeDigits(radix int) {
	for isDigitRadix(l.cur.peek(1), radix) {
		l.cur.next()
	}
}
