package lexer

import "strings"

// scanText accumulates template text until an opening delimiter or end of
// input. When a delimiter is found after literal text has accumulated, the
// delimiter token is parked on the pending queue and the literal is emitted
// first, so emission order always matches source order.
func (l *Lexer) scanText() (Token, error) {
	start := l.cur.offset()

	for {
		at := l.cur.offset()
		ch := l.cur.next()

		if ch == eof {
			if at > start {
				return NewToken(TemplateData, l.src[start:at], start), nil
			}
			return NewToken(Eof, "", at), nil
		}

		if tok, ok := l.matchOpening(ch, at); ok {
			if at > start {
				l.pending = append(l.pending, tok)
				return NewToken(TemplateData, l.src[start:at], start), nil
			}
			return tok, nil
		}

		if ch == '\n' || ch == '\r' {
			l.lineHasText = false
		} else if !isSpace(ch) {
			l.lineHasText = true
		}
	}
}

// matchOpening probes whether ch, consumed at byte offset at, begins one of
// the configured opening delimiters. On a match the remaining delimiter
// runes are committed and the scanner transitions to the matching state.
func (l *Lexer) matchOpening(ch rune, at int) (Token, bool) {
	for _, op := range l.opening {
		if ch != op.runes[0] {
			continue
		}

		if op.id == LineStatementPrefix &&
			l.opts.LineStatementAtLineStart && l.lineHasText {
			continue
		}

		matched := true
		for i := 1; i < len(op.runes); i++ {
			if l.cur.peek(i) != op.runes[i] {
				matched = false
				break
			}
		}

		if !matched {
			continue
		}

		l.cur.skip(len(op.runes) - 1)
		l.state = op.next

		return NewToken(op.id, op.text, at), true
	}

	return Token{}, false
}

// scanStatement produces one token inside a statement or inline expression.
// terminator is empty for line statements, whose terminator is a whitespace
// run ending in a line break.
func (l *Lexer) scanStatement(terminator string, endID Kind, singleLine bool) (Token, error) {
	start := l.cur.offset()
	ch := l.cur.next()

	if ch == eof {
		return NewToken(Eof, "", start), nil
	}

	if terminator != "" && l.matchTerminator(ch, terminator) {
		l.state = stateText
		l.lineHasText = true
		return NewToken(endID, terminator, start), nil
	}

	switch {
	case ch == '(':
		return NewToken(LeftParen, "(", start), nil
	case ch == ')':
		return NewToken(RightParen, ")", start), nil
	case ch == '[':
		return NewToken(LeftBracket, "[", start), nil
	case ch == ']':
		return NewToken(RightBracket, "]", start), nil
	case ch == '{':
		return NewToken(LeftBrace, "{", start), nil
	case ch == '}':
		return NewToken(RightBrace, "}", start), nil
	case ch == ',':
		return NewToken(Comma, ",", start), nil
	case ch == '|':
		return NewToken(Pipe, "|", start), nil
	case ch == ':':
		return NewToken(Colon, ":", start), nil

	case ch == '.':
		if isDigit(l.cur.peek(1)) {
			return l.scanNumber(start, ch)
		}
		return NewToken(Dot, ".", start), nil

	case ch == '+' || ch == '-':
		// A sign directly before a digit starts a number. A bare '+'/'-'
		// stays an operator token; the parser decides whether one sitting
		// right before the terminator is a whitespace-control marker.
		if isDigit(l.cur.peek(1)) {
			return l.scanNumber(start, ch)
		}
		return NewToken(MathOp, string(ch), start), nil

	case ch == '*' || ch == '/':
		if l.cur.peek(1) == ch {
			l.cur.next()
			return NewToken(MathOp, l.src[start:l.cur.offset()], start), nil
		}
		return NewToken(MathOp, string(ch), start), nil

	case ch == '>' || ch == '<':
		if l.cur.peek(1) == '=' {
			l.cur.next()
			return NewToken(CompareOp, l.src[start:l.cur.offset()], start), nil
		}
		return NewToken(MathOp, string(ch), start), nil

	case ch == '=':
		if l.cur.peek(1) == '=' {
			l.cur.next()
			return NewToken(CompareOp, "==", start), nil
		}
		return NewToken(Assign, "=", start), nil

	case ch == '"' || ch == '\'':
		return l.scanString(start, ch)

	case isDigit(ch):
		return l.scanNumber(start, ch)

	case isSpace(ch):
		for isSpace(l.cur.peek(1)) {
			l.cur.next()
		}
		text := l.src[start:l.cur.offset()]

		// In a line statement a whitespace run reaching a line break is the
		// statement terminator, not a whitespace token.
		if singleLine && (strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r")) {
			l.state = stateText
			l.lineHasText = false
			return NewToken(endID, text, start), nil
		}

		return NewToken(Whitespace, text, start), nil

	case isAlpha(ch):
		for isAlphaNum(l.cur.peek(1)) {
			l.cur.next()
		}
		return NewToken(Name, l.src[start:l.cur.offset()], start), nil
	}

	return Token{}, syntaxErrorf(start, "invalid token: %q", ch)
}

// matchTerminator probes for a closing delimiter whose first rune ch was
// already consumed, committing the rest on success.
func (l *Lexer) matchTerminator(ch rune, terminator string) bool {
	runes := []rune(terminator)
	if ch != runes[0] {
		return false
	}

	for i := 1; i < len(runes); i++ {
		if l.cur.peek(i) != runes[i] {
			return false
		}
	}

	l.cur.skip(len(runes) - 1)

	return true
}

// scanComment accumulates comment data until the comment terminator: the
// configured comment-end delimiter for block comments, a line break for line
// comments. Accumulated data is emitted before the queued terminator token.
func (l *Lexer) scanComment(singleLine bool) (Token, error) {
	start := l.cur.offset()

	for {
		at := l.cur.offset()
		ch := l.cur.next()

		if ch == eof {
			return NewToken(Eof, "", at), nil
		}

		var end Token
		switch {
		case singleLine && ch == '\r':
			if l.cur.peek(1) == '\n' {
				l.cur.next()
			}
			end = NewToken(CommentEnd, l.src[at:l.cur.offset()], at)
		case singleLine && ch == '\n':
			end = NewToken(CommentEnd, "\n", at)
		case !singleLine && l.matchTerminator(ch, l.opts.CommentEnd):
			end = NewToken(CommentEnd, l.opts.CommentEnd, at)
		default:
			continue
		}

		l.state = stateText
		l.lineHasText = !singleLine

		if at > start {
			l.pending = append(l.pending, end)
			return NewToken(CommentData, l.src[start:at], start), nil
		}

		return end, nil
	}
}
