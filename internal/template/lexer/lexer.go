package lexer

import (
	"fmt"
	"slices"
)

// ----------------------
// Lexer Types definition
// ----------------------

// state identifies the scanner's lexical state. Each state has exactly one
// scan function; transitions happen at delimiter matches.
type state int

const (
	stateText state = iota
	stateBlock
	stateComment
	stateLineStatement
	stateLineComment
	stateInline
)

// Options configures a Lexer. Empty delimiter strings disable the
// corresponding construct (typically the two line prefixes).
type Options struct {
	BlockStart   string
	BlockEnd     string
	InlineStart  string
	InlineEnd    string
	CommentStart string
	CommentEnd   string

	LineStatementPrefix string
	LineCommentPrefix   string

	// LineStatementAtLineStart restricts a line-statement prefix to lines
	// holding nothing but whitespace before it. When unset, the prefix is
	// recognized anywhere in template text.
	LineStatementAtLineStart bool

	// Ignore lists token kinds silently dropped before they reach the
	// caller, both for consumption and lookahead.
	Ignore []Kind
}

// Lexer is a single-pass scanner over one source text. It is stateful and
// scoped to one parse; distinct parses get distinct instances.
type Lexer struct {
	src string
	cur *cursor

	opts    Options
	opening []openDelimiter
	ignored map[Kind]bool

	state state

	// pending holds tokens recognized ahead of emission order, e.g. a
	// delimiter found while literal text was still buffered. They replay
	// FIFO before scanning resumes.
	pending []Token

	// la buffers filtered tokens produced for lookahead but not yet consumed.
	la []Token

	// lineHasText tracks whether the current source line already carries
	// non-whitespace content, for the LineStatementAtLineStart rule.
	lineHasText bool
}

// openDelimiter pairs an opening delimiter string with the token it emits
// and the state it activates.
type openDelimiter struct {
	runes []rune
	text  string
	id    Kind
	next  state
}

// New builds a Lexer over source. The source is assumed fully resident in
// memory; the lexer performs no I/O.
func New(source string, opts Options) *Lexer {
	lx := &Lexer{
		src:     source,
		cur:     newCursor(source),
		opts:    opts,
		ignored: make(map[Kind]bool, len(opts.Ignore)),
	}

	for _, id := range opts.Ignore {
		lx.ignored[id] = true
	}

	openings := []openDelimiter{
		{text: opts.BlockStart, id: StatementStart, next: stateBlock},
		{text: opts.InlineStart, id: InlineStart, next: stateInline},
		{text: opts.CommentStart, id: CommentStart, next: stateComment},
		{text: opts.LineStatementPrefix, id: LineStatementPrefix, next: stateLineStatement},
		{text: opts.LineCommentPrefix, id: LineCommentPrefix, next: stateLineComment},
	}

	for _, op := range openings {
		if op.text == "" {
			continue
		}
		op.runes = []rune(op.text)
		lx.opening = append(lx.opening, op)
	}

	// Longer delimiters probe first so that one shadowing a shorter one still
	// wins, e.g. a '##' line comment next to a '#' line statement.
	slices.SortStableFunc(lx.opening, func(a, b openDelimiter) int {
		return len(b.runes) - len(a.runes)
	})

	return lx
}

// NextToken consumes and returns the next non-ignored token.
func (l *Lexer) NextToken() (Token, error) {
	if len(l.la) > 0 {
		tok := l.la[0]
		l.la = l.la[1:]
		return tok, nil
	}

	for {
		tok, err := l.scan()
		if err != nil {
			return Token{}, err
		}

		if l.ignored[tok.ID] {
			continue
		}

		return tok, nil
	}
}

// LA returns the k-th upcoming non-ignored token (k >= 1) without consuming
// it. The lookahead depth is unbounded.
func (l *Lexer) LA(k int) (Token, error) {
	if k < 1 {
		panic("token lookahead distance must be at least 1")
	}

	for len(l.la) < k {
		tok, err := l.scan()
		if err != nil {
			return Token{}, err
		}

		if l.ignored[tok.ID] {
			continue
		}

		l.la = append(l.la, tok)
	}

	return l.la[k-1], nil
}

// scan produces one raw token, replaying pending tokens first.
func (l *Lexer) scan() (Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}

	switch l.state {
	case stateText:
		return l.scanText()
	case stateBlock:
		return l.scanStatement(l.opts.BlockEnd, StatementEnd, false)
	case stateLineStatement:
		return l.scanStatement("", StatementEnd, true)
	case stateInline:
		return l.scanStatement(l.opts.InlineEnd, InlineEnd, false)
	case stateComment:
		return l.scanComment(false)
	case stateLineComment:
		return l.scanComment(true)
	}

	panic(fmt.Sprintf("unknown lexer state %d", l.state))
}

// SyntaxError reports a character or escape sequence that cannot form a
// valid token. The error is fatal; the lexer does not recover. Offset is a
// byte offset into the source.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s @ %d", e.Msg, e.Offset)
}

func syntaxErrorf(offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: offset,
	}
}
