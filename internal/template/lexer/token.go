package lexer

// ----------
// Lexer Kind
// ----------

// Kind classifies a lexical unit. The enumeration is closed; the parser
// branches on it without ever re-inspecting token text.
type Kind int

const (
	StatementStart Kind = iota
	StatementEnd
	InlineStart
	InlineEnd
	CommentStart
	CommentEnd
	LineStatementPrefix
	LineCommentPrefix
	CommentData
	TemplateData
	Whitespace
	Name
	StringLit
	NumberLit
	LeftBracket
	RightBracket
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Pipe
	Assign
	Comma
	Dot
	MathOp // arithmetic operator, or splat marker ('*' / '**') in argument position
	CompareOp
	Colon
	Eof
)

// Token is a single lexical unit. Text is the exact source slice and Offset
// its byte position in the source. Value equals Text unless literal decoding
// applied: a string literal's Value is the decoded string, a number literal's
// Value is an int64 or float64.
type Token struct {
	ID     Kind
	Text   string
	Offset int
	Value  any
}

func NewToken(id Kind, text string, offset int) Token {
	return Token{
		ID:     id,
		Text:   text,
		Offset: offset,
		Value:  text,
	}
}

func NewValueToken(id Kind, text string, offset int, value any) Token {
	return Token{
		ID:     id,
		Text:   text,
		Offset: offset,
		Value:  value,
	}
}
