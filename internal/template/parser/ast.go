package parser

import "github.com/pacer/slate/internal/template/lexer"

// --------------
// Document model
// --------------

// Document is the ordered, flat element sequence produced by one parse. It
// holds no reference back to the lexer; it is a plain value for the caller.
type Document struct {
	Elements []Element
}

// Element is one of *TextElement, *StatementElement or *InlineElement.
type Element interface {
	element()
}

// TextElement is a literal run of source characters outside any directive.
type TextElement struct {
	Text   string
	Offset int
}

// StatementElement is a block or line statement. Command is always a name
// token's text; the argument tokens run up to, but exclude, the terminator.
// LeftTrim and RightTrim hold a whitespace-control marker ("+" or "-"),
// empty when absent; only block statements can carry them.
type StatementElement struct {
	LeftTrim  string
	Command   string
	Tokens    []lexer.Token
	RightTrim string
}

// InlineElement is an inline expression: the ordered tokens between the
// inline delimiters, left for a downstream renderer to evaluate.
type InlineElement struct {
	Tokens []lexer.Token
}

func (*TextElement) element()      {}
func (*StatementElement) element() {}
func (*InlineElement) element()    {}
