// Package template recognizes delimiter-based template notation and turns a
// source text into a flat document of typed elements: literal text, block or
// line statements, and inline expressions. It is a scanning layer only; no
// directive is executed and no expression is evaluated.
package template

import (
	"github.com/pacer/slate/internal/template/lexer"
	"github.com/pacer/slate/internal/template/parser"
)

// Config carries the delimiter strings and the token ignore set for a parse.
// The zero value disables everything; start from DefaultConfig.
type Config struct {
	BlockStart   string
	BlockEnd     string
	InlineStart  string
	InlineEnd    string
	CommentStart string
	CommentEnd   string

	// LineStatementPrefix and LineCommentPrefix introduce single-line
	// variants terminated by a line break. Empty disables them.
	LineStatementPrefix string
	LineCommentPrefix   string

	// RequireLineStatementAtLineStart rejects a line-statement prefix found
	// after non-whitespace text on its line, leaving it as literal text.
	RequireLineStatementAtLineStart bool

	// Ignore lists the token kinds dropped before they reach the parser.
	Ignore []lexer.Kind
}

// DefaultConfig returns the standard delimiters ('{%...%}', '{{...}}',
// '{#...#}', no line prefixes) and an ignore set hiding whitespace and
// comment content from the parser.
func DefaultConfig() Config {
	return Config{
		BlockStart:   "{%",
		BlockEnd:     "%}",
		InlineStart:  "{{",
		InlineEnd:    "}}",
		CommentStart: "{#",
		CommentEnd:   "#}",
		Ignore: []lexer.Kind{
			lexer.Whitespace,
			lexer.CommentStart,
			lexer.CommentData,
			lexer.CommentEnd,
			lexer.LineCommentPrefix,
		},
	}
}

// Parse scans and parses source using the default configuration.
func Parse(source string) (*parser.Document, error) {
	return DefaultConfig().Parse(source)
}

// Parse scans and parses source. Each call owns a fresh lexer and parser;
// calls are independent and safe to run concurrently.
func (c Config) Parse(source string) (*parser.Document, error) {
	lx := lexer.New(source, lexer.Options{
		BlockStart:               c.BlockStart,
		BlockEnd:                 c.BlockEnd,
		InlineStart:              c.InlineStart,
		InlineEnd:                c.InlineEnd,
		CommentStart:             c.CommentStart,
		CommentEnd:               c.CommentEnd,
		LineStatementPrefix:      c.LineStatementPrefix,
		LineCommentPrefix:        c.LineCommentPrefix,
		LineStatementAtLineStart: c.RequireLineStatementAtLineStart,
		Ignore:                   c.Ignore,
	})

	return parser.New(lx).Document()
}
