package lexer

import (
	"fmt"
	"strings"
)

var kindNames = [...]string{
	StatementStart:      "StatementStart",
	StatementEnd:        "StatementEnd",
	InlineStart:         "InlineStart",
	InlineEnd:           "InlineEnd",
	CommentStart:        "CommentStart",
	CommentEnd:          "CommentEnd",
	LineStatementPrefix: "LineStatementPrefix",
	LineCommentPrefix:   "LineCommentPrefix",
	CommentData:         "CommentData",
	TemplateData:        "TemplateData",
	Whitespace:          "Whitespace",
	Name:                "Name",
	StringLit:           "StringLit",
	NumberLit:           "NumberLit",
	LeftBracket:         "LeftBracket",
	RightBracket:        "RightBracket",
	LeftParen:           "LeftParen",
	RightParen:          "RightParen",
	LeftBrace:           "LeftBrace",
	RightBrace:          "RightBrace",
	Pipe:                "Pipe",
	Assign:              "Assign",
	Comma:               "Comma",
	Dot:                 "Dot",
	MathOp:              "MathOp",
	CompareOp:           "CompareOp",
	Colon:               "Colon",
	Eof:                 "Eof",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

func (t Token) String() string {
	if str, ok := t.Value.(string); !ok || str != t.Text {
		return fmt.Sprintf(
			`{ "ID": "%s", "Offset": %d, "Text": %q, "Value": %v }`,
			t.ID, t.Offset, t.Text, t.Value,
		)
	}

	return fmt.Sprintf(`{ "ID": "%s", "Offset": %d, "Text": %q }`, t.ID, t.Offset, t.Text)
}

// PrettyFormatter converts an array of Stringer elements to a formatted string.
func PrettyFormatter[T fmt.Stringer](arr []T) string {
	if len(arr) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[")

	for i, el := range arr {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(el.String())
	}

	sb.WriteString("]")

	return sb.String()
}
