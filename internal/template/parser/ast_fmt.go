package parser

import (
	"fmt"
	"strings"

	"github.com/pacer/slate/internal/template/lexer"
)

func (e TextElement) String() string {
	return fmt.Sprintf(`{"Text": %q, "Offset": %d}`, e.Text, e.Offset)
}

func (e StatementElement) String() string {
	return fmt.Sprintf(
		`{"Command": %q, "LeftTrim": %q, "RightTrim": %q, "Tokens": %s}`,
		e.Command, e.LeftTrim, e.RightTrim, lexer.PrettyFormatter(e.Tokens),
	)
}

func (e InlineElement) String() string {
	return fmt.Sprintf(`{"Tokens": %s}`, lexer.PrettyFormatter(e.Tokens))
}

func (d Document) String() string {
	if len(d.Elements) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[")

	for i, el := range d.Elements {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%v", el)
	}

	sb.WriteString("]")

	return sb.String()
}
