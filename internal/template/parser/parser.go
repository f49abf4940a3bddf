package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pacer/slate/internal/template/lexer"
)

// UnexpectedTokenError reports a token whose kind is invalid at its
// grammatical position, along with the kinds that were acceptable there.
type UnexpectedTokenError struct {
	Token    lexer.Token
	Expected []lexer.Kind
}

func (e *UnexpectedTokenError) Error() string {
	names := make([]string, len(e.Expected))
	for i, id := range e.Expected {
		names[i] = id.String()
	}

	return fmt.Sprintf(
		"invalid token %s @ %d; expected: %s",
		e.Token.ID, e.Token.Offset, strings.Join(names, ", "),
	)
}

// Parser groups the token stream into document elements. It owns no lexical
// knowledge beyond token kinds; whitespace and comments are expected to be
// pre-filtered by the lexer's ignore set.
type Parser struct {
	lx *lexer.Lexer
}

func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// Document parses the whole token stream into an ordered element sequence.
// Parsing is fail-fast: the first lexical or grammatical error aborts with
// no partial document.
func (p *Parser) Document() (*Document, error) {
	doc := &Document{}

	for {
		la, err := p.lx.LA(1)
		if err != nil {
			return nil, err
		}

		var el Element

		switch la.ID {
		case lexer.TemplateData:
			tok, err := p.lx.NextToken()
			if err != nil {
				return nil, err
			}
			el = &TextElement{Text: tok.Text, Offset: tok.Offset}

		case lexer.StatementStart, lexer.LineStatementPrefix:
			el, err = p.statement()

		case lexer.InlineStart:
			el, err = p.inline()

		case lexer.Eof:
			return doc, nil

		default:
			return nil, &UnexpectedTokenError{
				Token: la,
				Expected: []lexer.Kind{
					lexer.TemplateData, lexer.StatementStart,
					lexer.InlineStart, lexer.LineStatementPrefix,
				},
			}
		}

		if err != nil {
			return nil, err
		}

		doc.Elements = append(doc.Elements, el)
	}
}

// statement parses one block or line statement. Only the block style admits
// whitespace-control markers: a '+'/'-' right after the opening delimiter,
// or right before the terminator.
func (p *Parser) statement() (*StatementElement, error) {
	open, err := p.expect(lexer.StatementStart, lexer.LineStatementPrefix)
	if err != nil {
		return nil, err
	}
	isBlock := open.ID == lexer.StatementStart

	stmt := &StatementElement{}

	if isBlock {
		la, err := p.lx.LA(1)
		if err != nil {
			return nil, err
		}

		if la.Text == "+" || la.Text == "-" {
			tok, err := p.lx.NextToken()
			if err != nil {
				return nil, err
			}
			stmt.LeftTrim = tok.Text
		}
	}

	command, err := p.expect(lexer.Name)
	if err != nil {
		return nil, err
	}
	stmt.Command = command.Text

	for {
		tok, err := p.lx.NextToken()
		if err != nil {
			return nil, err
		}

		switch tok.ID {
		case lexer.StatementEnd:
			return stmt, nil

		case lexer.Eof:
			// Unterminated statement; a missing terminator is fatal.
			return nil, &UnexpectedTokenError{
				Token:    tok,
				Expected: []lexer.Kind{lexer.StatementEnd},
			}
		}

		if isBlock && (tok.Text == "+" || tok.Text == "-") {
			la, err := p.lx.LA(1)
			if err != nil {
				return nil, err
			}

			if la.ID == lexer.StatementEnd {
				stmt.RightTrim = tok.Text
				continue
			}
		}

		stmt.Tokens = append(stmt.Tokens, tok)
	}
}

// inline parses one inline expression into its ordered token list.
func (p *Parser) inline() (*InlineElement, error) {
	if _, err := p.expect(lexer.InlineStart); err != nil {
		return nil, err
	}

	el := &InlineElement{}

	for {
		tok, err := p.lx.NextToken()
		if err != nil {
			return nil, err
		}

		switch tok.ID {
		case lexer.InlineEnd:
			return el, nil

		case lexer.Eof:
			return nil, &UnexpectedTokenError{
				Token:    tok,
				Expected: []lexer.Kind{lexer.InlineEnd},
			}
		}

		el.Tokens = append(el.Tokens, tok)
	}
}

// expect consumes one token, requiring its kind to be among expected.
func (p *Parser) expect(expected ...lexer.Kind) (lexer.Token, error) {
	tok, err := p.lx.NextToken()
	if err != nil {
		return tok, err
	}

	if !slices.Contains(expected, tok.ID) {
		return tok, &UnexpectedTokenError{Token: tok, Expected: expected}
	}

	return tok, nil
}
