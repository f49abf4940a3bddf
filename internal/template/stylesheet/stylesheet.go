// Package stylesheet walks parsed template documents to gather the
// stylesheets a page pulls in, following include directives into their
// sources. It consumes the document model only; directives other than
// 'include' and 'stylesheet' pass through untouched for the downstream
// renderer.
package stylesheet

import (
	"fmt"
	"strings"

	"github.com/pacer/slate/internal/template"
	"github.com/pacer/slate/internal/template/lexer"
	"github.com/pacer/slate/internal/template/parser"
)

// Loader resolves an include target name to its source text.
type Loader func(name string) (string, error)

// Collect parses source and returns the hrefs of every 'stylesheet'
// directive, in document order, recursing through 'include' directives whose
// first argument is a string literal. Each included source is a fresh,
// independent parse. Include cycles are broken by name: a target is loaded
// at most once.
func Collect(cfg template.Config, source string, load Loader) ([]string, error) {
	c := &collector{
		cfg:  cfg,
		load: load,
		seen: make(map[string]bool),
	}

	if err := c.walk(source); err != nil {
		return nil, err
	}

	return c.hrefs, nil
}

type collector struct {
	cfg   template.Config
	load  Loader
	seen  map[string]bool
	hrefs []string
}

func (c *collector) walk(source string) error {
	doc, err := c.cfg.Parse(source)
	if err != nil {
		return err
	}

	for _, el := range doc.Elements {
		stmt, ok := el.(*parser.StatementElement)
		if !ok {
			continue
		}

		switch stmt.Command {
		case "include":
			if len(stmt.Tokens) == 0 || stmt.Tokens[0].ID != lexer.StringLit {
				continue
			}

			name, _ := stmt.Tokens[0].Value.(string)
			if c.seen[name] {
				continue
			}
			c.seen[name] = true

			if c.load == nil {
				return fmt.Errorf("include %q: no loader configured", name)
			}

			included, err := c.load(name)
			if err != nil {
				return fmt.Errorf("include %q: %w", name, err)
			}

			if err := c.walk(included); err != nil {
				return err
			}

		case "stylesheet":
			if len(stmt.Tokens) == 0 {
				continue
			}

			href := stmt.Tokens[0].Text
			if s, ok := stmt.Tokens[0].Value.(string); ok {
				href = s
			}

			c.hrefs = append(c.hrefs, href)
		}
	}

	return nil
}

// LinkTags renders hrefs as one stylesheet link element per line.
func LinkTags(hrefs []string) string {
	links := make([]string, len(hrefs))
	for i, href := range hrefs {
		links[i] = fmt.Sprintf(`<link rel="stylesheet" href="%s" />`, href)
	}

	return strings.Join(links, "\n")
}
