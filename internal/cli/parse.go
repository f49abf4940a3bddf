package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pacer/slate/internal/template/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a template file and print its document elements",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	doc, err := templateConfig().Parse(source)
	if err != nil {
		return err
	}

	slog.Debug("parsed template", "file", args[0], "elements", len(doc.Elements))

	for _, el := range doc.Elements {
		switch el := el.(type) {
		case *parser.TextElement:
			fmt.Fprintf(cmd.OutOrStdout(), "text       %s\n", el)
		case *parser.StatementElement:
			fmt.Fprintf(cmd.OutOrStdout(), "statement  %s\n", el)
		case *parser.InlineElement:
			fmt.Fprintf(cmd.OutOrStdout(), "inline     %s\n", el)
		}
	}

	return nil
}
