package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pacer/slate/internal/template/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the raw token stream of a template file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	lx := lexer.New(source, lexerOptions())

	count := 0
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tok)
		count++

		if tok.ID == lexer.Eof {
			break
		}
	}

	slog.Debug("tokenized template", "file", args[0], "tokens", count)

	return nil
}
