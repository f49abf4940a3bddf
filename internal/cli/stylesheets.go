package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacer/slate/internal/loader"
	"github.com/pacer/slate/internal/template/stylesheet"
)

var stylesheetsCmd = &cobra.Command{
	Use:   "stylesheets <file>",
	Short: "Collect stylesheet directives of a template file as link tags",
	Long: `Stylesheets parses a template file, gathers every 'stylesheet'
directive while following 'include' directives relative to the file's
directory, and prints one <link> element per stylesheet.`,
	Args: cobra.ExactArgs(1),
	RunE: runStylesheets,
}

func init() {
	rootCmd.AddCommand(stylesheetsCmd)
}

func runStylesheets(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	dir := loader.NewDir(filepath.Dir(args[0]), true)

	hrefs, err := stylesheet.Collect(templateConfig(), source, dir.Load)
	if err != nil {
		return err
	}

	slog.Debug("collected stylesheets", "file", args[0], "count", len(hrefs))

	if len(hrefs) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), stylesheet.LinkTags(hrefs))
	}

	return nil
}
