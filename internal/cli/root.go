// Package cli implements the slate command line: inspecting the token
// stream, the parsed element structure, and the stylesheet set of template
// files.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pacer/slate/internal/template"
	"github.com/pacer/slate/internal/template/lexer"
)

// version is set by goreleaser at build time.
var version = "dev"

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:     "slate",
	Short:   "Inspect delimiter-based template documents",
	Long: `Slate scans template sources mixing literal text with block statements
('{% ... %}'), inline expressions ('{{ ... }}') and comments ('{# ... #}'),
and prints the resulting token stream or document structure. Nothing is
evaluated or rendered.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command; on error the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "slate:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./slate.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging to stderr")

	rootCmd.PersistentFlags().String("block-start", "{%", "block statement opening delimiter")
	rootCmd.PersistentFlags().String("block-end", "%}", "block statement closing delimiter")
	rootCmd.PersistentFlags().String("inline-start", "{{", "inline expression opening delimiter")
	rootCmd.PersistentFlags().String("inline-end", "}}", "inline expression closing delimiter")
	rootCmd.PersistentFlags().String("comment-start", "{#", "comment opening delimiter")
	rootCmd.PersistentFlags().String("comment-end", "#}", "comment closing delimiter")
	rootCmd.PersistentFlags().String("line-statement-prefix", "",
		"line statement prefix (disabled when empty)")
	rootCmd.PersistentFlags().String("line-comment-prefix", "",
		"line comment prefix (disabled when empty)")
	rootCmd.PersistentFlags().Bool("line-statement-at-line-start", false,
		"only recognize a line statement prefix preceded by whitespace on its line")

	for _, key := range []string{
		"block-start", "block-end",
		"inline-start", "inline-end",
		"comment-start", "comment-end",
		"line-statement-prefix", "line-comment-prefix",
		"line-statement-at-line-start",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/slate")
		}
	}

	viper.SetEnvPrefix("SLATE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("loaded config file", "path", viper.ConfigFileUsed())
	}
}

// templateConfig assembles the parse configuration from flags, environment
// and config file.
func templateConfig() template.Config {
	cfg := template.DefaultConfig()

	cfg.BlockStart = viper.GetString("block-start")
	cfg.BlockEnd = viper.GetString("block-end")
	cfg.InlineStart = viper.GetString("inline-start")
	cfg.InlineEnd = viper.GetString("inline-end")
	cfg.CommentStart = viper.GetString("comment-start")
	cfg.CommentEnd = viper.GetString("comment-end")
	cfg.LineStatementPrefix = viper.GetString("line-statement-prefix")
	cfg.LineCommentPrefix = viper.GetString("line-comment-prefix")
	cfg.RequireLineStatementAtLineStart = viper.GetBool("line-statement-at-line-start")

	return cfg
}

// lexerOptions mirrors templateConfig for commands driving the lexer
// directly. The ignore set is empty so every raw token is visible.
func lexerOptions() lexer.Options {
	cfg := templateConfig()

	return lexer.Options{
		BlockStart:               cfg.BlockStart,
		BlockEnd:                 cfg.BlockEnd,
		InlineStart:              cfg.InlineStart,
		InlineEnd:                cfg.InlineEnd,
		CommentStart:             cfg.CommentStart,
		CommentEnd:               cfg.CommentEnd,
		LineStatementPrefix:      cfg.LineStatementPrefix,
		LineCommentPrefix:        cfg.LineCommentPrefix,
		LineStatementAtLineStart: cfg.RequireLineStatementAtLineStart,
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	return string(data), nil
}
