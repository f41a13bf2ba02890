package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gloss/internal/diagfmt"
	"gloss/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.gls",
	Short: "Tokenize a gloss source file",
	Long:  `Tokenize breaks down a gloss source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Lexical diagnostics go to stderr so the token stream stays clean.
	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag.Refs(), result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.TokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.TokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
