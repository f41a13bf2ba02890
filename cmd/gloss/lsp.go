package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gloss/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the gloss language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		MaxDiagnostics: maxDiagnostics,
	})
	if err := server.Run(); err != nil {
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
