package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gloss/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gloss",
	Short: "Gloss shading-language front end",
	Long:  `Gloss checks shading-language effects: declarations, overloads and entry-point conventions`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against whether out is a tty.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
