package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gloss/internal/ast"
	"gloss/internal/diagfmt"
	"gloss/internal/driver"
	"gloss/internal/project"
	"gloss/internal/sema"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.gls|directory>",
	Short: "Check gloss source files",
	Long:  `Check validates declarations, overloads and the entry-point convention in a gloss source file or all *.gls files within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().String("kind", "", "program kind (overrides the manifest; see gloss.toml)")
	checkCmd.Flags().Bool("strict", false, "forbid returning structs that contain arrays")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("ui", false, "render progress as a live terminal UI")
	checkCmd.Flags().Bool("no-cache", false, "disable the persistent result cache")
	checkCmd.Flags().Bool("emit-symbols", false, "emit accepted function symbols as JSON after checking")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	emitSymbols, err := cmd.Flags().GetBool("emit-symbols")
	if err != nil {
		return fmt.Errorf("failed to get emit-symbols flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	cfg, err := resolveConfig(cmd, inputPath)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Config:         cfg,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
	}
	if !noCache {
		cache, cacheErr := driver.OpenDiskCache("gloss")
		if cacheErr != nil {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}

	var results []*driver.CheckResult
	if withUI && isTerminal(os.Stdout) {
		results, err = runCheckWithUI(cmd, inputPath, opts)
	} else {
		results, err = driver.CheckPath(cmd.Context(), inputPath, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	exitCode := 0
	for _, r := range results {
		if r.HasErrors() {
			exitCode = 1
			break
		}
	}

	color := useColor(cmd, os.Stdout)
	prettyOpts := diagfmt.PrettyOpts{Color: color, ShowNotes: withNotes}

	switch format {
	case "pretty", "short":
		render := diagfmt.Pretty
		if format == "short" {
			render = diagfmt.Short
		}
		for idx, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			if len(results) > 1 && format == "pretty" {
				if idx > 0 {
					fmt.Fprintln(os.Stdout)
				}
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			render(os.Stdout, r.Refs(), r.FileSet, prettyOpts)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{IncludeNotes: withNotes}
		reports := make(map[string]diagfmt.JSONReport, len(results))
		for _, r := range results {
			reports[r.Path] = r.JSONReport(jsonOpts)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	}

	if emitSymbols {
		symbols := make(map[string][]driver.SymbolInfo, len(results))
		for _, r := range results {
			symbols[r.Path] = r.Symbols
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(symbols); err != nil {
			return fmt.Errorf("failed to encode symbols: %w", err)
		}
	}

	if showTimings {
		for _, r := range results {
			if r.Timer == nil {
				continue
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", r.Path, r.Timer.Summary())
		}
	}

	if exitCode != 0 {
		// Diagnostics are already printed; suppress cobra's usage echo.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// resolveConfig layers the check configuration: defaults, then the
// nearest gloss.toml, then explicit flags.
func resolveConfig(cmd *cobra.Command, inputPath string) (sema.Config, error) {
	cfg := sema.Config{Kind: ast.KindGeneric}

	startDir := inputPath
	if info, err := os.Stat(inputPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(inputPath)
	}
	if m, found, err := project.LoadNearest(startDir); err != nil {
		return cfg, err
	} else if found {
		kind, kindErr := m.ProgramKind()
		if kindErr != nil {
			return cfg, kindErr
		}
		cfg.Kind = kind
		cfg.Strict = m.Program.Strict
	}

	if cmd.Flags().Changed("kind") {
		name, err := cmd.Flags().GetString("kind")
		if err != nil {
			return cfg, err
		}
		kind, ok := ast.ParseProgramKind(name)
		if !ok {
			return cfg, fmt.Errorf("unknown program kind %q (expected one of: %s)",
				name, strings.Join(ast.ProgramKindNames(), ", "))
		}
		cfg.Kind = kind
	}
	if cmd.Flags().Changed("strict") {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return cfg, err
		}
		cfg.Strict = strict
	}
	return cfg, nil
}
