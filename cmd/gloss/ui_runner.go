package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gloss/internal/driver"
	"gloss/internal/pipeline"
	"gloss/internal/ui"
)

type checkOutcome struct {
	results []*driver.CheckResult
	err     error
}

// runCheckWithUI runs the check under a Bubble Tea progress view. The
// checker runs in its own goroutine and closes the event channel when it
// finishes, which quits the UI.
func runCheckWithUI(cmd *cobra.Command, path string, opts driver.Options) ([]*driver.CheckResult, error) {
	files, err := checkTargets(path)
	if err != nil {
		return nil, err
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = pipeline.ChannelSink{Ch: events}
		results, err := driver.CheckPath(cmd.Context(), path, optsCopy)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(fmt.Sprintf("checking %s", path), files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

// checkTargets lists the files the UI will track for path.
func checkTargets(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return driver.ListSourceFiles(path)
}
