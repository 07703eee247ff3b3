package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"clangview/internal/clang"
	"clangview/internal/driver"
	"clangview/internal/ui"
)

type runOutcome struct {
	result *driver.Result
	err    error
}

// runWithUI runs the driver in the background while a progress view
// renders its events on w.
func runWithUI(ctx context.Context, w io.Writer, title string, run func(context.Context, *clang.Binding, []string, driver.Options) (*driver.Result, error), b *clang.Binding, files []string, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := run(ctx, b, files, optsCopy)
		outcomeCh <- runOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(w), tea.WithInput(nil))
	_, uiErr := program.Run()
	// The view may quit before the run does; keep the workers unblocked.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
