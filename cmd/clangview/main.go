package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"clangview/internal/version"
)

// errFindings is returned when the output itself reports errors. main
// exits with status 1 without printing it.
var errFindings = errors.New("errors reported")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clangview",
		Short:         "Inspect C sources through libclang",
		Long:          `clangview parses C sources with libclang and reports diagnostics, documentation, tokens and cursor trees`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanupTrace, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			pushCleanup(cmd, cleanupTrace)
			cleanupProf, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			pushCleanup(cmd, cleanupProf)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per file")
	pf.Int("jobs", 0, "max parallel workers (0=auto)")
	pf.String("config", "", "path to clangview.toml (default: search upwards from the working directory)")
	pf.StringArray("arg", nil, "extra compiler argument, repeatable")
	pf.StringSlice("parse-flag", nil, "libclang parse option, e.g. detailed_preprocessing_record")
	pf.String("compdb", "", "directory holding compile_commands.json")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "number of events kept by the ring tracer")
	pf.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 disables)")

	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")

	root.AddCommand(
		newDocCmd(),
		newDiagCmd(),
		newTokenizeCmd(),
		newASTCmd(),
		newRefsCmd(),
		newCompleteCmd(),
		newCommandsCmd(),
		newVersionCmd(),
		newInitCmd(),
	)
	return root
}

type cleanupKey struct{}

type cleanupStack struct {
	fns []func()
}

// pushCleanup registers fn to run once the command finished, even when it
// failed.
func pushCleanup(cmd *cobra.Command, fn func()) {
	if fn == nil {
		return
	}
	if s, ok := cmd.Context().Value(cleanupKey{}).(*cleanupStack); ok {
		s.fns = append(s.fns, fn)
	}
}

func (s *cleanupStack) run() {
	for i := len(s.fns) - 1; i >= 0; i-- {
		s.fns[i]()
	}
	s.fns = nil
}

// execute runs the command line args and returns the exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	stack := &cleanupStack{}
	err := root.ExecuteContext(context.WithValue(ctx, cleanupKey{}, stack))
	stack.run()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFindings):
		return 1
	default:
		fmt.Fprintf(stderr, "clangview: %v\n", err)
		return 2
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// since formats a duration the way status lines print it.
func since(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
