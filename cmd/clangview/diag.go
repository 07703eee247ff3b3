package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"clangview/internal/diag"
	"clangview/internal/diagfmt"
	"clangview/internal/driver"
	"clangview/internal/fix"
	"clangview/internal/source"
	"clangview/internal/version"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] [file|directory...] [-- compiler args]",
		Short: "Report compiler diagnostics of C sources",
		Long:  `Parse C sources with libclang and report their diagnostics. Without paths the sources of clangview.toml are checked.`,
		RunE:  runDiag,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	cmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	cmd.Flags().Bool("suggest", false, "include fix-its in output")
	cmd.Flags().Bool("preview", false, "show the source lines a fix-it would change")
	cmd.Flags().String("path-mode", "auto", "path form in output (auto|absolute|relative|basename)")
	cmd.Flags().Int8("context", 1, "source lines shown around each diagnostic (pretty only)")
	cmd.Flags().Bool("timings", false, "report per-file phase timings")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	cmd.Flags().Bool("watch", false, "re-check files when they or their headers change")
	cmd.Flags().Bool("fix", false, "apply every non-overlapping fix-it to the files")
	cmd.Flags().String("fix-id", "", "apply only the fix-it with this id (see --format json with --suggest)")
	cmd.Flags().Bool("dry-run", false, "with --fix or --fix-id, report the fixes without writing files")
	return cmd
}

type diagFlags struct {
	format     string
	noWarnings bool
	werror     bool
	notes      bool
	fixes      bool
	preview    bool
	pathMode   diagfmt.PathMode
	context    int8
	timings    bool
	ui         uiMode
	watch      bool
	fix        bool
	fixID      string
	dryRun     bool
}

func readDiagFlags(cmd *cobra.Command) (diagFlags, error) {
	var f diagFlags
	var err error
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "json", "sarif", "short":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.noWarnings, err = cmd.Flags().GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.werror, err = cmd.Flags().GetBool("warnings-as-errors"); err != nil {
		return f, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if f.noWarnings && f.werror {
		return f, fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	if f.notes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.fixes, err = cmd.Flags().GetBool("suggest"); err != nil {
		return f, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if f.preview, err = cmd.Flags().GetBool("preview"); err != nil {
		return f, fmt.Errorf("failed to get preview flag: %w", err)
	}
	mode, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return f, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if f.pathMode, err = diagfmt.ParsePathMode(mode); err != nil {
		return f, err
	}
	if f.context, err = cmd.Flags().GetInt8("context"); err != nil {
		return f, fmt.Errorf("failed to get context flag: %w", err)
	}
	if f.timings, err = cmd.Flags().GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	ui, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(ui); err != nil {
		return f, err
	}
	if f.watch, err = cmd.Flags().GetBool("watch"); err != nil {
		return f, fmt.Errorf("failed to get watch flag: %w", err)
	}
	if f.fix, err = cmd.Flags().GetBool("fix"); err != nil {
		return f, fmt.Errorf("failed to get fix flag: %w", err)
	}
	if f.fixID, err = cmd.Flags().GetString("fix-id"); err != nil {
		return f, fmt.Errorf("failed to get fix-id flag: %w", err)
	}
	if f.dryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return f, fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	if f.watch && (f.fix || f.fixID != "") {
		return f, fmt.Errorf("watch and fix flags cannot be used together")
	}
	return f, nil
}

func runDiag(cmd *cobra.Command, args []string) error {
	flags, err := readDiagFlags(cmd)
	if err != nil {
		return err
	}
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	paths, dash := splitDash(cmd, args)
	files, err := e.inputs(paths)
	if err != nil {
		return err
	}
	opts, release, err := e.options(dash)
	if err != nil {
		return err
	}
	defer release()
	opts.Timings = flags.timings

	ctx := cmd.Context()
	if flags.watch {
		return watchDiag(ctx, cmd, e, flags, files, opts)
	}

	start := time.Now()
	var res *driver.Result
	if shouldUseTUI(flags.ui, cmd.ErrOrStderr()) && !e.quiet {
		res, err = runWithUI(ctx, cmd.ErrOrStderr(), "diagnosing", driver.Diagnose, e.b, files, opts)
	} else {
		res, err = driver.Diagnose(ctx, e.b, files, opts)
	}
	if err != nil {
		return err
	}

	bag := res.Bag(0)
	failed, err := writeDiagnostics(cmd.OutOrStdout(), bag, res.FileSet, flags, e)
	if err != nil {
		return err
	}
	if flags.fix || flags.fixID != "" {
		if err := applyFixes(cmd.ErrOrStderr(), bag, res.FileSet, flags); err != nil {
			return err
		}
	}
	if !e.quiet && flags.format == "pretty" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d file(s) in %s: %s\n", len(files), since(start), res.Metrics)
	}
	if failed {
		return errFindings
	}
	return nil
}

// writeDiagnostics prints bag in the chosen format and reports whether it
// holds errors, counting warnings under --warnings-as-errors.
func writeDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, flags diagFlags, e *env) (bool, error) {
	if flags.noWarnings {
		bag = withoutWarnings(bag)
	}
	bag.Sort()
	switch flags.format {
	case "json":
		if err := diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         flags.pathMode,
			IncludeNotes:     flags.notes,
			IncludeFixes:     flags.fixes,
			IncludePreviews:  flags.preview,
		}); err != nil {
			return false, fmt.Errorf("failed to write JSON: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{ToolName: "clangview", ToolVersion: version.Version, InvocationArgs: os.Args[1:]}
		if err := diagfmt.Sarif(w, bag, fs, meta); err != nil {
			return false, fmt.Errorf("failed to write SARIF: %w", err)
		}
	case "short":
		items := bag.Items()
		ptrs := make([]*diag.Diagnostic, len(items))
		for i := range items {
			ptrs[i] = &items[i]
		}
		out := diag.FormatShortDiagnostics(ptrs, fs, flags.notes)
		if out != "" {
			fmt.Fprintln(w, strings.TrimRight(out, "\n"))
		}
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:       e.color,
			Context:     flags.context,
			PathMode:    flags.pathMode,
			ShowNotes:   flags.notes,
			ShowFixes:   flags.fixes,
			ShowPreview: flags.preview,
		})
	}
	return bag.HasErrors() || (flags.werror && bag.HasWarnings()), nil
}

// applyFixes applies the fix-its of bag and reports what changed.
func applyFixes(w io.Writer, bag *diag.Bag, fs *source.FileSet, flags diagFlags) error {
	opts := fix.ApplyOptions{Mode: fix.ApplyModeAll, DryRun: flags.dryRun}
	if flags.fixID != "" {
		opts.Mode = fix.ApplyModeID
		opts.TargetID = flags.fixID
	}
	res, err := fix.Apply(fs, bag.Items(), opts)
	for _, a := range res.Applied {
		fmt.Fprintf(w, "fixed %s: %s (%s)\n", a.PrimaryPath, a.Title, a.ID)
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(w, "skipped %s: %s\n", s.ID, s.Reason)
	}
	verb := "changed"
	if flags.dryRun {
		verb = "would change"
	}
	for _, c := range res.FileChanges {
		fmt.Fprintf(w, "%s %s (%d edit(s))\n", verb, c.Path, c.EditCount)
	}
	if errors.Is(err, fix.ErrNoFixes) {
		fmt.Fprintln(w, "no fixes applied")
		return nil
	}
	return err
}

func withoutWarnings(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(0)
	for _, d := range bag.Items() {
		if d.Severity != diag.SevWarning {
			out.Add(d)
		}
	}
	return out
}

// watchDiag prints the diagnostics of every file once, then again for each
// file a change affects, until ctx is done.
func watchDiag(ctx context.Context, cmd *cobra.Command, e *env, flags diagFlags, files []string, opts driver.Options) error {
	s, results, err := driver.OpenSession(ctx, e.b, files, opts, driver.ModeDiagnose)
	if err != nil {
		return err
	}
	defer s.Close()
	out := cmd.OutOrStdout()
	show := func(fr driver.FileResult) {
		bag := diag.NewBag(0)
		bag.Merge(fr.Bag)
		if _, err := writeDiagnostics(out, bag, s.FileSet(), flags, e); err != nil {
			e.warnf("%v", err)
		}
	}
	for _, fr := range results {
		show(fr)
	}
	if !e.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %d file(s)\n", len(s.Paths()))
	}
	return driver.Watch(ctx, s, 200*time.Millisecond, func(fr driver.FileResult) {
		if !e.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "== %s\n", fr.Path)
		}
		show(fr)
	})
}
