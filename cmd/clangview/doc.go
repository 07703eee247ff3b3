package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clangview/internal/diagfmt"
	"clangview/internal/docgen"
	"clangview/internal/driver"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc [flags] [file|directory...] [-- compiler args]",
		Short: "Extract documentation comments of C declarations",
		Long:  `Extract the documentation comments of the declarations in C sources. Results are cached per file and compiler arguments.`,
		RunE:  runDoc,
	}
	cmd.Flags().String("format", "", "output format (text|json|yaml), default from clangview.toml or text")
	cmd.Flags().Bool("lint", false, "report documentation problems on stderr")
	cmd.Flags().Bool("undocumented", false, "list declarations without a comment too")
	cmd.Flags().Bool("no-cache", false, "do not read or write the documentation cache")
	cmd.Flags().Bool("clear-cache", false, "remove every cached entry before running")
	cmd.Flags().Bool("timings", false, "report per-file phase timings")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	cmd.Flags().Bool("watch", false, "regenerate when files or their headers change")
	return cmd
}

type docFlags struct {
	format       docgen.Format
	lint         bool
	undocumented bool
	noCache      bool
	clearCache   bool
	timings      bool
	ui           uiMode
	watch        bool
}

func readDocFlags(cmd *cobra.Command, e *env) (docFlags, error) {
	var f docFlags
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = e.config().Output.Format
	}
	if f.format, err = docgen.ParseFormat(format); err != nil {
		return f, err
	}
	if f.lint, err = cmd.Flags().GetBool("lint"); err != nil {
		return f, fmt.Errorf("failed to get lint flag: %w", err)
	}
	if f.undocumented, err = cmd.Flags().GetBool("undocumented"); err != nil {
		return f, fmt.Errorf("failed to get undocumented flag: %w", err)
	}
	if f.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return f, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if f.clearCache, err = cmd.Flags().GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
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
	return f, nil
}

// openCache opens the documentation cache configured by the manifest, or
// the user cache directory.
func (e *env) openCache() (*driver.DiskCache, error) {
	if e.manifest != nil {
		if dir := e.manifest.CacheDir(); dir != "" {
			return driver.OpenDiskCacheAt(dir)
		}
	}
	return driver.OpenDiskCache("clangview")
}

func runDoc(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	flags, err := readDocFlags(cmd, e)
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
	opts.Lint = flags.lint
	opts.Timings = flags.timings

	if e.config().Cache.Enabled && !flags.noCache {
		cache, err := e.openCache()
		if err != nil {
			e.warnf("documentation cache disabled: %v", err)
		} else {
			if flags.clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear cache %s: %w", cache.Dir(), err)
				}
			}
			opts.Cache = cache
		}
	}

	ctx := cmd.Context()
	if flags.watch {
		return watchDoc(ctx, cmd, e, flags, files, opts)
	}

	start := time.Now()
	var res *driver.Result
	if shouldUseTUI(flags.ui, cmd.ErrOrStderr()) && !e.quiet {
		res, err = runWithUI(ctx, cmd.ErrOrStderr(), "documenting", driver.Document, e.b, files, opts)
	} else {
		res, err = driver.Document(ctx, e.b, files, opts)
	}
	if err != nil {
		return err
	}

	if err := docgen.Render(cmd.OutOrStdout(), res.Docs(), flags.format, docgen.TextOpts{
		Color:        e.color,
		Undocumented: flags.undocumented,
	}); err != nil {
		return err
	}
	bag := res.Bag(0)
	bag.Sort()
	if bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, res.FileSet, diagfmt.PrettyOpts{Color: e.color, Context: 1})
	}
	if !e.quiet && flags.format == docgen.FormatText {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d file(s) in %s: %s\n", len(files), since(start), res.Metrics)
	}
	if bag.HasErrors() {
		return errFindings
	}
	return nil
}

func watchDoc(ctx context.Context, cmd *cobra.Command, e *env, flags docFlags, files []string, opts driver.Options) error {
	s, results, err := driver.OpenSession(ctx, e.b, files, opts, driver.ModeDocument)
	if err != nil {
		return err
	}
	defer s.Close()
	textOpts := docgen.TextOpts{Color: e.color, Undocumented: flags.undocumented}
	show := func(fr driver.FileResult) {
		if fr.Doc != nil {
			if err := docgen.Render(cmd.OutOrStdout(), []docgen.FileDoc{*fr.Doc}, flags.format, textOpts); err != nil {
				e.warnf("%v", err)
			}
		}
		if fr.Bag != nil && fr.Bag.Len() > 0 {
			fr.Bag.Sort()
			diagfmt.Pretty(cmd.ErrOrStderr(), fr.Bag, s.FileSet(), diagfmt.PrettyOpts{Color: e.color, Context: 1})
		}
	}
	for _, fr := range results {
		show(fr)
	}
	return driver.Watch(ctx, s, 200*time.Millisecond, show)
}
