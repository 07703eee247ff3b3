package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"clangview/internal/clang"
	"clangview/internal/driver"
	"clangview/internal/kinds"
	"clangview/internal/project"
)

// openBinding loads libclang. Tests replace it with a fake library.
var openBinding = clang.Open

// env is what every subcommand reads from the persistent flags and the
// project manifest.
type env struct {
	cmd      *cobra.Command
	color    bool
	quiet    bool
	maxDiags int
	jobs     int
	manifest *project.Manifest
	b        *clang.Binding
}

func newEnv(cmd *cobra.Command) (*env, error) {
	root := cmd.Root()
	e := &env{cmd: cmd}
	var err error

	if e.quiet, err = root.PersistentFlags().GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if e.maxDiags, err = root.PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if e.jobs, err = root.PersistentFlags().GetInt("jobs"); err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	configPath, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if err := e.loadManifest(configPath); err != nil {
		return nil, err
	}

	colorFlag, err := root.PersistentFlags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !root.PersistentFlags().Changed("color") && e.manifest != nil && e.manifest.Config.Output.Color != "" {
		colorFlag = e.manifest.Config.Output.Color
	}
	if e.color, err = readColorMode(colorFlag, cmd.OutOrStdout()); err != nil {
		return nil, err
	}

	if e.b, err = openBinding(); err != nil {
		return nil, fmt.Errorf("failed to load libclang: %w", err)
	}
	return e, nil
}

func (e *env) loadManifest(path string) error {
	if path != "" {
		m, err := project.Load(path)
		if err != nil {
			return err
		}
		e.manifest = m
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		m, ok, err := project.LoadManifest(wd)
		if err != nil {
			return err
		}
		if ok {
			e.manifest = m
		}
	}
	if e.manifest != nil && len(e.manifest.Unknown) > 0 {
		e.warnf("%s: unknown keys %v", e.manifest.Path, e.manifest.Unknown)
	}
	return nil
}

func (e *env) warnf(format string, args ...any) {
	if e.quiet {
		return
	}
	fmt.Fprintf(e.cmd.ErrOrStderr(), "clangview: "+format+"\n", args...)
}

func (e *env) config() project.Config {
	if e.manifest != nil {
		return e.manifest.Config
	}
	return project.Default()
}

func (e *env) root() string {
	if e.manifest != nil {
		return e.manifest.Root
	}
	return ""
}

// options builds the driver options shared by all commands: compiler
// arguments from the manifest, --arg and the words after "--", parse flags,
// and the compilation database when one is configured. Call the returned
// function once the options are no longer used.
func (e *env) options(dashArgs []string) (driver.Options, func(), error) {
	root := e.cmd.Root()
	cfg := e.config()
	opts := driver.Options{
		Jobs:           e.jobs,
		MaxDiagnostics: e.maxDiags,
		BaseDir:        e.root(),
	}

	extra, err := root.PersistentFlags().GetStringArray("arg")
	if err != nil {
		return opts, nil, fmt.Errorf("failed to get arg flag: %w", err)
	}
	args := append(cfg.CompilerArgs(e.root()), extra...)
	args = append(args, dashArgs...)

	flags, err := cfg.ParseFlags()
	if err != nil {
		return opts, nil, err
	}
	names, err := root.PersistentFlags().GetStringSlice("parse-flag")
	if err != nil {
		return opts, nil, fmt.Errorf("failed to get parse-flag flag: %w", err)
	}
	more, err := kinds.ParseParseFlags(names)
	if err != nil {
		return opts, nil, err
	}
	opts.Flags = flags | more

	compdb, err := root.PersistentFlags().GetString("compdb")
	if err != nil {
		return opts, nil, fmt.Errorf("failed to get compdb flag: %w", err)
	}
	if compdb == "" && e.manifest != nil {
		compdb = e.manifest.CompDBDir()
	}
	if compdb == "" {
		opts.Args = driver.StaticArgs(args)
		return opts, func() {}, nil
	}
	db, err := e.b.CompilationDatabaseFromDirectory(compdb)
	if err != nil {
		return opts, nil, fmt.Errorf("compilation database %s: %w", compdb, err)
	}
	opts.Args = &driver.CompDBArgs{DB: db, Fallback: args}
	return opts, func() { _ = db.Close() }, nil
}

// inputs expands the positional paths, or lists the manifest sources when
// there are none.
func (e *env) inputs(paths []string) ([]string, error) {
	if len(paths) > 0 {
		return driver.ExpandPaths(paths)
	}
	if e.manifest == nil {
		return nil, errors.New("no input files and no clangview.toml")
	}
	files, err := e.manifest.Config.SourceFiles(e.manifest.Root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no source files matched", e.manifest.Path)
	}
	return files, nil
}

// splitDash separates the positional arguments from the compiler
// arguments written after "--".
func splitDash(cmd *cobra.Command, args []string) ([]string, []string) {
	if n := cmd.ArgsLenAtDash(); n >= 0 {
		return args[:n], args[n:]
	}
	return args, nil
}

// absPath is path made absolute, or path itself when that fails.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
