package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"clangview/internal/project"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a clangview.toml skeleton",
		Long: `Create clangview.toml in dir (default: the working directory). The
compilation database is recorded when compile_commands.json exists in dir or
dir/build. An existing manifest is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
	cmd.Flags().String("std", "", "language standard, e.g. c11")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	std, err := cmd.Flags().GetString("std")
	if err != nil {
		return fmt.Errorf("failed to get std flag: %w", err)
	}

	path := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("project already initialized: %s exists", path)
	}
	content := manifestSkeleton(std, findCompDB(target))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	rel := path
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", rel)
	return nil
}

// findCompDB returns the directory of compile_commands.json relative to
// root, or "".
func findCompDB(root string) string {
	for _, dir := range []string{".", "build"} {
		if _, err := os.Stat(filepath.Join(root, dir, "compile_commands.json")); err == nil {
			return dir
		}
	}
	return ""
}

func manifestSkeleton(std, compdb string) string {
	def := project.Default()
	var b strings.Builder
	b.WriteString("[parse]\n")
	if std != "" {
		fmt.Fprintf(&b, "std = %q\n", std)
	} else {
		b.WriteString("# std = \"c11\"\n")
	}
	b.WriteString("include_dirs = []\n")
	b.WriteString("defines = []\n")
	b.WriteString("args = []\n\n")

	b.WriteString("[sources]\n")
	b.WriteString("include = [")
	for i, g := range def.Sources.Include {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", g)
	}
	b.WriteString("]\n")
	b.WriteString("exclude = [\"build/**\"]\n\n")

	if compdb != "" {
		fmt.Fprintf(&b, "[compdb]\ndir = %q\n\n", compdb)
	}

	fmt.Fprintf(&b, "[output]\ncolor = %q\n\n", def.Output.Color)
	fmt.Fprintf(&b, "[cache]\nenabled = %t\n", def.Cache.Enabled)
	return b.String()
}
