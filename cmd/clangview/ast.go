package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clangview/internal/clang"
	"clangview/internal/diagfmt"
	"clangview/internal/driver"
	"clangview/internal/kinds"
)

func newASTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [flags] <file> [-- compiler args]",
		Short: "Print the cursor tree of a C source file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAST,
	}
	cmd.Flags().StringArray("kind", nil, "only subtrees rooted at this cursor kind, repeatable (e.g. FunctionDecl)")
	cmd.Flags().Int("depth", 0, "levels printed below the root (0=all)")
	cmd.Flags().Bool("types", false, "print the type of each cursor")
	cmd.Flags().Bool("all", false, "include declarations from headers")
	cmd.Flags().String("at", "", "root the tree at the cursor under line:col")
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func runAST(cmd *cobra.Command, args []string) error {
	var opts diagfmt.TreeOpts
	names, err := cmd.Flags().GetStringArray("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	for _, name := range names {
		k, err := kinds.ParseCursorKind(name)
		if err != nil {
			return err
		}
		opts.Kinds = append(opts.Kinds, k)
	}
	if opts.MaxDepth, err = cmd.Flags().GetInt("depth"); err != nil {
		return fmt.Errorf("failed to get depth flag: %w", err)
	}
	if opts.ShowTypes, err = cmd.Flags().GetBool("types"); err != nil {
		return fmt.Errorf("failed to get types flag: %w", err)
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	opts.MainFileOnly = !all
	at, err := cmd.Flags().GetString("at")
	if err != nil {
		return fmt.Errorf("failed to get at flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	paths, dash := splitDash(cmd, args)
	if len(paths) != 1 {
		return fmt.Errorf("ast takes one file, got %d", len(paths))
	}
	dopts, release, err := e.options(dash)
	if err != nil {
		return err
	}
	defer release()

	u, err := driver.OpenUnit(cmd.Context(), e.b, absPath(paths[0]), dopts)
	if err != nil {
		return err
	}
	defer u.Close()

	root := u.TU.Cursor()
	if at != "" {
		if root, err = cursorAt(u.TU, at); err != nil {
			return err
		}
	}
	tree, err := diagfmt.BuildCursorTree(root, opts)
	if err != nil {
		return err
	}
	if asJSON {
		return diagfmt.FormatCursorTreeJSON(cmd.OutOrStdout(), tree)
	}
	return diagfmt.FormatCursorTreePretty(cmd.OutOrStdout(), tree)
}

// cursorAt returns the cursor under pos ("line:col") in the main file of tu.
func cursorAt(tu *clang.TranslationUnit, pos string) (clang.Cursor, error) {
	line, col, err := parseLineCol(pos)
	if err != nil {
		return clang.Cursor{}, err
	}
	f, ok := tu.MainFile()
	if !ok {
		return clang.Cursor{}, fmt.Errorf("%s: no main file", tu.Path())
	}
	loc := tu.Location(f, line, col)
	if loc.IsNull() {
		return clang.Cursor{}, fmt.Errorf("%s:%d:%d: outside the file", tu.Path(), line, col)
	}
	c, err := tu.CursorAt(loc)
	if err != nil {
		return clang.Cursor{}, err
	}
	if c.IsNull() {
		return clang.Cursor{}, fmt.Errorf("%s:%d:%d: no cursor", tu.Path(), line, col)
	}
	return c, nil
}
