package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clangview/internal/clang"
	"clangview/internal/diagfmt"
	"clangview/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file> [-- compiler args]",
		Short: "Print the tokens of a C source file",
		Long:  `Tokenize a C source file with libclang and print each token with its kind, position and the cursor it belongs to.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("lines", "", "only tokens starting on these lines (a or a:b)")
	cmd.Flags().Bool("json", false, "print JSON")
	cmd.Flags().Bool("no-annotate", false, "do not resolve the cursor of each token")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	lines, err := cmd.Flags().GetString("lines")
	if err != nil {
		return fmt.Errorf("failed to get lines flag: %w", err)
	}
	from, to, err := parseLineRange(lines)
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	noAnnotate, err := cmd.Flags().GetBool("no-annotate")
	if err != nil {
		return fmt.Errorf("failed to get no-annotate flag: %w", err)
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	paths, dash := splitDash(cmd, args)
	if len(paths) != 1 {
		return fmt.Errorf("tokenize takes one file, got %d", len(paths))
	}
	opts, release, err := e.options(dash)
	if err != nil {
		return err
	}
	defer release()

	u, err := driver.OpenUnit(cmd.Context(), e.b, absPath(paths[0]), opts)
	if err != nil {
		return err
	}
	defer u.Close()

	toks, err := u.TU.Tokenize(u.TU.Cursor().Extent())
	if err != nil {
		return err
	}
	defer toks.Close()
	var cursors []clang.Cursor
	if !noAnnotate {
		if cursors, err = u.TU.AnnotateTokens(toks); err != nil {
			return err
		}
	}
	out, err := diagfmt.CollectTokens(toks, cursors)
	if err != nil {
		return err
	}
	if from > 0 {
		kept := out[:0]
		for _, t := range out {
			if t.Line >= from && t.Line <= to {
				kept = append(kept, t)
			}
		}
		out = kept
	}
	if asJSON {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), out)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), out)
}
