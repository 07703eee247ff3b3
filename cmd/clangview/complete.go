package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clangview/internal/driver"
)

func newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete [flags] <file> <line:col> [-- compiler args]",
		Short: "List code completion candidates at a position",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runComplete,
	}
	cmd.Flags().Int("limit", 50, "maximum number of candidates (0=all)")
	cmd.Flags().String("prefix", "", "only candidates whose typed text starts with this")
	cmd.Flags().Bool("brief", false, "print the brief comment of each candidate")
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

type completionOutput struct {
	Kind     string `json:"kind"`
	Typed    string `json:"typed"`
	Text     string `json:"text"`
	Priority int    `json:"priority"`
	Brief    string `json:"brief,omitempty"`
}

func runComplete(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}
	prefix, err := cmd.Flags().GetString("prefix")
	if err != nil {
		return fmt.Errorf("failed to get prefix flag: %w", err)
	}
	brief, err := cmd.Flags().GetBool("brief")
	if err != nil {
		return fmt.Errorf("failed to get brief flag: %w", err)
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
	if len(paths) != 2 {
		return fmt.Errorf("complete takes a file and a position, got %d arguments", len(paths))
	}
	line, col, err := parseLineCol(paths[1])
	if err != nil {
		return err
	}
	opts, release, err := e.options(dash)
	if err != nil {
		return err
	}
	defer release()

	path := absPath(paths[0])
	u, err := driver.OpenUnit(cmd.Context(), e.b, path, opts)
	if err != nil {
		return err
	}
	defer u.Close()

	results, err := u.TU.CodeComplete(path, line, col, opts.Unsaved, e.b.DefaultCodeCompleteOptions())
	if err != nil {
		return err
	}
	defer results.Close()
	results.Sort()
	all, err := results.All()
	if err != nil {
		return err
	}

	out := []completionOutput{}
	for _, r := range all {
		typed := r.String.TypedText()
		if !strings.HasPrefix(typed, prefix) {
			continue
		}
		c := completionOutput{
			Kind:     r.Kind.String(),
			Typed:    typed,
			Text:     r.String.String(),
			Priority: r.String.Priority(),
		}
		if brief || asJSON {
			c.Brief = r.String.BriefComment()
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, c := range out {
		fmt.Fprintf(w, "%-24s %s", c.Kind, c.Text)
		if brief && c.Brief != "" {
			fmt.Fprintf(w, "  // %s", c.Brief)
		}
		fmt.Fprintln(w)
	}
	return nil
}
