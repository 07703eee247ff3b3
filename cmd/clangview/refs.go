package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"clangview/internal/clang"
	"clangview/internal/driver"
)

func newRefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refs [flags] <file> <line:col> [-- compiler args]",
		Short: "List the references to the entity under a position",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runRefs,
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

type refOutput struct {
	Kind     string `json:"kind"`
	Spelling string `json:"spelling"`
	Location string `json:"location"`
}

type refsOutput struct {
	Target     refOutput   `json:"target"`
	References []refOutput `json:"references"`
}

func refOf(c clang.Cursor) refOutput {
	return refOutput{
		Kind:     c.Kind().String(),
		Spelling: c.Spelling(),
		Location: c.Location().Expansion().String(),
	}
}

func runRefs(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("refs takes a file and a position, got %d arguments", len(paths))
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

	c, err := cursorAt(u.TU, paths[1])
	if err != nil {
		return err
	}
	target := c
	if c.IsReference() || c.IsExpression() {
		if target, err = c.Referenced(); err != nil {
			return err
		}
	}
	if target.IsNull() {
		return fmt.Errorf("%s %s: %s refers to nothing", paths[0], paths[1], c.Kind())
	}
	refs, err := c.References()
	if err != nil {
		return err
	}

	out := refsOutput{Target: refOf(target), References: make([]refOutput, 0, len(refs))}
	for _, r := range refs {
		out.References = append(out.References, refOf(r))
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	writeRefs(cmd.OutOrStdout(), out)
	return nil
}

func writeRefs(w io.Writer, out refsOutput) {
	fmt.Fprintf(w, "%s %s declared at %s\n", out.Target.Kind, out.Target.Spelling, out.Target.Location)
	for _, r := range out.References {
		fmt.Fprintf(w, "  %s: %s %s\n", r.Location, r.Kind, r.Spelling)
	}
	fmt.Fprintf(w, "%d reference(s)\n", len(out.References))
}
