package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"clangview/internal/clang"
	"clangview/internal/driver"
)

func newCommandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands [flags] <dir> [file]",
		Short: "Print the compile commands of a compilation database",
		Long:  `Print the compile commands found in <dir>/compile_commands.json, for one file or for all of them, along with the arguments clangview would parse the file with.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runCommands,
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

type commandOutput struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Args      []string `json:"args"`
	Parse     []string `json:"parse_args"`
}

func runCommands(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	db, err := e.b.CompilationDatabaseFromDirectory(args[0])
	if err != nil {
		return fmt.Errorf("compilation database %s: %w", args[0], err)
	}
	defer db.Close()

	var ccs *clang.CompileCommands
	if len(args) == 2 {
		ccs, err = db.CompileCommands(absPath(args[1]))
	} else {
		ccs, err = db.AllCompileCommands()
	}
	if err != nil {
		return err
	}
	defer ccs.Close()

	out := []commandOutput{}
	var errs []error
	for _, cc := range ccs.All() {
		file, err := cc.Filename()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		argv := cc.Args()
		out = append(out, commandOutput{
			Directory: cc.Directory(),
			File:      file,
			Args:      argv,
			Parse:     driver.ParseArgs(argv, cc.Directory()),
		})
	}
	if len(args) == 2 && len(out) == 0 && len(errs) == 0 {
		return fmt.Errorf("%s: no compile command for %s", args[0], args[1])
	}

	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		for _, c := range out {
			fmt.Fprintf(w, "%s\n  dir:   %s\n  argv:  %q\n  parse: %q\n", c.File, c.Directory, c.Args, c.Parse)
		}
	}
	return errors.Join(errs...)
}
