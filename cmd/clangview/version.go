package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"clangview/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readColorMode(colorFlag, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	info := version.Current()
	// The build is still reported without a usable libclang.
	if b, err := openBinding(); err == nil {
		info.Libclang = b.RawVersion()
		info.Supported = b.Version().String()
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "clangview: %v\n", err)
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	return info.Write(cmd.OutOrStdout(), useColor)
}
