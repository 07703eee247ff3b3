// Package version reports the build of clangview and the libclang it
// runs against.
package version

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Build information, overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	GitCommit  = ""
	GitMessage = ""
	// BuildDate is an ISO-8601 date.
	BuildDate = ""
)

// Info describes one run of the CLI.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	// Libclang is the version string the library reports, empty when it
	// could not be loaded.
	Libclang string `json:"libclang,omitempty"`
	// Supported is the version the binding matched it to.
	Supported string `json:"supported,omitempty"`
}

// Current returns the build information.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
}

// Write prints info, one field per line, coloring the labels when
// enabled.
func (info Info) Write(w io.Writer, enabled bool) error {
	label := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgYellow, color.Bold)
	if enabled {
		label.EnableColor()
		value.EnableColor()
	} else {
		label.DisableColor()
		value.DisableColor()
	}
	line := func(name, v string) error {
		if v == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s %s\n", label.Sprintf("%-10s", name+":"), value.Sprint(v))
		return err
	}
	for _, f := range [][2]string{
		{"clangview", info.Version},
		{"commit", info.GitCommit},
		{"built", info.BuildDate},
		{"libclang", info.Libclang},
		{"matched", info.Supported},
	} {
		if err := line(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}
