// Package cmd provides Cobra CLI commands for fontsized.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"

	rootCmd = &cobra.Command{
		Use:   "fontsized",
		Short: "Interactive font resizing for rxvt-unicode",
		Long: `fontsized - keyboard font resizing that sticks.

A host-driven plugin for rxvt-unicode: bind font:increment and
font:decrement to keys, and the terminal font steps up or down, persists
through the X resource database, and rescales automatically when the
window moves to a monitor with a different pixel density.

Run 'fontsized run' (or just 'fontsized') from the terminal's plugin
runtime; it reads host events on stdin and drives the terminal over its
tty. 'fontsized doctor' checks the external tooling the plugin shells
out to.`,
		RunE: runRun,
	}
)

// SetBuildInfo records version information injected via ldflags.
func SetBuildInfo(v, c, d string) {
	version, commit, buildDate = v, c, d
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
