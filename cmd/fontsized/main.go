package main

import "github.com/bnema/fontsized/internal/cli/cmd"

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(version, commit, buildDate)
	cmd.Execute()
}
