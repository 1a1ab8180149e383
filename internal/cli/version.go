package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, overridden at link time with -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("atscheck %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}
