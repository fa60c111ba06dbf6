// ABOUTME: Version command reporting build metadata set at link time
// ABOUTME: Prints a one-line summary, or a document with --format json|yaml
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo identifies a bookchunk build
type BuildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("bookchunk %s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

var buildInfo = BuildInfo{Version: "dev", Commit: "none", Date: "unknown"}

// SetVersion records build metadata; main passes its linker-set values
func SetVersion(version, commit, date string) {
	buildInfo = BuildInfo{Version: version, Commit: commit, Date: date}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Long: `Print the bookchunk version, commit and build date.

With --format json or yaml the same fields are printed as a document.
The MCP server reports this version to its clients.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "json" || outputFormat == "yaml" {
				return writeStructured(cmd.OutOrStdout(), buildInfo)
			}
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo)
			return nil
		},
	}
}
