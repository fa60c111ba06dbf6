// ABOUTME: Root command and global flags for the bookchunk CLI
// ABOUTME: Wires subcommands and shared output settings
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

var outputFormats = []string{"table", "json", "yaml"}

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookchunk",
		Short: "Split books into reader-sized chunks and annotate them",
		Long: `bookchunk splits a book into paragraph-aligned chunks sized for a
reader's age, and annotates every paragraph of a chunk run with mood,
sentiment and type using an OpenAI-compatible model (Gemini by default).

Runs are stored as numbered JSON files under the data directory
(BOOKCHUNK_DATA_DIR, default $XDG_DATA_HOME/bookchunk).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range outputFormats {
				if outputFormat == f {
					return nil
				}
			}
			return fmt.Errorf("--format must be one of table, json, yaml; got %q", outputFormat)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors and suppress success output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format: table, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewChunkCmd(),
		NewAnalyzeCmd(),
		NewListCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
