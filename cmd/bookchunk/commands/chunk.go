// ABOUTME: CLI command to chunk a book into the next numbered run
// ABOUTME: Target chunk size comes from the reader's age unless overridden
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harper/bookchunk/internal/pipeline"
)

var (
	chunkTarget int
)

// NewChunkCmd creates the chunk command
func NewChunkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunk <filename> <age>",
		Short: "Split a book into age-sized chunks",
		Long: `Split a book into paragraph-aligned chunks and store them as the next run.

Paragraphs are separated by blank lines and never split. The target words
per chunk comes from the reader's age:

  age <= 12  150 words
  age <= 20  220 words
  age <= 35  250 words
  age <= 50  240 words
  age <= 65  200 words
  older      180 words

Accepts .txt, .md and .pdf input. A relative filename that does not exist
is looked up under the data directory's books/ folder.`,
		Example: `  bookchunk chunk dune.txt 30
  bookchunk chunk ~/books/fable.md 8 --target 100
  bookchunk chunk report.pdf 40 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: runChunk,
	}

	cmd.Flags().IntVar(&chunkTarget, "target", 0, "Target words per chunk, overriding the age table")

	return cmd
}

func runChunk(cmd *cobra.Command, args []string) error {
	age, err := parseIntArg(args[1], "age")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("target") {
		if err := validatePositiveInt(chunkTarget, "--target"); err != nil {
			return err
		}
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}

	chunker := pipeline.NewChunker(e.store, e.logger)
	result, err := chunker.Run(cmd.Context(), pipeline.ChunkRequest{
		Filename: args[0],
		Age:      age,
		Target:   chunkTarget,
	})
	if err != nil {
		return err
	}

	if outputFormat != "table" {
		return writeStructured(cmd.OutOrStdout(), result)
	}
	success(cmd.OutOrStdout(), "Wrote %d chunks (%d words, target %d) to %s",
		len(result.Chunks), result.Words, result.Target, result.Path)
	return nil
}
