// ABOUTME: CLI command to annotate a stored chunk run
// ABOUTME: Requires GEMINI_API_KEY and sends one request per run
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harper/bookchunk/internal/llm"
	"github.com/harper/bookchunk/internal/pipeline"
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <book> <run>",
		Short: "Annotate every paragraph of a chunk run",
		Long: `Annotate every paragraph of a stored chunk run with mood, sentiment and
type, and store the result under analysis_results/<book>/<run>.json.

The whole run is sent in a single request to an OpenAI-compatible endpoint
(Gemini by default). The response is validated before anything is written;
any invalid element rejects the whole response.

Requires GEMINI_API_KEY.`,
		Example: `  bookchunk analyze dune 0
  BOOKCHUNK_LLM_MODEL=gemini-2.5-flash bookchunk analyze fable 3`,
		Args: cobra.ExactArgs(2),
		RunE: runAnalyze,
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	run, err := parseIntArg(args[1], "run")
	if err != nil {
		return err
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := e.cfg.RequireAPIKey(); err != nil {
		return err
	}

	client, err := llm.NewOpenAIClientWithConfig(llm.ConfigFrom(e.cfg))
	if err != nil {
		return err
	}
	e.logger.Debug("analysis client ready", "model", client.Model())

	analyzer := pipeline.NewAnalyzer(e.store, client, e.logger)
	result, err := analyzer.Run(cmd.Context(), pipeline.AnalyzeRequest{Book: args[0], Run: run})
	if err != nil {
		return err
	}

	if outputFormat != "table" {
		return writeStructured(cmd.OutOrStdout(), result)
	}
	success(cmd.OutOrStdout(), "Analyzed %d paragraphs (%d results) to %s",
		result.Paragraphs, len(result.Records), result.Path)
	return nil
}
