// ABOUTME: CLI command to list stored books and chunk runs
// ABOUTME: Shows run counts per book, or per-run chunk and analysis status
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCmd creates list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [book]",
		Short: "List books and chunk runs",
		Long: `List books with stored chunk runs.

With a book name, list that book's runs with chunk count, total words,
and whether an analysis file exists.`,
		Example: `  bookchunk list
  bookchunk list dune
  bookchunk list dune --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		books, err := e.store.ListBooks()
		if err != nil {
			return err
		}
		if len(books) == 0 {
			if outputFormat != "table" {
				return writeStructured(out, []interface{}{})
			}
			if !quiet {
				fmt.Fprintf(out, "No chunk runs found in %s\n", e.store.Root())
			}
			return nil
		}
		if outputFormat != "table" {
			return writeStructured(out, books)
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "BOOK\tRUNS\n")
		fmt.Fprintf(w, "----\t----\n")
		for _, book := range books {
			fmt.Fprintf(w, "%s\t%d\n", book.Book, book.Runs)
		}
		return w.Flush()
	}

	runs, err := e.store.ListRuns(args[0])
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		if outputFormat != "table" {
			return writeStructured(out, []interface{}{})
		}
		if !quiet {
			fmt.Fprintf(out, "No chunk runs found for %s\n", args[0])
		}
		return nil
	}
	if outputFormat != "table" {
		return writeStructured(out, runs)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RUN\tCHUNKS\tWORDS\tANALYZED\n")
	fmt.Fprintf(w, "---\t------\t-----\t--------\n")
	for _, run := range runs {
		if run.Unreadable {
			fmt.Fprintf(w, "%d\t?\t?\t%s\n", run.Run, yesNo(run.Analyzed))
			continue
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", run.Run, run.Chunks, run.Words, yesNo(run.Analyzed))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
