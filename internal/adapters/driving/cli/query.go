package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

var (
	querySection string
	queryLimit   int
	queryJSON    bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the knowledge base",
	Long: `Performs a case-insensitive keyword search over the knowledge base
and prints bounded excerpts around the first match in each section.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&querySection, "section", "s", "all", "section to search (faq, sessions, triggers, safety, transcripts, all)")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 0, "maximum number of results (default from config)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	out, err := queryService.Search(cmd.Context(), args[0], querySection, queryLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if queryJSON {
		return printJSON(cmd, out)
	}

	return printQueryTable(cmd, out)
}

func printQueryTable(cmd *cobra.Command, out *domain.SearchOutput) error {
	if out.TotalFound == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d found):\n\n", out.TotalFound)
	for i := range out.Results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, out.Results[i].Section, out.Results[i].Relevance)
		cmd.Printf("      %s\n\n", out.Results[i].Excerpt)
	}

	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
