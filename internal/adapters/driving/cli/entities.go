package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var entitiesJSON bool

var entitiesCmd = &cobra.Command{
	Use:   "entities [section]",
	Short: "Extract entities from the knowledge base",
	Long: `Runs pattern extraction over the named section, or over all
sections when none is given. Duplicate entities keep the section they
were last seen in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEntities,
}

func init() {
	entitiesCmd.Flags().BoolVar(&entitiesJSON, "json", false, "output entities as JSON")
	rootCmd.AddCommand(entitiesCmd)
}

func runEntities(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	section := "all"
	if len(args) == 1 {
		section = args[0]
	}

	out, err := queryService.ExtractEntities(cmd.Context(), section)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if entitiesJSON {
		return printJSON(cmd, out)
	}

	if out.TotalExtracted == 0 {
		cmd.Println("No entities found.")
		return nil
	}

	cmd.Printf("Entities (%d unique):\n\n", out.TotalExtracted)
	for i := range out.Entities {
		cmd.Printf("  %-30s %s\n", out.Entities[i].Entity, out.Entities[i].Source)
	}

	return nil
}
