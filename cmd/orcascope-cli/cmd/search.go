package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"orcascope/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search profiles by name",
	Long: `Search loaded profiles with fuzzy matching over names and source paths,
ranked by relevance.

Example:
  orcascope-cli search "pla silk"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		linked, err := resolveModel(ctx, nil)
		if err != nil {
			return err
		}

		results, err := commands.NewSearchCommand(linked, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%-9s %-7s %-40s %s\n", r.Profile.Category, r.Profile.Scope, r.Profile.Name, r.Profile.SourcePath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
