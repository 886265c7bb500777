package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"orcascope/internal/application"
	"orcascope/internal/application/commands"
)

var listCategories string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles in the store",
	Long: `List loaded profiles with their category, scope and source path.

Examples:
  orcascope-cli list
  orcascope-cli list --categories filament
  orcascope-cli list --categories filament,process`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		categories, err := application.ValidateCategories("categories", listCategories)
		if err != nil {
			return err
		}

		linked, err := resolveModel(ctx, categories)
		if err != nil {
			return err
		}

		profiles, err := commands.NewListProfilesCommand(linked, categories).Execute(ctx)
		if err != nil {
			return err
		}

		for _, p := range profiles {
			marker := " "
			if linked.IsBroken(p) {
				marker = "!"
			}
			fmt.Printf("%s %-9s %-7s %-40s %s\n", marker, p.Category, p.Scope, p.Name, p.SourcePath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listCategories, "categories", "c", "", "comma-separated categories to list")
}
