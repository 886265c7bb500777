package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"orcascope/internal/application"
	"orcascope/internal/application/commands"
)

var compareCategory string

var compareCmd = &cobra.Command{
	Use:   "compare <profile>...",
	Short: "Compare settings across profiles",
	Long: `Compare profiles side by side. With one profile the table has a column
per ancestor in its chain (declared values); with several profiles of the
same category it has a column per profile (effective values).

Examples:
  orcascope-cli compare "Acme PLA Red"
  orcascope-cli compare "Acme PLA Red" "Acme PLA Blue"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		category, err := application.ValidateCategory("category", compareCategory)
		if err != nil {
			return err
		}

		linked, err := resolveModel(ctx, nil)
		if err != nil {
			return err
		}

		table, err := commands.NewCompareCommand(linked, args, category).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(table.Markdown())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&compareCategory, "category", "c", "", "profile category (filament, machine, process)")
}
