package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"orcascope/internal/application"
	"orcascope/internal/application/commands"
	"orcascope/internal/domain"
)

var effectiveCategory string

var effectiveCmd = &cobra.Command{
	Use:   "effective <profile>",
	Short: "Show a profile's fully merged settings",
	Long: `Show the effective settings of a profile: every key resolved through
the inheritance chain, annotated with the ancestor that defined the value.

Examples:
  orcascope-cli effective "Acme PLA Red"
  orcascope-cli effective "My Printer" --category machine`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		category, err := application.ValidateCategory("category", effectiveCategory)
		if err != nil {
			return err
		}

		linked, err := resolveModel(ctx, nil)
		if err != nil {
			return err
		}

		chain, view, err := commands.NewEffectiveCommand(linked, args[0], category).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(domain.EffectiveTable(chain.Target(), view).Markdown())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(effectiveCmd)
	effectiveCmd.Flags().StringVarP(&effectiveCategory, "category", "c", "", "profile category (filament, machine, process)")
}
