package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"orcascope/internal/application"
	"orcascope/internal/application/commands"
	"orcascope/internal/domain"
)

var chainCategory string

var chainCmd = &cobra.Command{
	Use:   "chain <profile>",
	Short: "Show a profile's inheritance chain",
	Long: `Show the inheritance chain of a profile from the ultimate root down to
the profile itself, with a column of declared settings per ancestor.

Examples:
  orcascope-cli chain "Acme PLA Red"
  orcascope-cli chain "Fine" --category process`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		category, err := application.ValidateCategory("category", chainCategory)
		if err != nil {
			return err
		}

		linked, err := resolveModel(ctx, nil)
		if err != nil {
			return err
		}

		chain, err := commands.NewChainCommand(linked, args[0], category).Execute(ctx)
		if err != nil {
			return err
		}

		names := make([]string, len(chain))
		for i, p := range chain {
			names[i] = p.Name
		}
		fmt.Printf("Chain: %s\n\n", strings.Join(names, " -> "))
		fmt.Print(domain.ChainTable(chain).Markdown())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
	chainCmd.Flags().StringVarP(&chainCategory, "category", "c", "", "profile category (filament, machine, process)")
}
