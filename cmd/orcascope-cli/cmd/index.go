package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"orcascope/internal/adapters/sqlite"
	"orcascope/internal/application"
	"orcascope/internal/application/commands"
)

var indexFull bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Refresh the profile catalog",
	Long: `Refresh the SQLite catalog used for fast queries over large profile
libraries. By default only files changed since the last sync are re-read;
--full rebuilds the catalog from scratch.

Examples:
  orcascope-cli index
  orcascope-cli index --full`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		catalog := sqlite.NewCatalog()
		stats, err := commands.NewSyncCatalogCommand(catalog, GetLoader().RootDir(), indexFull).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Scanned %d files in %v\n", stats.FilesScanned, stats.Duration.Round(1e6))
		fmt.Printf("  profiles: %d added, %d updated, %d removed\n",
			stats.NodesAdded, stats.NodesUpdated, stats.NodesDeleted)
		fmt.Printf("  links:    %d indexed\n", stats.EdgesAdded)
		return nil
	},
}

var indexSearchCategory string

var indexSearchCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Query the catalog without loading the store",
	Long: `Query the SQLite catalog built by "index". Faster than a full load for
large libraries, but only as fresh as the last sync.

Examples:
  orcascope-cli index lookup pla
  orcascope-cli index children "Base PLA" --category filament`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := sqlite.NewCatalog()
		if err := catalog.Open(GetLoader().RootDir()); err != nil {
			return err
		}
		defer catalog.Close()

		entries, err := catalog.Search(args[0])
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%-9s %-7s %-40s %s\n", e.Category, e.Scope, e.Name, e.Path)
		}
		return nil
	},
}

var indexChildrenCmd = &cobra.Command{
	Use:   "children <profile>",
	Short: "List direct children from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := application.ValidateCategory("category", indexSearchCategory)
		if err != nil {
			return err
		}
		if category == application.CategoryUnknown {
			return &application.ValidationError{
				Field:   "category",
				Message: "category is required for catalog child lookups",
			}
		}

		catalog := sqlite.NewCatalog()
		if err := catalog.Open(GetLoader().RootDir()); err != nil {
			return err
		}
		defer catalog.Close()

		entries, err := catalog.ChildrenOf(args[0], category)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%-7s %-40s %s\n", e.Scope, e.Name, e.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexChildrenCmd)
	indexCmd.Flags().BoolVarP(&indexFull, "full", "f", false, "rebuild the catalog from scratch")
	indexChildrenCmd.Flags().StringVarP(&indexSearchCategory, "category", "c", "", "profile category (filament, machine, process)")
}
