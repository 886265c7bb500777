package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"orcascope/internal/application"
	"orcascope/internal/application/commands"
)

var (
	childrenCategory  string
	childrenRecursive bool
)

var childrenCmd = &cobra.Command{
	Use:   "children <profile>",
	Short: "List profiles inheriting from a profile",
	Long: `List the profiles that declare the given profile as their parent.
With --recursive the full descendant closure is listed instead.

Examples:
  orcascope-cli children "Base PLA"
  orcascope-cli children "Base PLA" --recursive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		category, err := application.ValidateCategory("category", childrenCategory)
		if err != nil {
			return err
		}

		linked, err := resolveModel(ctx, nil)
		if err != nil {
			return err
		}

		children, err := commands.NewChildrenCommand(linked, args[0], category, childrenRecursive).Execute(ctx)
		if err != nil {
			return err
		}

		for _, p := range children {
			fmt.Printf("%-7s %-40s %s\n", p.Scope, p.Name, p.SourcePath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(childrenCmd)
	childrenCmd.Flags().StringVarP(&childrenCategory, "category", "c", "", "profile category (filament, machine, process)")
	childrenCmd.Flags().BoolVarP(&childrenRecursive, "recursive", "R", false, "list all descendants, not just direct children")
}
