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

var treeCategories string

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the inheritance forest",
	Long: `Display the inheritance forest: categories at the top, root profiles
beneath them, children indented under their parents. Profiles whose parent
could not be resolved are flagged and shown as roots.

Example:
  orcascope-cli tree --categories filament`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		categories, err := application.ValidateCategories("categories", treeCategories)
		if err != nil {
			return err
		}

		linked, err := resolveModel(ctx, categories)
		if err != nil {
			return err
		}

		root, err := commands.NewBuildTreeCommand(linked).Execute(ctx)
		if err != nil {
			return err
		}

		for _, catNode := range root.Children {
			fmt.Printf("%s\n", catNode.Name)
			for _, child := range catNode.Children {
				printSubtree(child, 1)
			}
		}
		return nil
	},
}

func printSubtree(node *domain.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	suffix := ""
	if node.Profile != nil && node.Profile.Scope == domain.ScopeUser {
		suffix = "  [user]"
	}
	if node.Broken {
		suffix += fmt.Sprintf("  ! unresolved parent %q", node.Profile.Inherits)
	}
	fmt.Printf("%s%s%s\n", indent, node.Name, suffix)

	for _, child := range node.Children {
		printSubtree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringVarP(&treeCategories, "categories", "c", "", "comma-separated categories to show")
}
