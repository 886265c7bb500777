package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orcascope/internal/adapters/dot"
	"orcascope/internal/application"
	"orcascope/internal/application/commands"
	"orcascope/internal/domain"
)

var (
	graphCategories   string
	graphUserBranches bool
	graphTarget       string
	graphGroupByDir   bool
	graphOutput       string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the inheritance graph as Graphviz DOT",
	Long: `Render the inheritance graph in DOT format. System profiles are blue,
user profiles yellow, unresolved links outlined in red.

Examples:
  orcascope-cli graph --categories filament -o filament.dot
  orcascope-cli graph --user-branches
  orcascope-cli graph --target "Acme PLA Red" --group-by-dir`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		categories, err := application.ValidateCategories("categories", graphCategories)
		if err != nil {
			return err
		}

		linked, err := resolveModel(ctx, nil)
		if err != nil {
			return err
		}

		filter := domain.GraphFilter{
			Categories:   categories,
			UserBranches: graphUserBranches,
			Target:       graphTarget,
			GroupByDir:   graphGroupByDir,
		}
		graph, err := commands.NewGraphCommand(linked, filter).Execute(ctx)
		if err != nil {
			return err
		}

		text := dot.Write(graph, graphTitle())

		if graphOutput == "" {
			fmt.Print(text)
			return nil
		}
		if err := os.WriteFile(graphOutput, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write graph: %w", err)
		}
		fmt.Printf("Wrote %d nodes and %d edges to %s\n", len(graph.Nodes), len(graph.Edges), graphOutput)
		fmt.Printf("Render it with: dot -Tsvg %s -o graph.svg\n", graphOutput)
		return nil
	},
}

func graphTitle() string {
	if graphTarget != "" {
		return fmt.Sprintf("inheritance of %s", graphTarget)
	}
	if graphCategories != "" {
		return graphCategories + " profiles"
	}
	return "profile inheritance"
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringVarP(&graphCategories, "categories", "c", "", "comma-separated categories to include")
	graphCmd.Flags().BoolVarP(&graphUserBranches, "user-branches", "u", false, "keep only branches touching a user profile")
	graphCmd.Flags().StringVarP(&graphTarget, "target", "t", "", "restrict to this profile's chain and descendants")
	graphCmd.Flags().BoolVarP(&graphGroupByDir, "group-by-dir", "g", false, "group nodes by source directory")
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "write DOT to this file instead of stdout")
}
