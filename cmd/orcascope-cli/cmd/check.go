package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"orcascope/internal/application/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report structural problems in the store",
	Long: `Load the whole store and report every recovered problem: unreadable or
malformed files, duplicate names within a scope, dangling parents, and
inheritance cycles. Exits non-zero when any problem is found.

Example:
  orcascope-cli check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		linked, warnings, err := commands.NewResolveCommand(GetLoader(), nil).Execute(ctx)
		if err != nil {
			return err
		}

		if len(warnings) == 0 {
			fmt.Printf("OK: %d profiles, no problems found\n", len(linked.Profiles()))
			return nil
		}

		for _, w := range warnings {
			fmt.Printf("PROBLEM: %v\n", w)
		}
		return fmt.Errorf("%d problems found across %d profiles", len(warnings), len(linked.Profiles()))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
