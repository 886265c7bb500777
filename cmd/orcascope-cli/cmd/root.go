package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orcascope/internal/adapters/filesystem"
	"orcascope/internal/application/commands"
	"orcascope/internal/config"
	"orcascope/internal/domain"
)

var (
	rootDir string
	quiet   bool
	loader  *filesystem.Loader
)

var rootCmd = &cobra.Command{
	Use:   "orcascope-cli",
	Short: "CLI for exploring slicer profile inheritance",
	Long: `orcascope-cli inspects OrcaSlicer-style profile stores: JSON profiles
in a system scope and a user scope, linked by name-based inheritance.

It provides commands to list profiles, walk inheritance chains, compute
effective settings, compare profiles, and render the inheritance graph.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		loader = filesystem.NewLoader(rootDir)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", config.RootDir(), "path to the profile store root")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress load and link warnings")
}

// GetLoader returns the initialized profile loader
func GetLoader() *filesystem.Loader {
	return loader
}

// resolveModel loads the store and links it, printing recovered warnings to
// stderr unless --quiet is set.
func resolveModel(ctx context.Context, categories []domain.Category) (*domain.LinkedSet, error) {
	linked, warnings, err := commands.NewResolveCommand(loader, categories).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if !quiet {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
		}
	}
	return linked, nil
}
