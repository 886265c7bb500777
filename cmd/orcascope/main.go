package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"orcascope/internal/adapters/editor"
	"orcascope/internal/adapters/filesystem"
	"orcascope/internal/adapters/tui"
	"orcascope/internal/application/commands"
	"orcascope/internal/config"
)

func main() {
	loader := filesystem.NewLoader(config.RootDir())

	// Resolve the model up front; warnings go to stderr before the alternate
	// screen takes over.
	linked, warnings, err := commands.NewResolveCommand(loader, nil).Execute(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}

	editorOpener := editor.NewOpener()

	app := tui.NewApp(linked, loader.RootDir(), editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
