package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"orcascope/internal/adapters/filesystem"
	mcpadapter "orcascope/internal/adapters/mcp"
	"orcascope/internal/application/commands"
	"orcascope/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.RootDir(), "path to the profile store root")
	flag.Parse()

	loader := filesystem.NewLoader(*rootFlag)

	linked, warnings, err := commands.NewResolveCommand(loader, nil).Execute(context.Background())
	if err != nil {
		log.Fatalf("orcascope-mcp: %v", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}

	mcpServer := server.NewMCPServer(
		"orcascope-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, linked)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("orcascope-mcp: %v", err)
	}
}
