package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"orcascope/internal/adapters/dot"
	"orcascope/internal/application"
	"orcascope/internal/application/commands"
	"orcascope/internal/domain"
)

// RegisterReadTools adds all read-only profile tools to the MCP server. The
// linked model is resolved once at startup; profile stores change rarely
// enough that a server restart on edit is acceptable.
func RegisterReadTools(s *server.MCPServer, linked *domain.LinkedSet) {
	s.AddTool(listProfilesTool(), listProfilesHandler(linked))
	s.AddTool(chainTool(), chainHandler(linked))
	s.AddTool(effectiveTool(), effectiveHandler(linked))
	s.AddTool(compareTool(), compareHandler(linked))
	s.AddTool(searchTool(), searchHandler(linked))
	s.AddTool(graphTool(), graphHandler(linked))
}

// --- list_profiles ---

func listProfilesTool() mcp.Tool {
	return mcp.NewTool("list_profiles",
		mcp.WithDescription("List loaded slicer profiles. Optionally restrict to one category (filament, machine, process)."),
		mcp.WithString("category",
			mcp.Description("Profile category to list. Omit to list all categories."),
		),
	)
}

func listProfilesHandler(linked *domain.LinkedSet) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := parseCategoryArg(req.GetString("category", ""))
		if err != nil {
			return toolError(err)
		}

		profiles, err := commands.NewListProfilesCommand(linked, categories).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(profiles) == 0 {
			return mcp.NewToolResultText("No profiles."), nil
		}

		var sb strings.Builder
		for _, p := range profiles {
			fmt.Fprintf(&sb, "%s  %s  %s  %s\n", p.Category, p.Scope, p.Name, p.SourcePath)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- inheritance_chain ---

func chainTool() mcp.Tool {
	return mcp.NewTool("inheritance_chain",
		mcp.WithDescription("Show a profile's inheritance chain from the ultimate root down to the profile, with each ancestor's declared settings."),
		mcp.WithString("name",
			mcp.Description("Profile name"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Profile category (filament, machine, process). Omit when the name is unambiguous."),
		),
	)
}

func chainHandler(linked *domain.LinkedSet) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		category := domain.ParseCategory(req.GetString("category", ""))

		chain, err := commands.NewChainCommand(linked, name, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		names := make([]string, len(chain))
		for i, p := range chain {
			names[i] = p.Name
		}
		fmt.Fprintf(&sb, "Chain: %s\n\n", strings.Join(names, " -> "))
		sb.WriteString(domain.ChainTable(chain).Markdown())
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- effective_settings ---

func effectiveTool() mcp.Tool {
	return mcp.NewTool("effective_settings",
		mcp.WithDescription("Show a profile's fully merged settings with the ancestor that defined each value."),
		mcp.WithString("name",
			mcp.Description("Profile name"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Profile category (filament, machine, process). Omit when the name is unambiguous."),
		),
	)
}

func effectiveHandler(linked *domain.LinkedSet) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		category := domain.ParseCategory(req.GetString("category", ""))

		chain, view, err := commands.NewEffectiveCommand(linked, name, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(domain.EffectiveTable(chain.Target(), view).Markdown()), nil
	}
}

// --- compare_profiles ---

func compareTool() mcp.Tool {
	return mcp.NewTool("compare_profiles",
		mcp.WithDescription("Compare the effective settings of two or more profiles of the same category, side by side."),
		mcp.WithString("names",
			mcp.Description("Comma-separated profile names"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Profile category (filament, machine, process). Omit when the names are unambiguous."),
		),
	)
}

func compareHandler(linked *domain.LinkedSet) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var names []string
		for _, n := range strings.Split(req.GetString("names", ""), ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		category := domain.ParseCategory(req.GetString("category", ""))

		table, err := commands.NewCompareCommand(linked, names, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(table.Markdown()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search profiles by name with fuzzy matching."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(linked *domain.LinkedSet) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(linked, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", r.Profile.Category, r.Profile.Name, r.Profile.SourcePath)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- graph_dot ---

func graphTool() mcp.Tool {
	return mcp.NewTool("graph_dot",
		mcp.WithDescription("Render the inheritance graph as Graphviz DOT text. Filters: category subset, user-touching branches only, or one profile's chain plus descendants."),
		mcp.WithString("categories",
			mcp.Description("Comma-separated categories to include (filament, machine, process). Omit for all."),
		),
		mcp.WithBoolean("user_branches",
			mcp.Description("Keep only branches that touch a user profile."),
		),
		mcp.WithString("target",
			mcp.Description("Restrict to this profile's chain and descendants."),
		),
		mcp.WithBoolean("group_by_dir",
			mcp.Description("Group nodes by their source directory."),
		),
	)
}

func graphHandler(linked *domain.LinkedSet) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := parseCategoryArg(req.GetString("categories", ""))
		if err != nil {
			return toolError(err)
		}

		filter := domain.GraphFilter{
			Categories:   categories,
			UserBranches: req.GetBool("user_branches", false),
			Target:       req.GetString("target", ""),
			GroupByDir:   req.GetBool("group_by_dir", false),
		}

		graph, err := commands.NewGraphCommand(linked, filter).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(dot.Write(graph, "profile inheritance")), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func parseCategoryArg(arg string) ([]domain.Category, error) {
	return application.ValidateCategories("category", arg)
}
