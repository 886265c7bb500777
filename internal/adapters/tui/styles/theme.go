package styles

import (
	"github.com/charmbracelet/lipgloss"

	"orcascope/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Category colors
	Filament = lipgloss.Color("#F97316") // Orange
	Machine  = lipgloss.Color("#60A5FA") // Blue
	Process  = lipgloss.Color("#8B5CF6") // Violet

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree node styles
	NodeCategory = lipgloss.NewStyle().
			Bold(true)

	NodeSystem = lipgloss.NewStyle()

	NodeUser = lipgloss.NewStyle().
			Foreground(Secondary)

	NodeBroken = lipgloss.NewStyle().
			Foreground(Error)

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Table styles
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// CategoryColor returns the color for a profile category
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryFilament:
		return Filament
	case domain.CategoryMachine:
		return Machine
	case domain.CategoryProcess:
		return Process
	default:
		return Primary
	}
}
