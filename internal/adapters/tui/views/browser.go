package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"orcascope/internal/adapters/tui/styles"
	"orcascope/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Inspect key.Binding
	Edit    key.Binding
	Search  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inspect"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit source"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the inheritance forest browser
type BrowserModel struct {
	ViewState

	linked    *domain.LinkedSet
	rootDir   string
	root      *domain.TreeNode
	flatNodes []*domain.TreeNode
	cursor    int
	canEdit   bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(linked *domain.LinkedSet, rootDir string, canEdit bool) *BrowserModel {
	m := &BrowserModel{
		linked:  linked,
		rootDir: rootDir,
		canEdit: canEdit,
		root:    linked.BuildTree(),
	}
	m.refreshFlatNodes()
	return m
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded && len(node.Children) > 0 {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil && node.Parent.Parent != nil {
					// Move to parent (but never onto the synthetic root)
					for i, n := range m.flatNodes {
						if n == node.Parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && len(node.Children) > 0 {
				node.Expand()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil && len(node.Children) > 0 {
				node.Toggle()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Inspect):
			if node := m.selectedNode(); node != nil && node.Profile != nil {
				profile := node.Profile
				return m, func() tea.Msg {
					return SwitchToInspectMsg{Profile: profile}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if node := m.selectedNode(); node != nil && node.Profile != nil && m.canEdit {
				path := filepath.Join(m.rootDir, filepath.FromSlash(node.Profile.SourcePath))
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	m.flatNodes = m.root.Flatten()
	// Skip synthetic root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Orcascope"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Slicer Profile Inheritance Explorer"))
	b.WriteString("\n\n")

	if len(m.flatNodes) == 0 {
		b.WriteString(styles.MutedText.Render("No profiles loaded"))
		b.WriteString("\n")
	}

	for i, node := range m.flatNodes {
		b.WriteString(m.renderNode(node, i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		[2]string{"j/k", "navigate"},
		[2]string{"h/l", "collapse/expand"},
		[2]string{"i", "inspect"},
		[2]string{"e", "edit"},
		[2]string{"/", "search"},
		[2]string{"?", "help"},
		[2]string{"q", "quit"},
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, selected bool) string {
	depth := node.Depth()
	indent := strings.Repeat("  ", depth-1)

	var prefix string
	switch {
	case len(node.Children) == 0:
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := node.Name
	var style lipgloss.Style
	if node.Profile == nil {
		// Category heading
		style = styles.NodeCategory.Foreground(styles.CategoryColor(node.Category))
	} else {
		if node.Profile.Scope == domain.ScopeUser {
			style = styles.NodeUser
			text += "  [user]"
		} else {
			style = styles.NodeSystem
		}
		if node.Broken {
			style = styles.NodeBroken
			text += fmt.Sprintf("  ! unresolved parent %q", node.Profile.Inherits)
		}
	}

	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText)
}
