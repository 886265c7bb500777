package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"orcascope/internal/adapters/tui/styles"
	"orcascope/internal/application/commands"
	"orcascope/internal/domain"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Inspect key.Binding
	Cancel  key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy name"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "inspect"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// SearchModel is the model for the fuzzy profile search view
type SearchModel struct {
	ViewState

	linked  *domain.LinkedSet
	input   textinput.Model
	results []commands.SearchResult
	cursor  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(linked *domain.LinkedSet) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search profiles..."
	input.Focus()

	return &SearchModel{
		linked: linked,
		input:  input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.ClearMessage()
	m.input.Focus()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if r := m.selectedResult(); r != nil {
				if err := clipboard.WriteAll(r.Profile.Name); err != nil {
					m.SetMessage("clipboard unavailable", true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %q", r.Profile.Name), false)
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Inspect):
			if r := m.selectedResult(); r != nil {
				profile := r.Profile
				return m, func() tea.Msg {
					return SwitchToInspectMsg{Profile: profile}
				}
			}
			return m, nil
		}
	}

	// Update input and re-run the search in place; the model is in memory
	// so there is no need for an async command.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if len(query) >= 2 {
		m.results = commands.FuzzySort(m.linked.Profiles(), query)
	} else {
		m.results = nil
	}
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}

	return m, cmd
}

func (m *SearchModel) selectedResult() *commands.SearchResult {
	if m.cursor >= 0 && m.cursor < len(m.results) {
		return &m.results[m.cursor]
	}
	return nil
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if len(m.input.Value()) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		maxResults := 10
		if len(m.results) < maxResults {
			maxResults = len(m.results)
		}

		for i := 0; i < maxResults; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.results) > 10 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-10)))
		}
	}

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(
		[2]string{"↑/↓", "navigate"},
		[2]string{"enter", "copy name"},
		[2]string{"tab", "inspect"},
		[2]string{"esc", "cancel"},
	))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(r commands.SearchResult, selected bool) string {
	tag := fmt.Sprintf("[%s]", r.Profile.Category)
	text := fmt.Sprintf("%-10s %s", tag, r.Profile.Name)
	if r.Profile.Scope == domain.ScopeUser {
		text += "  (user)"
	}

	if selected {
		return styles.NodeSelected.Render(text)
	}
	return text
}
