package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"orcascope/internal/adapters/tui/styles"
	"orcascope/internal/domain"
)

// InspectKeyMap defines key bindings for the inspect view
type InspectKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

var InspectKeys = InspectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up", "pgup"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "pgdown"),
		key.WithHelp("j/↓", "scroll down"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// InspectModel shows the effective settings of one profile: the chain it was
// merged from and every resolved value with its defining ancestor.
type InspectModel struct {
	ViewState

	linked  *domain.LinkedSet
	profile *domain.Profile
	chain   domain.Chain
	rows    [][]string
	offset  int
}

// NewInspectModel creates a new inspect view model
func NewInspectModel(linked *domain.LinkedSet) *InspectModel {
	return &InspectModel{linked: linked}
}

// SetProfile loads the given profile's effective view into the model
func (m *InspectModel) SetProfile(p *domain.Profile) {
	m.profile = p
	m.offset = 0
	m.rows = nil
	m.ClearMessage()

	chain, err := m.linked.ChainOf(p)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.chain = chain

	view := domain.EffectiveSettings(chain)
	table := domain.EffectiveTable(p, view)
	m.rows = table.Rows
}

// Init initializes the inspect view
func (m *InspectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspect view
func (m *InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, InspectKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, InspectKeys.Up):
			if m.offset > 0 {
				m.offset--
			}
			return m, nil

		case key.Matches(msg, InspectKeys.Down):
			if m.offset < len(m.rows)-m.visibleRows() {
				m.offset++
			}
			return m, nil
		}
	}

	return m, nil
}

// visibleRows returns how many table rows fit under the header block
func (m *InspectModel) visibleRows() int {
	// Title, chain line, column header, help line plus padding
	reserved := 10
	if m.Height <= reserved {
		return 10
	}
	return m.Height - reserved
}

// View renders the inspect view
func (m *InspectModel) View() string {
	if m.profile == nil {
		return styles.App.Render("Nothing selected")
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render(m.profile.Name))
	b.WriteString("\n")

	names := make([]string, len(m.chain))
	for i, p := range m.chain {
		names[i] = p.Name
	}
	b.WriteString(styles.Subtitle.Render("Chain: " + strings.Join(names, " → ")))
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	keyWidth, valWidth := m.columnWidths()
	b.WriteString(styles.TableHeader.Render(fmt.Sprintf("%-*s  %-*s  %s",
		keyWidth, "Setting", valWidth, "Value", "Defined By")))
	b.WriteString("\n")

	end := m.offset + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for _, row := range m.rows[m.offset:end] {
		value := row[1]
		if len(value) > valWidth {
			value = value[:valWidth-1] + "…"
		}
		line := fmt.Sprintf("%-*s  %-*s  %s", keyWidth, row[0], valWidth, value, row[2])
		if row[2] == m.profile.Name {
			// Values the profile defines itself stand out from inherited ones
			b.WriteString(line)
		} else {
			b.WriteString(styles.MutedText.Render(line))
		}
		b.WriteString("\n")
	}

	if end < len(m.rows) {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("… %d more", len(m.rows)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		[2]string{"j/k", "scroll"},
		[2]string{"esc", "back"},
	))

	return styles.App.Render(b.String())
}

func (m *InspectModel) columnWidths() (int, int) {
	keyWidth := 20
	for _, row := range m.rows {
		if len(row[0]) > keyWidth {
			keyWidth = len(row[0])
		}
	}
	if keyWidth > 40 {
		keyWidth = 40
	}
	valWidth := 30
	return keyWidth, valWidth
}
