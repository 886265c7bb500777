package views

import (
	"fmt"
	"strings"

	"orcascope/internal/adapters/tui/styles"
	"orcascope/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderHelpLine renders key/description pairs as a single help line
func RenderHelpLine(pairs ...[2]string) string {
	var parts []string
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(p[0]),
			styles.HelpDesc.Render(p[1]),
		))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// Messages for view switching
type SwitchToInspectMsg struct {
	Profile *domain.Profile
}

type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the app to suspend and open a profile source file
type OpenEditorMsg struct {
	Path string
}
