package screen

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazystay/internal/theme"
)

const infoWidth = 60

// Field is one labelled row of an info box.
type Field struct {
	Label string
	Value string
}

// InfoScreen is a dismissable box with a message and labelled fields.
type InfoScreen struct {
	Title   string
	Message string
	Fields  []Field
	IsError bool
	Thm     *theme.Theme

	OnClose func() tea.Cmd
}

// NewInfoScreen creates an informational box.
func NewInfoScreen(title, message string, thm *theme.Theme, fields ...Field) *InfoScreen {
	return &InfoScreen{
		Title:   title,
		Message: message,
		Fields:  fields,
		Thm:     thm,
	}
}

// NewErrorScreen creates an info box styled as an error.
func NewErrorScreen(message string, thm *theme.Theme) *InfoScreen {
	s := NewInfoScreen("Error", message, thm)
	s.IsError = true
	return s
}

// Type returns TypeInfo.
func (s *InfoScreen) Type() Type {
	return TypeInfo
}

// Update closes the box on enter, esc or q.
func (s *InfoScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc, keyEscRaw, keyQ, keyCtrlC:
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	}
	return s, nil
}

// Text returns the message and fields as plain lines.
func (s *InfoScreen) Text() string {
	lines := make([]string, 0, len(s.Fields)+1)
	if s.Message != "" {
		lines = append(lines, s.Message)
	}
	for _, f := range s.Fields {
		lines = append(lines, f.Label+": "+f.Value)
	}
	return strings.Join(lines, "\n")
}

// View renders the box.
func (s *InfoScreen) View() string {
	accent := s.Thm.Accent
	if s.IsError {
		accent = s.Thm.ErrorFg
	}
	inner := infoWidth - 4

	parts := []string{
		lipgloss.NewStyle().Width(inner).Foreground(accent).Bold(true).Render(s.Title),
	}
	if s.Message != "" {
		parts = append(parts, "", lipgloss.NewStyle().Width(inner).Foreground(s.Thm.TextFg).Render(s.Message))
	}
	if len(s.Fields) > 0 {
		labelWidth := 0
		for _, f := range s.Fields {
			labelWidth = max(labelWidth, lipgloss.Width(f.Label))
		}
		label := lipgloss.NewStyle().Width(labelWidth + 2).Foreground(s.Thm.MutedFg)
		value := lipgloss.NewStyle().Width(inner - labelWidth - 2).Foreground(s.Thm.TextFg)

		parts = append(parts, "")
		for _, f := range s.Fields {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(f.Label), value.Render(f.Value)))
		}
	}
	parts = append(parts, "", lipgloss.NewStyle().Foreground(s.Thm.MutedFg).Render("enter/esc: close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(infoWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
