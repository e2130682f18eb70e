package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazystay/internal/theme"
)

// HelpEntry is one key and what it does.
type HelpEntry struct {
	Keys string
	Desc string
}

// HelpSection groups entries under a heading. Notes are free text lines
// shown after the entries.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
	Notes   []string
}

// BindingSection builds a section from key bindings, skipping disabled ones.
func BindingSection(title string, bindings ...key.Binding) HelpSection {
	sec := HelpSection{Title: title}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		sec.Entries = append(sec.Entries, HelpEntry{Keys: h.Key, Desc: h.Desc})
	}
	return sec
}

// Sections describing the overlays themselves, appended after the caller's.
var builtinHelp = []HelpSection{
	{
		Title: "Filter Panel",
		Entries: []HelpEntry{
			{"tab / j / k", "move between sections"},
			{"h / l", "move between options, or step a counter"},
			{"space", "select or clear the highlighted option"},
			{"+ / -", "step the focused counter"},
			{"c", "clear all"},
			{"enter", "show properties (apply)"},
			{"esc", "close without applying"},
		},
	},
	{
		Title: "Help Navigation",
		Entries: []HelpEntry{
			{"/", "search help (enter to apply, esc to clear)"},
			{"j / k", "scroll"},
			{"ctrl+d / ctrl+u", "half page down / up"},
			{"q / esc", "close help"},
		},
	},
	{
		Title: "Configuration & Overrides",
		Notes: []string{
			"Read from ~/.config/lazystay/config.yaml, config.yml or config.toml.",
			"Overrides win over the file: lazystay --config=ls.key=value",
			"Example: lazystay -C ls.theme=nord -C ls.dismiss_policy=discard",
		},
	},
}

// HelpScreen renders searchable documentation for the app controls.
type HelpScreen struct {
	Viewport    viewport.Model
	Width       int
	Height      int
	Sections    []HelpSection
	SearchInput textinput.Model
	Searching   bool
	SearchQuery string
	Thm         *theme.Theme
}

// NewHelpScreen shows sections followed by the built-in overlay sections.
func NewHelpScreen(sections []HelpSection, maxWidth, maxHeight int, thm *theme.Theme) *HelpScreen {
	ti := textinput.New()
	ti.Placeholder = "Search help"
	ti.CharLimit = 64
	ti.Prompt = "/ "

	all := make([]HelpSection, 0, len(sections)+len(builtinHelp))
	all = append(all, sections...)
	all = append(all, builtinHelp...)

	s := &HelpScreen{
		Viewport:    viewport.New(0, 0),
		Sections:    all,
		SearchInput: ti,
		Thm:         thm,
	}
	s.SetSize(maxWidth, maxHeight)
	s.refreshContent()
	return s
}

// Type returns TypeHelp.
func (s *HelpScreen) Type() Type {
	return TypeHelp
}

// SetSize fits the screen to a terminal of maxWidth x maxHeight cells.
func (s *HelpScreen) SetSize(maxWidth, maxHeight int) {
	s.Width, s.Height = 72, 26
	if maxWidth > 0 {
		s.Width = min(90, max(50, maxWidth*3/4))
	}
	if maxHeight > 0 {
		s.Height = min(36, max(14, maxHeight*7/10))
	}
	s.Viewport.Width = s.Width - 2
	s.Viewport.Height = max(5, s.Height-4)
	s.SearchInput.Width = max(20, s.Width-6)
}

// Update handles scrolling and search input.
func (s *HelpScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	k := msg.String()

	if s.Searching {
		switch k {
		case keyEnter:
			s.Searching = false
			s.SearchInput.Blur()
			return s, nil
		case keyEsc, keyEscRaw, keyCtrlC:
			s.resetSearch()
			return s, nil
		}
		var cmd tea.Cmd
		s.SearchInput, cmd = s.SearchInput.Update(msg)
		s.setQuery(s.SearchInput.Value())
		return s, cmd
	}

	switch k {
	case "/":
		s.Searching = true
		return s, s.SearchInput.Focus()
	case keyEsc, keyEscRaw, keyCtrlC:
		if s.SearchQuery != "" {
			s.resetSearch()
			return s, nil
		}
		return nil, nil
	case keyQ:
		return nil, nil
	case keyCtrlD, keySpace:
		s.Viewport.HalfPageDown()
		return s, nil
	case keyCtrlU:
		s.Viewport.HalfPageUp()
		return s, nil
	case "j", keyDown:
		s.Viewport.ScrollDown(1)
		return s, nil
	case "k", keyUp:
		s.Viewport.ScrollUp(1)
		return s, nil
	}

	var cmd tea.Cmd
	s.Viewport, cmd = s.Viewport.Update(msg)
	return s, cmd
}

func (s *HelpScreen) setQuery(q string) {
	q = strings.TrimSpace(q)
	if q == s.SearchQuery {
		return
	}
	s.SearchQuery = q
	s.refreshContent()
}

func (s *HelpScreen) resetSearch() {
	s.Searching = false
	s.SearchInput.Blur()
	s.SearchInput.SetValue("")
	s.setQuery("")
}

func (s *HelpScreen) refreshContent() {
	s.Viewport.SetContent(s.renderContent())
	s.Viewport.GotoTop()
}

// renderContent draws every section, or with an active query only the
// matching lines under their headings. A query matching a heading keeps
// the whole section.
func (s *HelpScreen) renderContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(s.Thm.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(s.Thm.Price).Bold(true)
	mark := lipgloss.NewStyle().Foreground(s.Thm.AccentFg).Background(s.Thm.Accent).Bold(true)

	query := strings.ToLower(s.SearchQuery)
	matches := func(text string) bool {
		return query == "" || strings.Contains(strings.ToLower(text), query)
	}

	var blocks []string
	for _, sec := range s.Sections {
		whole := query != "" && matches(sec.Title)
		width := 0
		for _, e := range sec.Entries {
			width = max(width, lipgloss.Width(e.Keys))
		}

		var lines []string
		for _, e := range sec.Entries {
			if !whole && !matches(e.Keys) && !matches(e.Desc) {
				continue
			}
			pad := strings.Repeat(" ", width-lipgloss.Width(e.Keys))
			lines = append(lines, "  "+keyStyle.Render(highlightMatches(e.Keys, query, mark))+pad+"  "+highlightMatches(e.Desc, query, mark))
		}
		for _, note := range sec.Notes {
			if whole || matches(note) {
				lines = append(lines, "  "+highlightMatches(note, query, mark))
			}
		}
		if len(lines) == 0 {
			continue
		}
		heading := titleStyle.Render(highlightMatches(sec.Title, query, mark))
		blocks = append(blocks, heading+"\n"+strings.Join(lines, "\n"))
	}

	if len(blocks) == 0 {
		return fmt.Sprintf("No help entries match %q", s.SearchQuery)
	}
	return strings.Join(blocks, "\n\n")
}

// highlightMatches marks every case-insensitive occurrence of lowerQuery.
// Text whose lowercase form changes byte length is returned as is.
func highlightMatches(text, lowerQuery string, style lipgloss.Style) string {
	lower := strings.ToLower(text)
	if lowerQuery == "" || len(lower) != len(text) {
		return text
	}

	var b strings.Builder
	from := 0
	for {
		idx := strings.Index(lower[from:], lowerQuery)
		if idx < 0 {
			b.WriteString(text[from:])
			return b.String()
		}
		start := from + idx
		end := start + len(lowerQuery)
		b.WriteString(text[from:start])
		b.WriteString(style.Render(text[start:end]))
		from = end
	}
}

// View renders the help box.
func (s *HelpScreen) View() string {
	inner := s.Width - 2
	line := lipgloss.NewStyle().Width(inner).Padding(0, 1)

	title := line.
		Foreground(s.Thm.Accent).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(s.Thm.BorderDim).
		Render("lazystay help")

	parts := []string{title}
	if s.Searching || s.SearchQuery != "" {
		parts = append(parts, line.Render(s.SearchInput.View()))
	}
	parts = append(parts,
		line.Render(s.Viewport.View()),
		line.Foreground(s.Thm.MutedFg).Render("j/k: scroll • ctrl+d/u: page • /: search • esc: close"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Width(s.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
