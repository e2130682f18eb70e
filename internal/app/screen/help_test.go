package screen

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazystay/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSections() []HelpSection {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden action"))
	disabled.SetEnabled(false)
	return []HelpSection{
		BindingSection("Browsing",
			key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "row down")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			disabled,
		),
	}
}

func TestBindingSection(t *testing.T) {
	sec := testSections()[0]
	assert.Equal(t, "Browsing", sec.Title)
	assert.Equal(t, []HelpEntry{{Keys: "j", Desc: "row down"}, {Keys: "q", Desc: "quit"}}, sec.Entries)
}

func TestHelpScreenSize(t *testing.T) {
	s := NewHelpScreen(nil, 200, 100, theme.Dracula())
	assert.Equal(t, 90, s.Width)
	assert.Equal(t, 36, s.Height)

	s.SetSize(40, 10)
	assert.Equal(t, 50, s.Width)
	assert.Equal(t, 14, s.Height)
	assert.Equal(t, 48, s.Viewport.Width)

	s.SetSize(0, 0)
	assert.Equal(t, 72, s.Width)
	assert.Equal(t, 26, s.Height)
}

func TestHelpScreenSearch(t *testing.T) {
	s := NewHelpScreen(testSections(), 120, 60, theme.Dracula())

	next, _ := s.Update(runeKey("/"))
	require.NotNil(t, next)
	assert.True(t, s.Searching)

	for _, r := range "counter" {
		next, _ = s.Update(runeKey(string(r)))
		require.NotNil(t, next)
	}
	assert.Equal(t, "counter", s.SearchQuery)
	content := s.renderContent()
	assert.Contains(t, content, "Filter Panel")
	assert.Contains(t, content, "focused")
	assert.NotContains(t, content, "quit")
	assert.NotContains(t, content, "Browsing")

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, s.Searching)
	assert.Equal(t, "counter", s.SearchQuery)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, next, "first esc clears the search")
	assert.Empty(t, s.SearchQuery)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, next, "second esc closes")
}

func TestHelpScreenSearchHeadingKeepsSection(t *testing.T) {
	s := NewHelpScreen(testSections(), 120, 60, theme.Dracula())
	s.SearchQuery = "browsing"

	content := s.renderContent()
	assert.Contains(t, content, "row down")
	assert.Contains(t, content, "quit")
	assert.NotContains(t, content, "Filter Panel")
}

func TestHelpScreenSearchNotes(t *testing.T) {
	s := NewHelpScreen(nil, 120, 60, theme.Dracula())
	s.SearchQuery = "config.toml"

	content := s.renderContent()
	assert.Contains(t, content, "Configuration & Overrides")
	assert.NotContains(t, content, "Example")
}

func TestHelpScreenNoMatch(t *testing.T) {
	s := NewHelpScreen(nil, 120, 60, theme.Dracula())
	s.SearchQuery = "zzz"
	assert.Contains(t, s.renderContent(), `No help entries match "zzz"`)
}

func TestHelpScreenSearchMatchesKeysOrDesc(t *testing.T) {
	s := NewHelpScreen(testSections(), 120, 60, theme.Dracula())

	s.SearchQuery = "q"
	content := s.renderContent()
	assert.Contains(t, content, "Browsing")
	assert.NotContains(t, content, "row down")

	// A query spanning the key and its description matches neither.
	s.SearchQuery = "q quit"
	assert.Contains(t, s.renderContent(), `No help entries match "q quit"`)
}

func TestHelpScreenQuitKey(t *testing.T) {
	s := NewHelpScreen(nil, 120, 60, theme.Dracula())
	next, _ := s.Update(runeKey("q"))
	assert.Nil(t, next)

	s = NewHelpScreen(nil, 120, 60, theme.Dracula())
	s.Update(runeKey("/"))
	next, _ = s.Update(runeKey("q"))
	assert.NotNil(t, next, "q is typed while searching")
	assert.Equal(t, "q", s.SearchQuery)
}

func TestHelpScreenView(t *testing.T) {
	view := NewHelpScreen(testSections(), 120, 60, theme.Nord()).View()
	assert.Contains(t, view, "lazystay help")
	assert.Contains(t, view, "Browsing")
	assert.Contains(t, view, "esc: close")
}

func TestHighlightMatches(t *testing.T) {
	plain := lipgloss.NewStyle()
	assert.Equal(t, "plain", highlightMatches("plain", "", plain))
	assert.Equal(t, "aBcabc", highlightMatches("aBcabc", "b", plain))
	assert.Equal(t, "none", highlightMatches("none", "zz", plain))
}

func TestGlyphsFor(t *testing.T) {
	assert.Equal(t, "♥", GlyphsFor(true).Heart(true))
	assert.Equal(t, "♡", GlyphsFor(true).Heart(false))
	assert.Equal(t, "<3", GlyphsFor(false).Heart(true))
	assert.Equal(t, "*", GlyphsFor(false).Star)
}
