package screen

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/theme"
)

// FilterRow is one focusable row of the filter panel.
type FilterRow int

// Filter panel rows, top to bottom.
const (
	RowPrice FilterRow = iota
	RowType
	RowGuests
	RowBedrooms
	filterRowCount
)

const filterWidth = 64

// FilterScreen edits a filter.Controller. The controller keeps the selection;
// the screen only tracks focus.
type FilterScreen struct {
	Ctrl     *filter.Controller
	Row      FilterRow
	PriceIdx int
	TypeIdx  int
	Thm      *theme.Theme
	Glyphs   Glyphs

	// Callbacks
	OnApply   func(filter.Criteria) tea.Cmd
	OnDismiss func() tea.Cmd
}

// NewFilterScreen opens ctrl and returns a panel editing it. The option cursors
// start on the current selection.
func NewFilterScreen(ctrl *filter.Controller, thm *theme.Theme, showIcons bool) *FilterScreen {
	ctrl.Open()
	s := &FilterScreen{
		Ctrl:   ctrl,
		Thm:    thm,
		Glyphs: GlyphsFor(showIcons),
	}
	cur := ctrl.Criteria()
	for i, p := range filter.PriceRanges() {
		if p == cur.PriceRange {
			s.PriceIdx = i
		}
	}
	for i, t := range filter.PropertyTypes() {
		if t == cur.PropertyType {
			s.TypeIdx = i
		}
	}
	return s
}

// Type returns the screen type.
func (s *FilterScreen) Type() Type {
	return TypeFilter
}

// Update handles navigation and editing keys.
// Returns nil to signal that the screen should be closed.
func (s *FilterScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		criteria := s.Ctrl.Apply()
		if s.OnApply != nil {
			return nil, s.OnApply(criteria)
		}
		return nil, nil
	case keyEsc, keyEscRaw, keyQ, keyCtrlC:
		s.Ctrl.Dismiss()
		if s.OnDismiss != nil {
			return nil, s.OnDismiss()
		}
		return nil, nil
	case keyTab, "j", keyDown:
		s.Row = (s.Row + 1) % filterRowCount
	case keyShiftTab, "k", keyUp:
		s.Row = (s.Row + filterRowCount - 1) % filterRowCount
	case "h", keyLeft:
		s.move(-1)
	case "l", keyRight:
		s.move(1)
	case keySpace:
		s.toggleFocused()
	case "+", "=":
		if c, ok := s.focusedCounter(); ok {
			s.Ctrl.Increment(c)
		}
	case "-", "_":
		if c, ok := s.focusedCounter(); ok {
			s.Ctrl.Decrement(c)
		}
	case "c":
		s.Ctrl.ClearAll()
	}
	return s, nil
}

// move shifts the option cursor on option rows and steps the counter on
// counter rows.
func (s *FilterScreen) move(delta int) {
	switch s.Row {
	case RowPrice:
		s.PriceIdx = clampIndex(s.PriceIdx+delta, len(filter.PriceRanges()))
	case RowType:
		s.TypeIdx = clampIndex(s.TypeIdx+delta, len(filter.PropertyTypes()))
	case RowGuests, RowBedrooms:
		c, _ := s.focusedCounter()
		if delta > 0 {
			s.Ctrl.Increment(c)
		} else {
			s.Ctrl.Decrement(c)
		}
	}
}

func (s *FilterScreen) toggleFocused() {
	switch s.Row {
	case RowPrice:
		s.Ctrl.TogglePriceRange(filter.PriceRanges()[s.PriceIdx])
	case RowType:
		s.Ctrl.TogglePropertyType(filter.PropertyTypes()[s.TypeIdx])
	}
}

func (s *FilterScreen) focusedCounter() (filter.Counter, bool) {
	switch s.Row {
	case RowGuests:
		return filter.CounterGuests, true
	case RowBedrooms:
		return filter.CounterBedrooms, true
	default:
		return "", false
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// View renders the filter panel.
func (s *FilterScreen) View() string {
	cur := s.Ctrl.Criteria()
	inner := filterWidth - 4

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(0, 1).
		Width(filterWidth)

	muted := lipgloss.NewStyle().Foreground(s.Thm.MutedFg)
	title := lipgloss.NewStyle().Foreground(s.Thm.TextFg).Bold(true).Render("Filters")
	left := muted.Render("c Clear all")
	right := muted.Render("esc " + s.Glyphs.Close)
	gap := max(1, (inner-lipgloss.Width(left)-lipgloss.Width(title)-lipgloss.Width(right))/2)
	header := left + strings.Repeat(" ", gap) + title + strings.Repeat(" ", gap) + right

	priceLabels := make([]string, 0, len(filter.PriceRanges()))
	priceSelected := make([]bool, 0, len(filter.PriceRanges()))
	for _, p := range filter.PriceRanges() {
		priceLabels = append(priceLabels, p.Label())
		priceSelected = append(priceSelected, p == cur.PriceRange)
	}
	typeLabels := make([]string, 0, len(filter.PropertyTypes()))
	typeSelected := make([]bool, 0, len(filter.PropertyTypes()))
	for _, t := range filter.PropertyTypes() {
		typeLabels = append(typeLabels, t.Label())
		typeSelected = append(typeSelected, t == cur.PropertyType)
	}

	sections := []string{
		header,
		"",
		s.sectionTitle(RowPrice, "Price range"),
		s.renderOptions(RowPrice, priceLabels, priceSelected, s.PriceIdx),
		"",
		s.sectionTitle(RowType, "Property type"),
		s.renderOptions(RowType, typeLabels, typeSelected, s.TypeIdx),
		"",
		s.sectionTitle(RowGuests, "Guests"),
		s.renderCounter(RowGuests, "Number of guests", filter.CounterGuests, cur.Guests, inner),
		"",
		s.sectionTitle(RowBedrooms, "Bedrooms"),
		s.renderCounter(RowBedrooms, "Number of bedrooms", filter.CounterBedrooms, cur.Bedrooms, inner),
		"",
		s.renderApply(inner),
		muted.Render("j/k row • h/l option • space select • +/- count • enter apply"),
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (s *FilterScreen) sectionTitle(row FilterRow, label string) string {
	style := lipgloss.NewStyle().Foreground(s.Thm.TextFg).Bold(true)
	prefix := "  "
	if s.Row == row {
		style = style.Foreground(s.Thm.Accent)
		prefix = s.Glyphs.Cursor + " "
	}
	return style.Render(prefix + label)
}

func (s *FilterScreen) renderOptions(row FilterRow, labels []string, selected []bool, cursor int) string {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(s.Thm.TextFg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.BorderDim)

	chips := make([]string, 0, len(labels))
	for i, label := range labels {
		style := base
		if selected[i] {
			style = style.Foreground(s.Thm.AccentFg).Background(s.Thm.Accent).Bold(true)
		}
		if s.Row == row && i == cursor {
			style = style.BorderForeground(s.Thm.Accent)
		}
		chips = append(chips, style.Render(label))
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (s *FilterScreen) renderCounter(row FilterRow, label string, counter filter.Counter, value, width int) string {
	button := func(glyph string, enabled bool) string {
		style := lipgloss.NewStyle().Foreground(s.Thm.TextFg).Bold(true)
		if !enabled {
			style = lipgloss.NewStyle().Foreground(s.Thm.Disabled)
		}
		return style.Render("(" + glyph + ")")
	}

	valueStyle := lipgloss.NewStyle().Foreground(s.Thm.TextFg).Width(4).Align(lipgloss.Center)
	if s.Row == row {
		valueStyle = valueStyle.Foreground(s.Thm.Accent).Bold(true)
	}
	control := button(s.Glyphs.Minus, s.Ctrl.CanDecrement(counter)) +
		valueStyle.Render(fmt.Sprintf("%d", value)) +
		button(s.Glyphs.Plus, s.Ctrl.CanIncrement(counter))

	text := lipgloss.NewStyle().Foreground(s.Thm.MutedFg).Render("  " + label)
	gap := max(1, width-lipgloss.Width(text)-lipgloss.Width(control))
	return text + strings.Repeat(" ", gap) + control
}

func (s *FilterScreen) renderApply(width int) string {
	label := "Show properties"
	if n := s.Ctrl.Criteria().ActiveCount(); n > 0 {
		label = fmt.Sprintf("Show properties (%d)", n)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(s.Thm.AccentFg).
		Background(s.Thm.Accent).
		Bold(true).
		Render(label)
}
