package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, s Screen, keys ...tea.KeyMsg) Screen {
	t.Helper()
	for _, k := range keys {
		require.NotNil(t, s, "screen closed before %q", k.String())
		s, _ = s.Update(k)
	}
	return s
}

func TestFilterScreenOpensController(t *testing.T) {
	ctrl := filter.NewController()
	require.False(t, ctrl.IsOpen())

	s := NewFilterScreen(ctrl, theme.Dracula(), true)
	assert.True(t, ctrl.IsOpen())
	assert.Equal(t, TypeFilter, s.Type())
	assert.Equal(t, RowPrice, s.Row)
}

func TestFilterScreenCursorStartsOnSelection(t *testing.T) {
	ctrl := filter.NewController(filter.WithInitial(filter.Criteria{
		PriceRange:   filter.Price100To200,
		PropertyType: filter.TypeStudio,
		Guests:       2,
	}))

	s := NewFilterScreen(ctrl, theme.Dracula(), true)
	assert.Equal(t, 2, s.PriceIdx)
	assert.Equal(t, 3, s.TypeIdx)
}

func TestFilterScreenRowNavigation(t *testing.T) {
	s := NewFilterScreen(filter.NewController(), theme.Dracula(), true)

	press(t, s, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, RowType, s.Row)
	press(t, s, runeKey("j"), runeKey("j"))
	assert.Equal(t, RowBedrooms, s.Row)
	press(t, s, runeKey("j"))
	assert.Equal(t, RowPrice, s.Row, "wraps to the top")
	press(t, s, runeKey("k"))
	assert.Equal(t, RowBedrooms, s.Row, "wraps to the bottom")
	press(t, s, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, RowGuests, s.Row)
}

func TestFilterScreenOptionCursorClamps(t *testing.T) {
	s := NewFilterScreen(filter.NewController(), theme.Dracula(), true)

	press(t, s, runeKey("h"))
	assert.Equal(t, 0, s.PriceIdx)
	press(t, s, runeKey("l"), runeKey("l"), runeKey("l"), runeKey("l"), runeKey("l"))
	assert.Equal(t, len(filter.PriceRanges())-1, s.PriceIdx)
}

func TestFilterScreenToggle(t *testing.T) {
	ctrl := filter.NewController()
	s := NewFilterScreen(ctrl, theme.Dracula(), true)

	press(t, s, runeKey("l"), runeKey(" "))
	assert.Equal(t, filter.Price50To100, ctrl.Criteria().PriceRange)

	press(t, s, runeKey(" "))
	assert.Equal(t, filter.PriceAny, ctrl.Criteria().PriceRange, "second press clears")

	press(t, s, tea.KeyMsg{Type: tea.KeyTab}, runeKey("l"), runeKey("l"), runeKey(" "))
	assert.Equal(t, filter.TypeLoft, ctrl.Criteria().PropertyType)
}

func TestFilterScreenCounters(t *testing.T) {
	ctrl := filter.NewController()
	s := NewFilterScreen(ctrl, theme.Dracula(), true)

	press(t, s, runeKey("+"))
	assert.Equal(t, filter.DefaultGuests, ctrl.Criteria().Guests, "+ on an option row is ignored")

	press(t, s, runeKey("j"), runeKey("j"), runeKey("+"), runeKey("+"), runeKey("l"))
	assert.Equal(t, 4, ctrl.Criteria().Guests)

	press(t, s, runeKey("-"), runeKey("h"), runeKey("h"), runeKey("h"), runeKey("-"))
	assert.Equal(t, filter.MinGuests, ctrl.Criteria().Guests, "clamped at the floor")

	press(t, s, runeKey("j"), runeKey("-"))
	assert.Equal(t, filter.MinBedrooms, ctrl.Criteria().Bedrooms)
	press(t, s, runeKey("+"))
	assert.Equal(t, 1, ctrl.Criteria().Bedrooms)
}

func TestFilterScreenClearAll(t *testing.T) {
	ctrl := filter.NewController()
	s := NewFilterScreen(ctrl, theme.Dracula(), true)

	press(t, s, runeKey(" "), runeKey("j"), runeKey("j"), runeKey("+"), runeKey("c"))
	assert.Equal(t, filter.DefaultCriteria(), ctrl.Criteria())
	assert.True(t, ctrl.IsOpen(), "clear keeps the panel open")
}

func TestFilterScreenApply(t *testing.T) {
	ctrl := filter.NewController()
	s := NewFilterScreen(ctrl, theme.Dracula(), true)

	var got filter.Criteria
	applied := 0
	s.OnApply = func(c filter.Criteria) tea.Cmd {
		applied++
		got = c
		return nil
	}

	// Loft, $100 - $200, two more guests.
	next := press(t, s,
		tea.KeyMsg{Type: tea.KeyTab}, runeKey("l"), runeKey("l"), runeKey(" "),
		runeKey("k"), runeKey("l"), runeKey("l"), runeKey(" "),
		runeKey("j"), runeKey("j"), runeKey("+"), runeKey("+"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Nil(t, next)
	assert.Equal(t, 1, applied)
	assert.Equal(t, filter.Criteria{
		PriceRange:   filter.Price100To200,
		PropertyType: filter.TypeLoft,
		Guests:       3,
		Bedrooms:     0,
	}, got)
	assert.False(t, ctrl.IsOpen())
}

func TestFilterScreenDismiss(t *testing.T) {
	tests := []struct {
		name     string
		policy   filter.DismissPolicy
		key      tea.KeyMsg
		expected filter.PriceRange
	}{
		{name: "esc keeps edits", policy: filter.DismissKeep, key: tea.KeyMsg{Type: tea.KeyEsc}, expected: filter.Price0To50},
		{name: "q discards edits", policy: filter.DismissDiscard, key: runeKey("q"), expected: filter.PriceAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := filter.NewController(filter.WithDismissPolicy(tt.policy))
			s := NewFilterScreen(ctrl, theme.Dracula(), true)

			dismissed := false
			s.OnDismiss = func() tea.Cmd {
				dismissed = true
				return nil
			}
			next := press(t, s, runeKey(" "), tt.key)

			assert.Nil(t, next)
			assert.True(t, dismissed)
			assert.False(t, ctrl.IsOpen())
			assert.Equal(t, tt.expected, ctrl.Criteria().PriceRange)
		})
	}
}

func TestFilterScreenView(t *testing.T) {
	ctrl := filter.NewController()
	s := NewFilterScreen(ctrl, theme.Dracula(), false)

	view := s.View()
	for _, want := range []string{
		"Filters", "Clear all", "Price range", "$50 - $100", "Property type",
		"Apartment", "Studio", "Number of guests", "Number of bedrooms", "Show properties",
	} {
		assert.Contains(t, view, want)
	}

	ctrl.TogglePropertyType(filter.TypeHouse)
	assert.Contains(t, s.View(), "Show properties (1)")
	assert.True(t, strings.Contains(s.View(), "(-)"))
}
