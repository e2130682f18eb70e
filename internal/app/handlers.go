package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazystay/internal/app/screen"
	"github.com/chmouel/lazystay/internal/app/state"
	"github.com/chmouel/lazystay/internal/catalog"
	"github.com/chmouel/lazystay/internal/filter"
)

const wheelLines = 3

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screens.IsActive() {
		return m, m.screens.Update(msg)
	}
	if m.view.Input == state.InputSearch {
		return m.handleSearchKey(msg)
	}

	layout := m.computeLayout()
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.stopCatalogWatcher()
		return m, tea.Quit

	case key.Matches(msg, keys.Down):
		m.moveSelection(layout.columns, layout)
	case key.Matches(msg, keys.Up):
		m.moveSelection(-layout.columns, layout)
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Next):
		m.moveSelection(1, layout)
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Prev):
		m.moveSelection(-1, layout)
	case key.Matches(msg, keys.First):
		m.moveSelection(-len(m.listings), layout)
	case key.Matches(msg, keys.Last):
		m.moveSelection(len(m.listings), layout)
	case key.Matches(msg, keys.HalfDown):
		m.grid.HalfPageDown()
	case key.Matches(msg, keys.HalfUp):
		m.grid.HalfPageUp()

	case key.Matches(msg, keys.PhotoNext):
		m.pagePhoto(m.view.Selected, 1)
	case key.Matches(msg, keys.PhotoPrev):
		m.pagePhoto(m.view.Selected, -1)
	case key.Matches(msg, keys.DragRight):
		m.dragPhoto(m.view.Selected, m.config.DragStep)
	case key.Matches(msg, keys.DragLeft):
		m.dragPhoto(m.view.Selected, -m.config.DragStep)

	case key.Matches(msg, keys.Like):
		m.toggleLike(m.view.Selected)
	case key.Matches(msg, keys.Details):
		m.showDetails()
	case key.Matches(msg, keys.Filters):
		m.openFilters()
	case key.Matches(msg, keys.Help):
		m.screens.Push(screen.NewHelpScreen(m.keys.helpSections(), m.view.WindowWidth, m.view.WindowHeight, m.theme))
	case key.Matches(msg, keys.Search):
		m.view.Input = state.InputSearch
		m.view.StatusLine = ""
		return m, tea.Batch(m.search.Focus(), textinput.Blink)
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.view.Input = state.InputGrid
		m.search.Blur()
		if q := strings.TrimSpace(m.search.Value()); q != "" {
			searchLog.Infof("destination %q", q)
		}
		return m, nil
	case "ctrl+c":
		m.quitting = true
		m.stopCatalogWatcher()
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screens.IsActive() || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	layout := m.computeLayout()
	target, onCard := m.cardAt(layout, msg.X, msg.Y)
	if !onCard {
		target = m.view.Selected
	}

	switch {
	case msg.Button == tea.MouseButtonWheelRight,
		msg.Shift && msg.Button == tea.MouseButtonWheelDown:
		m.dragPhoto(target, m.config.DragStep)
	case msg.Button == tea.MouseButtonWheelLeft,
		msg.Shift && msg.Button == tea.MouseButtonWheelUp:
		m.dragPhoto(target, -m.config.DragStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.grid.ScrollDown(wheelLines)
	case msg.Button == tea.MouseButtonWheelUp:
		m.grid.ScrollUp(wheelLines)
	case msg.Button == tea.MouseButtonLeft && onCard:
		m.view.Selected = target
	}
	return m, nil
}

func (m *Model) moveSelection(delta int, layout layoutDims) {
	if len(m.listings) == 0 {
		return
	}
	m.view.Selected += delta
	m.view.Clamp(len(m.listings))
	m.refreshGrid(layout)
}

func (m *Model) pagePhoto(idx, dir int) {
	if p := m.stripAt(idx); p != nil {
		p.page(dir, m.config.ItemWidth)
	}
}

func (m *Model) dragPhoto(idx int, delta float64) {
	if p := m.stripAt(idx); p != nil {
		p.drag(delta, m.config.ItemWidth)
	}
}

func (m *Model) stripAt(idx int) *photoStrip {
	if idx < 0 || idx >= len(m.listings) {
		return nil
	}
	return m.strip(m.listings[idx].ID)
}

func (m *Model) toggleLike(idx int) {
	if idx < 0 || idx >= len(m.listings) {
		return
	}
	l := m.listings[idx]
	st, ok := m.cards.Get(l.ID)
	if !ok {
		return
	}
	liked := st.Like.Toggle()
	cardLog.Debugf("liked %s %v", l.Title, liked)
}

func (m *Model) openFilters() {
	fs := screen.NewFilterScreen(m.filters, m.theme, m.config.ShowIcons)
	fs.OnApply = func(c filter.Criteria) tea.Cmd {
		return func() tea.Msg { return criteriaAppliedMsg{criteria: c} }
	}
	policy := m.filters.Policy()
	fs.OnDismiss = func() tea.Cmd {
		return func() tea.Msg { return filtersDismissedMsg{policy: policy} }
	}
	m.screens.Push(fs)
}

func (m *Model) showDetails() {
	l, ok := m.selectedListing()
	if !ok {
		return
	}

	kind := l.Type
	if l.Kind.Valid() {
		kind = fmt.Sprintf("%s (%s)", l.Type, l.Kind.Label())
	}
	photo := "none"
	if idx, ok := m.imageIndex(l.ID); ok {
		photo = fmt.Sprintf("%d of %d: %s", idx+1, len(l.Images), l.ImageLabel(idx))
	}
	liked := m.Liked(l.ID)
	likeState := "not liked"
	if liked {
		likeState = "liked"
	}

	m.screens.Push(screen.NewInfoScreen(l.Title, "", m.theme,
		screen.Field{Label: "Location", Value: l.Location},
		screen.Field{Label: "Type", Value: kind},
		screen.Field{Label: "Rating", Value: fmt.Sprintf("%s %.1f · %s", m.glyphs.Star, l.Rating, plural(l.ReviewCount, "review"))},
		screen.Field{Label: "Price", Value: catalog.FormatPrice(l.Price) + " night"},
		screen.Field{Label: "Photo", Value: photo},
		screen.Field{Label: "Saved", Value: m.glyphs.Heart(liked) + " " + likeState},
	))
}
