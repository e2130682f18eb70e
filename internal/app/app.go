// Package app implements the lazystay terminal UI.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazystay/internal/app/screen"
	"github.com/chmouel/lazystay/internal/app/state"
	"github.com/chmouel/lazystay/internal/card"
	"github.com/chmouel/lazystay/internal/catalog"
	"github.com/chmouel/lazystay/internal/config"
	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/log"
	"github.com/chmouel/lazystay/internal/models"
	"github.com/chmouel/lazystay/internal/theme"
)

const searchPlaceholder = "Where are you going?"

var (
	cardLog   = log.For("card")
	searchLog = log.For("search")
)

// Model is the Bubble Tea model for the listing browser.
type Model struct {
	config   *config.AppConfig
	theme    *theme.Theme
	glyphs   screen.Glyphs
	keys     keyMap
	listings []models.Listing

	cards   *card.Registry
	strips  map[string]*photoStrip
	filters *filter.Controller
	screens *screen.Manager
	watcher *catalog.Watcher

	view   state.ViewState
	search textinput.Model
	grid   viewport.Model
	help   help.Model

	lastCriteria filter.Criteria
	applied      bool
	onApply      []func(filter.Criteria)
	quitting     bool
}

// Option configures a Model.
type Option func(*Model)

// WithCriteriaConsumer registers fn to receive every applied selection.
func WithCriteriaConsumer(fn func(filter.Criteria)) Option {
	return func(m *Model) {
		if fn != nil {
			m.onApply = append(m.onApply, fn)
		}
	}
}

// NewModel builds the UI for listings. A nil cfg uses the defaults.
func NewModel(cfg *config.AppConfig, listings []models.Listing, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	thm := theme.GetTheme(cfg.Theme)

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 80
	ti.Prompt = ""
	ti.Blur()

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(thm.Accent).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(thm.MutedFg)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(thm.BorderDim)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator

	m := &Model{
		config:       cfg,
		theme:        thm,
		glyphs:       screen.GlyphsFor(cfg.ShowIcons),
		keys:         defaultKeyMap(),
		cards:        card.NewRegistry(),
		strips:       make(map[string]*photoStrip),
		screens:      screen.NewManager(),
		search:       ti,
		grid:         viewport.New(0, 0),
		help:         h,
		lastCriteria: filter.DefaultCriteria(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.filters = filter.NewController(
		filter.WithDismissPolicy(cfg.DismissPolicy),
		filter.WithConsumer(m.recordCriteria),
	)
	m.setListings(listings)
	return m
}

// Init starts the catalog watcher when enabled.
func (m *Model) Init() tea.Cmd {
	return m.startCatalogWatcher()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case criteriaAppliedMsg:
		m.view.StatusLine = "Filters applied: " + msg.criteria.String()
		return m, nil

	case filtersDismissedMsg:
		if msg.policy == filter.DismissDiscard {
			m.view.StatusLine = "Filters discarded"
		} else {
			m.view.StatusLine = "Filters dismissed"
		}
		return m, nil

	case catalogChangedMsg:
		return m, m.handleCatalogChanged()

	case catalogRetryMsg:
		return m, m.maybeReloadCatalog()

	case catalogLoadedMsg:
		if msg.err != nil {
			m.showError(fmt.Sprintf("Catalog reload failed:\n%v", msg.err))
			return m, nil
		}
		m.setListings(msg.listings)
		m.view.StatusLine = fmt.Sprintf("Catalog reloaded: %s", plural(len(msg.listings), "stay"))
		return m, nil

	case errMsg:
		if msg.err != nil {
			m.showError(msg.err.Error())
		}
		return m, nil
	}

	if m.view.Input == state.InputSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// LastCriteria returns the most recently applied selection and whether one
// was applied at all.
func (m *Model) LastCriteria() (filter.Criteria, bool) {
	return m.lastCriteria, m.applied
}

// Listings returns the listings currently shown.
func (m *Model) Listings() []models.Listing {
	return m.listings
}

// SearchText returns the destination typed in the search box.
func (m *Model) SearchText() string {
	return m.search.Value()
}

// Liked reports whether the listing with id is liked.
func (m *Model) Liked(id string) bool {
	st, ok := m.cards.Get(id)
	return ok && st.Like.Liked()
}

// Close releases background resources.
func (m *Model) Close() {
	m.stopCatalogWatcher()
}

func (m *Model) recordCriteria(c filter.Criteria) {
	m.lastCriteria = c
	m.applied = true
	for _, fn := range m.onApply {
		fn(c)
	}
}

func (m *Model) setListings(listings []models.Listing) {
	m.listings = listings
	m.syncCards(listings)
	m.view.Clamp(len(listings))
}

func (m *Model) setWindowSize(width, height int) {
	m.view.WindowWidth = width
	m.view.WindowHeight = height
	m.help.Width = width
	m.applyLayout(m.computeLayout())
	m.screens.Resize(width, height)
}

func (m *Model) selectedListing() (models.Listing, bool) {
	if m.view.Selected < 0 || m.view.Selected >= len(m.listings) {
		return models.Listing{}, false
	}
	return m.listings[m.view.Selected], true
}

func (m *Model) showError(message string) {
	m.screens.Push(screen.NewErrorScreen(message, m.theme))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
