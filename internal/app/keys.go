package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/chmouel/lazystay/internal/app/screen"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Next      key.Binding
	Prev      key.Binding
	First     key.Binding
	Last      key.Binding
	HalfDown  key.Binding
	HalfUp    key.Binding
	PhotoNext key.Binding
	PhotoPrev key.Binding
	DragRight key.Binding
	DragLeft  key.Binding
	Like      key.Binding
	Details   key.Binding
	Filters   key.Binding
	Search    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PhotoNext, k.PhotoPrev, k.Like, k.Filters, k.Search, k.Help, k.Quit}
}

// FullHelp groups every binding by column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Next, k.Prev},
		{k.First, k.Last, k.HalfDown, k.HalfUp},
		{k.PhotoNext, k.PhotoPrev, k.DragRight, k.DragLeft},
		{k.Like, k.Details, k.Filters, k.Search, k.Help, k.Quit},
	}
}

// helpSections lays the bindings out for the help screen.
func (k keyMap) helpSections() []screen.HelpSection {
	photos := screen.BindingSection("Photos", k.PhotoNext, k.PhotoPrev, k.DragRight, k.DragLeft)
	photos.Notes = []string{
		"shift+wheel drags the photos of the card under the mouse",
		"the dots under a photo show which one is visible",
	}
	search := screen.BindingSection("Search & Filters", k.Search, k.Filters)
	search.Notes = []string{"the Filters chip counts the active criteria"}

	return []screen.HelpSection{
		screen.BindingSection("Browsing", k.Up, k.Down, k.Left, k.Right, k.Next, k.Prev,
			k.First, k.Last, k.HalfDown, k.HalfUp, k.Help, k.Quit),
		photos,
		screen.BindingSection("Listing", k.Like, k.Details),
		search,
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "row up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "row down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "card left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "card right")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next card")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous card")),
		First:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Last:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		HalfDown:  key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "half page down")),
		HalfUp:    key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "half page up")),
		PhotoNext: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "next photo")),
		PhotoPrev: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "prev photo")),
		DragRight: key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "drag right")),
		DragLeft:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "drag left")),
		Like:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "like")),
		Details:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "details")),
		Filters:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
