// Package screen provides the modal overlays drawn on top of the listing grid.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a modal overlay. Update returns nil once the overlay is done.
type Screen interface {
	Update(msg tea.KeyMsg) (Screen, tea.Cmd)
	View() string
	Type() Type
}

// Resizer is implemented by screens whose size follows the terminal.
type Resizer interface {
	SetSize(width, height int)
}

// Type identifies a screen kind.
type Type int

// Screen kinds.
const (
	TypeNone Type = iota
	TypeFilter
	TypeHelp
	TypeInfo
)

var typeNames = map[Type]string{
	TypeNone:   "none",
	TypeFilter: "filter",
	TypeHelp:   "help",
	TypeInfo:   "info",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}
