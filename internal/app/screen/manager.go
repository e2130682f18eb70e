package screen

import tea "github.com/charmbracelet/bubbletea"

// Manager keeps the open overlays as a stack. The last element is the one
// receiving keys and drawn on top.
type Manager struct {
	stack []Screen
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Push opens s on top of the current overlay. A nil screen is ignored.
func (m *Manager) Push(s Screen) {
	if s != nil {
		m.stack = append(m.stack, s)
	}
}

// Pop closes the top overlay and returns it, or nil when none is open.
func (m *Manager) Pop() Screen {
	n := len(m.stack)
	if n == 0 {
		return nil
	}
	top := m.stack[n-1]
	m.stack[n-1] = nil
	m.stack = m.stack[:n-1]
	return top
}

// Current returns the top overlay, or nil.
func (m *Manager) Current() Screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// IsActive reports whether any overlay is open.
func (m *Manager) IsActive() bool {
	return len(m.stack) > 0
}

// Type returns the kind of the top overlay, TypeNone when none is open.
func (m *Manager) Type() Type {
	if s := m.Current(); s != nil {
		return s.Type()
	}
	return TypeNone
}

// Update hands msg to the top overlay, closing it when it returns nil.
func (m *Manager) Update(msg tea.KeyMsg) tea.Cmd {
	top := m.Current()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	if next == nil {
		m.Pop()
	} else {
		m.stack[len(m.stack)-1] = next
	}
	return cmd
}

// Resize forwards the terminal size to every open overlay that tracks it.
func (m *Manager) Resize(width, height int) {
	for _, s := range m.stack {
		if r, ok := s.(Resizer); ok {
			r.SetSize(width, height)
		}
	}
}
