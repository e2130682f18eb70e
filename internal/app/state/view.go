// Package state holds plain UI state shared by the app model and its helpers.
package state

// InputTarget describes where key presses are routed.
type InputTarget int

// Input targets.
const (
	InputGrid InputTarget = iota
	InputSearch
)

// ViewState holds UI-related state for the model.
type ViewState struct {
	Input        InputTarget
	Selected     int // Index of the highlighted card
	WindowWidth  int
	WindowHeight int
	StatusLine   string
}

// Clamp keeps Selected inside [0, n).
func (v *ViewState) Clamp(n int) {
	if n <= 0 {
		v.Selected = 0
		return
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
	if v.Selected >= n {
		v.Selected = n - 1
	}
}
