package screen

const (
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyEscRaw   = "\x1b" // Raw escape byte for terminals that send ESC as a rune
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyQ        = "q"
	keyCtrlC    = "ctrl+c"
	keyCtrlD    = "ctrl+d"
	keyCtrlU    = "ctrl+u"
	keyDown     = "down"
	keyUp       = "up"
	keyLeft     = "left"
	keyRight    = "right"
	keySpace    = " "
)
