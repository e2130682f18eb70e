// Package theme provides the colour palettes used by the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colours used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground for text on Accent
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Liked      lipgloss.Color // Filled heart
	Star       lipgloss.Color // Rating star
	Price      lipgloss.Color
	Disabled   lipgloss.Color // Counter buttons at their bound
}

// Theme names.
const (
	DraculaName         = "dracula"
	NarnaName           = "narna"
	NordName            = "nord"
	CleanLightName      = "clean-light"
	CatppuccinLatteName = "catppuccin-latte"
)

// Dracula returns the Dracula theme (dark background, vibrant colours).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Accent:     lipgloss.Color("#BD93F9"), // Purple
		AccentFg:   lipgloss.Color("#282A36"),
		AccentDim:  lipgloss.Color("#44475A"), // Current line
		Border:     lipgloss.Color("#6272A4"), // Comment
		BorderDim:  lipgloss.Color("#44475A"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		ErrorFg:    lipgloss.Color("#FF5555"),
		Liked:      lipgloss.Color("#FF79C6"), // Pink
		Star:       lipgloss.Color("#F1FA8C"), // Yellow
		Price:      lipgloss.Color("#50FA7B"), // Green
		Disabled:   lipgloss.Color("#44475A"),
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Background: lipgloss.Color("#0D1117"),
		Accent:     lipgloss.Color("#41ADFF"),
		AccentFg:   lipgloss.Color("#0D1117"),
		AccentDim:  lipgloss.Color("#1A2230"),
		Border:     lipgloss.Color("#30363D"),
		BorderDim:  lipgloss.Color("#20252D"),
		MutedFg:    lipgloss.Color("#8B949E"),
		TextFg:     lipgloss.Color("#E6EDF3"),
		ErrorFg:    lipgloss.Color("#F47067"),
		Liked:      lipgloss.Color("#F47067"),
		Star:       lipgloss.Color("#F2CC60"),
		Price:      lipgloss.Color("#3FB950"),
		Disabled:   lipgloss.Color("#30363D"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
		AccentDim:  lipgloss.Color("#3B4252"),
		Border:     lipgloss.Color("#4C566A"),
		BorderDim:  lipgloss.Color("#434C5E"),
		MutedFg:    lipgloss.Color("#81A1C1"),
		TextFg:     lipgloss.Color("#E5E9F0"),
		ErrorFg:    lipgloss.Color("#BF616A"),
		Liked:      lipgloss.Color("#BF616A"),
		Star:       lipgloss.Color("#EBCB8B"),
		Price:      lipgloss.Color("#A3BE8C"),
		Disabled:   lipgloss.Color("#434C5E"),
	}
}

// CleanLight returns a theme for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#FF385C"), // Coral
		AccentFg:   lipgloss.Color("#FFFFFF"),
		AccentDim:  lipgloss.Color("#FFE4E9"),
		Border:     lipgloss.Color("#D0D7DE"),
		BorderDim:  lipgloss.Color("#E1E4E8"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		ErrorFg:    lipgloss.Color("#CF222E"),
		Liked:      lipgloss.Color("#FF385C"),
		Star:       lipgloss.Color("#D4A72C"),
		Price:      lipgloss.Color("#1A7F37"),
		Disabled:   lipgloss.Color("#D0D7DE"),
	}
}

// CatppuccinLatte returns the Catppuccin Latte theme (light).
func CatppuccinLatte() *Theme {
	return &Theme{
		Background: lipgloss.Color("#EFF1F5"),
		Accent:     lipgloss.Color("#1E66F5"), // Blue
		AccentFg:   lipgloss.Color("#FFFFFF"),
		AccentDim:  lipgloss.Color("#CCD0DA"), // Surface0
		Border:     lipgloss.Color("#9CA0B0"), // Overlay0
		BorderDim:  lipgloss.Color("#BCC0CC"), // Surface1
		MutedFg:    lipgloss.Color("#6C6F85"), // Subtext0
		TextFg:     lipgloss.Color("#4C4F69"),
		ErrorFg:    lipgloss.Color("#D20F39"),
		Liked:      lipgloss.Color("#EA76CB"), // Pink
		Star:       lipgloss.Color("#DF8E1D"),
		Price:      lipgloss.Color("#40A02B"),
		Disabled:   lipgloss.Color("#BCC0CC"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case NarnaName:
		return Narna()
	case NordName:
		return Nord()
	case CleanLightName:
		return CleanLight()
	case CatppuccinLatteName:
		return CatppuccinLatte()
	default:
		return Dracula()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	return name == CleanLightName || name == CatppuccinLatteName
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		NarnaName,
		NordName,
		CleanLightName,
		CatppuccinLatteName,
	}
}
