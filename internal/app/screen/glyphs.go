package screen

// Glyphs is the set of symbols used to draw cards and controls.
type Glyphs struct {
	Liked     string
	Unliked   string
	Star      string
	DotActive string
	DotIdle   string
	Search    string
	Filters   string
	Minus     string
	Plus      string
	Close     string
	Cursor    string
}

var (
	unicodeGlyphs = Glyphs{
		Liked:     "♥",
		Unliked:   "♡",
		Star:      "★",
		DotActive: "●",
		DotIdle:   "○",
		Search:    "⌕",
		Filters:   "☰",
		Minus:     "−",
		Plus:      "+",
		Close:     "✕",
		Cursor:    "▸",
	}
	asciiGlyphs = Glyphs{
		Liked:     "<3",
		Unliked:   "<>",
		Star:      "*",
		DotActive: "o",
		DotIdle:   ".",
		Search:    ">",
		Filters:   "=",
		Minus:     "-",
		Plus:      "+",
		Close:     "x",
		Cursor:    ">",
	}
)

// GlyphsFor returns unicode glyphs when showIcons is set and plain ASCII
// otherwise.
func GlyphsFor(showIcons bool) Glyphs {
	if showIcons {
		return unicodeGlyphs
	}
	return asciiGlyphs
}

// Heart returns the heart glyph for the liked state.
func (g Glyphs) Heart(liked bool) string {
	if liked {
		return g.Liked
	}
	return g.Unliked
}
