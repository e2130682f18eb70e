package app

import "github.com/chmouel/lazystay/internal/config"

const (
	cardHeight   = 10 // Border, photo slot and five detail lines
	rowGap       = 1
	columnGap    = 2
	gridPadLeft  = 1
	headerHeight = 4 // Search box and filter bar
	footerHeight = 2 // Status line and key hints
)

type layoutDims struct {
	width      int
	height     int
	cardWidth  int
	columns    int
	gridHeight int
}

func (m *Model) computeLayout() layoutDims {
	width := max(m.view.WindowWidth, 1)
	height := max(m.view.WindowHeight, 1)

	cardWidth := config.DefaultCardWidth
	if m.config != nil && m.config.CardWidth > 0 {
		cardWidth = m.config.CardWidth
	}
	if avail := width - gridPadLeft*2; cardWidth > avail {
		cardWidth = max(config.MinCardWidth, avail)
	}

	columns := max(1, (width-gridPadLeft*2+columnGap)/(cardWidth+columnGap))

	return layoutDims{
		width:      width,
		height:     height,
		cardWidth:  cardWidth,
		columns:    columns,
		gridHeight: max(1, height-headerHeight-footerHeight),
	}
}

func (m *Model) applyLayout(layout layoutDims) {
	m.grid.Width = layout.width
	m.grid.Height = layout.gridHeight
	m.search.Width = max(10, layout.width-10)
}

// rowSpan is the height of one grid row including the gap below it.
func rowSpan() int {
	return cardHeight + rowGap
}

// ensureSelectedVisible scrolls the grid so the selected card is fully shown.
func (m *Model) ensureSelectedVisible(layout layoutDims) {
	if len(m.listings) == 0 {
		return
	}
	row := m.view.Selected / layout.columns
	top := row * rowSpan()
	bottom := top + cardHeight
	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case bottom > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(bottom - m.grid.Height)
	}
}

// cardAt maps a terminal cell to the index of the card drawn there.
func (m *Model) cardAt(layout layoutDims, x, y int) (int, bool) {
	contentY := y - headerHeight + m.grid.YOffset
	if y < headerHeight || y >= headerHeight+layout.gridHeight || contentY < 0 {
		return 0, false
	}
	if contentY%rowSpan() >= cardHeight {
		return 0, false
	}
	cellX := x - gridPadLeft
	if cellX < 0 || cellX%(layout.cardWidth+columnGap) >= layout.cardWidth {
		return 0, false
	}
	col := cellX / (layout.cardWidth + columnGap)
	if col >= layout.columns {
		return 0, false
	}
	idx := (contentY/rowSpan())*layout.columns + col
	if idx >= len(m.listings) {
		return 0, false
	}
	return idx, true
}
