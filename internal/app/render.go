package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/lazystay/internal/app/state"
	"github.com/chmouel/lazystay/internal/catalog"
	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/models"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// View renders the active screen for the Bubble Tea program.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Wait for window size before rendering full UI
	if m.view.WindowWidth == 0 || m.view.WindowHeight == 0 {
		return "Loading..."
	}

	layout := m.computeLayout()
	m.applyLayout(layout)
	m.refreshGrid(layout)

	baseView := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(layout),
		m.renderFilterBar(layout),
		truncateToHeight(m.grid.View(), layout.gridHeight),
		m.renderFooter(layout),
	)

	if m.screens.IsActive() {
		return m.overlayPopup(baseView, m.screens.Current().View(), 1)
	}
	return baseView
}

// refreshGrid re-renders the card grid into the viewport and keeps the
// selection on screen.
func (m *Model) refreshGrid(layout layoutDims) {
	m.grid.SetContent(m.renderGrid(layout))
	m.ensureSelectedVisible(layout)
}

func (m *Model) renderHeader(layout layoutDims) string {
	borderColor := m.theme.BorderDim
	if m.view.Input == state.InputSearch {
		borderColor = m.theme.Accent
	}
	icon := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render(m.glyphs.Search)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(10, layout.width-2)).
		Render(icon + " " + m.search.View())
}

func (m *Model) renderFilterBar(layout layoutDims) string {
	chip := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Padding(0, 1)
	active := chip.
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true)

	applied := m.lastCriteria
	label := m.glyphs.Filters + " Filters"
	filtersChip := chip.Render(label)
	if n := applied.ActiveCount(); n > 0 {
		filtersChip = active.Render(fmt.Sprintf("%s · %d", label, n))
	}

	chips := []string{filtersChip, chip.Render("Dates")}
	if applied.Guests != filter.DefaultGuests {
		chips = append(chips, active.Render(plural(applied.Guests, "guest")))
	} else {
		chips = append(chips, chip.Render("Guests"))
	}
	if applied.PriceRange != filter.PriceAny {
		chips = append(chips, active.Render(applied.PriceRange.Label()))
	} else {
		chips = append(chips, chip.Render("Price"))
	}
	if applied.PropertyType != filter.TypeAny {
		chips = append(chips, active.Render(applied.PropertyType.Label()))
	} else {
		chips = append(chips, chip.Render("Type"))
	}

	bar := " " + strings.Join(chips, " ")
	return ansi.Truncate(bar, layout.width, "…")
}

func (m *Model) renderGrid(layout layoutDims) string {
	if len(m.listings) == 0 {
		return lipgloss.NewStyle().
			Foreground(m.theme.MutedFg).
			Padding(1, 2).
			Render("No stays in this catalog.")
	}

	pad := strings.Repeat(" ", gridPadLeft)
	gap := strings.Repeat(" ", columnGap)
	rows := make([]string, 0, len(m.listings)/layout.columns+1)
	for start := 0; start < len(m.listings); start += layout.columns {
		end := min(start+layout.columns, len(m.listings))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, m.renderCard(m.listings[i], i == m.view.Selected, layout.cardWidth))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		lines := strings.Split(row, "\n")
		for j := range lines {
			lines[j] = pad + lines[j]
		}
		rows = append(rows, strings.Join(lines, "\n"))
	}
	return strings.Join(rows, strings.Repeat("\n", rowGap+1))
}

func (m *Model) renderCard(l models.Listing, selected bool, width int) string {
	inner := width - 4

	borderColor := m.theme.BorderDim
	if selected {
		borderColor = m.theme.Accent
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2)

	muted := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	text := lipgloss.NewStyle().Foreground(m.theme.TextFg)

	rating := lipgloss.NewStyle().Foreground(m.theme.Star).Render(m.glyphs.Star) +
		text.Render(fmt.Sprintf(" %.1f", l.Rating))
	location := muted.Render(clip(l.Location, inner-lipgloss.Width(rating)-1))
	locationRow := spread(location, rating, inner)

	titleStyle := text.Bold(true)
	titleLines := wrapLines(l.Title, inner, 2)

	price := lipgloss.NewStyle().Foreground(m.theme.Price).Bold(true).Render(catalog.FormatPrice(l.Price)) +
		muted.Render(" night")

	lines := []string{
		m.renderPhoto(l, inner),
		locationRow,
		titleStyle.Render(titleLines[0]),
		titleStyle.Render(titleLines[1]),
		muted.Render(clip(l.Type, inner)),
		price,
	}
	return box.Render(strings.Join(lines, "\n"))
}

// renderPhoto draws the photo slot: the heart, the visible image and the
// position dots.
func (m *Model) renderPhoto(l models.Listing, width int) string {
	slot := lipgloss.NewStyle().
		Background(m.theme.AccentDim).
		Foreground(m.theme.TextFg).
		Width(width)

	heartStyle := lipgloss.NewStyle().Background(m.theme.AccentDim).Foreground(m.theme.TextFg)
	if m.Liked(l.ID) {
		heartStyle = heartStyle.Foreground(m.theme.Liked).Bold(true)
	}
	heart := slot.Align(lipgloss.Right).Render(heartStyle.Render(m.glyphs.Heart(m.Liked(l.ID))))

	label := "no photos"
	dots := ""
	if idx, ok := m.imageIndex(l.ID); ok {
		label = fmt.Sprintf("%d/%d %s", idx+1, len(l.Images), l.ImageLabel(idx))
		if len(l.Images) > 1 {
			dots = m.renderDots(idx, len(l.Images))
		}
	}
	image := slot.Align(lipgloss.Center).Render(clip(label, width))
	indicators := slot.Align(lipgloss.Center).Render(dots)

	return lipgloss.JoinVertical(lipgloss.Left, heart, image, indicators)
}

func (m *Model) renderDots(current, count int) string {
	dots := make([]string, count)
	for i := range dots {
		if i == current {
			dots[i] = m.glyphs.DotActive
		} else {
			dots[i] = m.glyphs.DotIdle
		}
	}
	return strings.Join(dots, " ")
}

func (m *Model) renderFooter(layout layoutDims) string {
	status := m.view.StatusLine
	if status == "" {
		status = plural(len(m.listings), "stay")
		if q := strings.TrimSpace(m.search.Value()); q != "" {
			status += fmt.Sprintf(" · destination %q", q)
		}
	}
	statusLine := lipgloss.NewStyle().
		Foreground(m.theme.MutedFg).
		Padding(0, 1).
		Render(ansi.Truncate(status, max(1, layout.width-2), "…"))

	if m.view.Input == state.InputSearch {
		hint := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Padding(0, 1).
			Render("enter/esc: done")
		return lipgloss.JoinVertical(lipgloss.Left, statusLine, hint)
	}
	return lipgloss.JoinVertical(lipgloss.Left, statusLine, " "+m.help.View(m.keys))
}

// overlayPopup overlays a popup on top of the base view, preserving
// the portions of the base that fall outside the popup bounds.
func (m *Model) overlayPopup(base, popup string, marginTop int) string {
	if base == "" || popup == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")

	baseWidth := lipgloss.Width(baseLines[0])
	popupWidth := lipgloss.Width(popupLines[0])
	leftPad := max((baseWidth-popupWidth)/2, 0)

	for i, line := range popupLines {
		row := marginTop + i
		if row >= len(baseLines) {
			break
		}

		leftPart := ansi.Truncate(baseLines[row], leftPad, "")
		if w := lipgloss.Width(leftPart); w < leftPad {
			leftPart += strings.Repeat(" ", leftPad-w)
		}
		rightPart := ansi.TruncateLeft(baseLines[row], leftPad+popupWidth, "")

		newLine := leftPart + line + rightPart
		if w := lipgloss.Width(newLine); w < baseWidth {
			newLine += strings.Repeat(" ", baseWidth-w)
		}
		baseLines[row] = newLine
	}

	return strings.Join(baseLines, "\n")
}

// truncateToHeight ensures output doesn't exceed maxLines.
func truncateToHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// wrapLines word-wraps s to width and returns exactly n lines. The last line
// is cut with an ellipsis when the text does not fit.
func wrapLines(s string, width, n int) []string {
	wrapped := strings.Split(wordwrap.String(s, width), "\n")
	out := make([]string, n)
	for i := 0; i < n && i < len(wrapped); i++ {
		out[i] = clip(wrapped[i], width)
	}
	if len(wrapped) > n {
		out[n-1] = clip(strings.Join(wrapped[n-1:], " "), width)
	}
	return out
}

// clip shortens s to width cells with a trailing ellipsis.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…") //nolint:gosec
}

// spread places left and right at opposite ends of a line of width cells.
func spread(left, right string, width int) string {
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}
