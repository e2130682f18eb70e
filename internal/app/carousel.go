package app

import (
	"math"

	"github.com/chmouel/lazystay/internal/card"
	"github.com/chmouel/lazystay/internal/models"
)

// photoStrip is the horizontal scroll surface of one card. It owns the offset
// and reports every change to the card's tracker.
type photoStrip struct {
	offset  float64
	tracker *card.Tracker
}

// maxOffset is the furthest the strip can scroll, one item short of the end.
func maxOffset(imageCount int, itemWidth float64) float64 {
	if imageCount <= 1 || itemWidth <= 0 {
		return 0
	}
	return float64(imageCount-1) * itemWidth
}

// scrollTo clamps offset to the strip and feeds the result to the tracker.
func (p *photoStrip) scrollTo(offset, itemWidth float64) int {
	if math.IsNaN(offset) {
		offset = p.offset
	}
	p.offset = math.Max(0, math.Min(offset, maxOffset(p.tracker.ImageCount(), itemWidth)))
	return p.tracker.OnOffsetSample(p.offset, itemWidth)
}

// page snaps to the neighbouring image in direction dir (+1 or -1).
func (p *photoStrip) page(dir int, itemWidth float64) int {
	if itemWidth <= 0 {
		return p.scrollTo(p.offset, itemWidth)
	}
	target := math.Round(p.offset/itemWidth) + float64(dir)
	return p.scrollTo(target*itemWidth, itemWidth)
}

// drag moves the strip by delta without snapping.
func (p *photoStrip) drag(delta, itemWidth float64) int {
	return p.scrollTo(p.offset+delta, itemWidth)
}

// syncCards mounts per-card state for listings and drops strips whose card
// was unmounted or remounted.
func (m *Model) syncCards(listings []models.Listing) {
	mounted, unmounted := m.cards.Sync(listings)
	for id, strip := range m.strips {
		st, ok := m.cards.Get(id)
		if !ok || st.Carousel != strip.tracker {
			delete(m.strips, id)
		}
	}
	cardLog.Debugf("sync mounted=%d unmounted=%d", mounted, unmounted)
}

// strip returns the scroll surface for a listing, creating it on first use.
func (m *Model) strip(id string) *photoStrip {
	if p, ok := m.strips[id]; ok {
		return p
	}
	st, ok := m.cards.Get(id)
	if !ok {
		return nil
	}
	p := &photoStrip{tracker: st.Carousel}
	m.strips[id] = p
	return p
}

// imageIndex returns the visible image of a listing, or false when the card
// has no images.
func (m *Model) imageIndex(id string) (int, bool) {
	st, ok := m.cards.Get(id)
	if !ok {
		return 0, false
	}
	return st.Carousel.Current()
}
