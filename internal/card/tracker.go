// Package card holds the per-listing interactive state: the carousel position
// and the liked flag.
package card

import "math"

// Tracker derives the displayed image index of a carousel from horizontal
// scroll offsets.
type Tracker struct {
	imageCount int
	current    int
}

// NewTracker returns a tracker for a carousel of imageCount images, starting
// on the first one. Negative counts are treated as empty.
func NewTracker(imageCount int) *Tracker {
	return &Tracker{imageCount: max(imageCount, 0)}
}

// ImageCount returns the number of images in the carousel.
func (t *Tracker) ImageCount() int {
	return t.imageCount
}

// Current returns the displayed index. ok is false for an empty carousel.
func (t *Tracker) Current() (index int, ok bool) {
	if t.imageCount == 0 {
		return 0, false
	}
	return t.current, true
}

// OnOffsetSample snaps the index to the image nearest to offset and returns
// it. The index is recomputed from the absolute offset on every call.
// Degenerate samples leave the index untouched.
func (t *Tracker) OnOffsetSample(offset, itemWidth float64) int {
	if t.imageCount == 0 || !(itemWidth > 0) {
		return t.current
	}
	ratio := offset / itemWidth
	last := t.imageCount - 1
	switch {
	case math.IsNaN(ratio):
		return t.current
	case ratio <= 0:
		t.current = 0
	case ratio >= float64(last):
		t.current = last
	default:
		t.current = min(int(math.Round(ratio)), last)
	}
	return t.current
}
