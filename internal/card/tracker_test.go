package card

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerStartsAtFirstImage(t *testing.T) {
	tr := NewTracker(3)
	idx, ok := tr.Current()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 3, tr.ImageCount())
}

func TestTrackerEmptyCarouselIsInactive(t *testing.T) {
	for _, n := range []int{0, -4} {
		tr := NewTracker(n)
		_, ok := tr.Current()
		assert.False(t, ok)
		assert.Equal(t, 0, tr.OnOffsetSample(250, 100))
		_, ok = tr.Current()
		assert.False(t, ok)
	}
}

func TestTrackerOnOffsetSample(t *testing.T) {
	tests := []struct {
		name   string
		images int
		offset float64
		width  float64
		want   int
	}{
		{name: "origin", images: 3, offset: 0, width: 100, want: 0},
		{name: "just under half", images: 3, offset: 49, width: 100, want: 0},
		{name: "half rounds up", images: 3, offset: 50, width: 100, want: 1},
		{name: "exact page", images: 3, offset: 200, width: 100, want: 2},
		{name: "past last clamps", images: 3, offset: 260, width: 100, want: 2},
		{name: "negative clamps", images: 3, offset: -180, width: 100, want: 0},
		{name: "single image", images: 1, offset: 90, width: 100, want: 0},
		{name: "fractional width", images: 5, offset: 130.5, width: 43.5, want: 3},
		{name: "positive infinity", images: 4, offset: math.Inf(1), width: 100, want: 3},
		{name: "negative infinity", images: 4, offset: math.Inf(-1), width: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.images)
			got := tr.OnOffsetSample(tt.offset, tt.width)
			assert.Equal(t, tt.want, got)
			idx, _ := tr.Current()
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestTrackerDegenerateSamplesKeepIndex(t *testing.T) {
	tr := NewTracker(3)
	tr.OnOffsetSample(100, 100)

	for _, width := range []float64{0, -100, math.NaN()} {
		assert.Equal(t, 1, tr.OnOffsetSample(200, width))
	}
	assert.Equal(t, 1, tr.OnOffsetSample(math.NaN(), 100))

	idx, _ := tr.Current()
	assert.Equal(t, 1, idx)
}

func TestTrackerIsAbsolute(t *testing.T) {
	tr := NewTracker(6)

	// Skipped and out of order samples land on the true position.
	for _, offset := range []float64{10, 480, 30, 5000, -20, 310} {
		tr.OnOffsetSample(offset, 100)
	}
	idx, _ := tr.Current()
	assert.Equal(t, 3, idx)

	// Many small noisy samples around a page boundary never drift.
	for i := 0; i < 1000; i++ {
		jitter := float64(i%7) - 3
		tr.OnOffsetSample(200+jitter, 100)
	}
	idx, _ = tr.Current()
	assert.Equal(t, 2, idx)
}
