package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewControllerDefaults(t *testing.T) {
	c := NewController()

	assert.Equal(t, DefaultCriteria(), c.Criteria())
	assert.Equal(t, DismissKeep, c.Policy())
	assert.False(t, c.IsOpen())
	assert.True(t, c.Criteria().IsDefault())
}

func TestTogglePriceRange(t *testing.T) {
	c := NewController()

	c.TogglePriceRange(Price50To100)
	assert.Equal(t, Price50To100, c.Criteria().PriceRange)

	c.TogglePriceRange(Price50To100)
	assert.Equal(t, PriceAny, c.Criteria().PriceRange, "toggle twice should clear")

	c.TogglePriceRange(Price0To50)
	c.TogglePriceRange(Price200Plus)
	assert.Equal(t, Price200Plus, c.Criteria().PriceRange, "new value replaces prior one")
}

func TestToggleCategoriesAreIndependent(t *testing.T) {
	c := NewController()

	c.Toggle(CategoryType, string(TypeHouse))
	c.Toggle(CategoryPrice, string(Price100To200))
	c.Toggle(CategoryType, string(TypeHouse))

	assert.Equal(t, TypeAny, c.Criteria().PropertyType)
	assert.Equal(t, Price100To200, c.Criteria().PriceRange)
}

func TestToggleIgnoresUnknownValues(t *testing.T) {
	c := NewController()
	c.TogglePropertyType(TypeLoft)

	c.Toggle(CategoryType, "castle")
	c.Toggle(CategoryPrice, "free")
	c.Toggle(Category("colour"), "red")
	c.TogglePriceRange(PriceAny)

	assert.Equal(t, TypeLoft, c.Criteria().PropertyType)
	assert.Equal(t, PriceAny, c.Criteria().PriceRange)
}

func TestCounterBounds(t *testing.T) {
	tests := []struct {
		name    string
		counter Counter
		start   int
		op      func(*Controller, Counter)
		want    int
	}{
		{name: "guests decrement at floor", counter: CounterGuests, start: 1, op: (*Controller).Decrement, want: 1},
		{name: "guests increment at ceiling", counter: CounterGuests, start: 16, op: (*Controller).Increment, want: 16},
		{name: "guests increment", counter: CounterGuests, start: 4, op: (*Controller).Increment, want: 5},
		{name: "bedrooms decrement at floor", counter: CounterBedrooms, start: 0, op: (*Controller).Decrement, want: 0},
		{name: "bedrooms increment at ceiling", counter: CounterBedrooms, start: 8, op: (*Controller).Increment, want: 8},
		{name: "bedrooms decrement", counter: CounterBedrooms, start: 3, op: (*Controller).Decrement, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := DefaultCriteria()
			if tt.counter == CounterGuests {
				initial.Guests = tt.start
			} else {
				initial.Bedrooms = tt.start
			}
			c := NewController(WithInitial(initial))

			tt.op(c, tt.counter)

			got := c.Criteria().Guests
			if tt.counter == CounterBedrooms {
				got = c.Criteria().Bedrooms
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounterRoundTrip(t *testing.T) {
	for guests := MinGuests; guests <= MaxGuests; guests++ {
		c := NewController(WithInitial(Criteria{Guests: guests}))
		c.Decrement(CounterGuests)
		c.Increment(CounterGuests)
		if guests == MinGuests {
			assert.Equal(t, MinGuests+1, c.Criteria().Guests, "floor is preserved then stepped once")
			continue
		}
		assert.Equal(t, guests, c.Criteria().Guests)
	}

	for bedrooms := MinBedrooms; bedrooms <= MaxBedrooms; bedrooms++ {
		c := NewController(WithInitial(Criteria{Guests: 1, Bedrooms: bedrooms}))
		c.Increment(CounterBedrooms)
		c.Decrement(CounterBedrooms)
		if bedrooms == MaxBedrooms {
			assert.Equal(t, MaxBedrooms-1, c.Criteria().Bedrooms, "ceiling is preserved then stepped once")
			continue
		}
		assert.Equal(t, bedrooms, c.Criteria().Bedrooms)
	}
}

func TestUnknownCounterIsNoop(t *testing.T) {
	c := NewController()
	c.Increment(Counter("pets"))
	c.Decrement(Counter("pets"))

	assert.Equal(t, DefaultCriteria(), c.Criteria())
	assert.False(t, c.CanIncrement(Counter("pets")))
	assert.False(t, c.CanDecrement(Counter("pets")))
}

func TestCanStep(t *testing.T) {
	c := NewController()
	assert.False(t, c.CanDecrement(CounterGuests))
	assert.True(t, c.CanIncrement(CounterGuests))
	assert.False(t, c.CanDecrement(CounterBedrooms))

	c = NewController(WithInitial(Criteria{Guests: MaxGuests, Bedrooms: MaxBedrooms}))
	assert.False(t, c.CanIncrement(CounterGuests))
	assert.False(t, c.CanIncrement(CounterBedrooms))
	assert.True(t, c.CanDecrement(CounterBedrooms))
}

func TestClearAll(t *testing.T) {
	c := NewController(WithInitial(Criteria{
		PriceRange:   Price200Plus,
		PropertyType: TypeStudio,
		Guests:       9,
		Bedrooms:     4,
	}))

	c.ClearAll()

	assert.Equal(t, Criteria{PriceRange: PriceAny, PropertyType: TypeAny, Guests: 1, Bedrooms: 0}, c.Criteria())
}

func TestWithInitialSanitizes(t *testing.T) {
	c := NewController(WithInitial(Criteria{
		PriceRange:   "cheap",
		PropertyType: TypeHouse,
		Guests:       40,
		Bedrooms:     -2,
	}))

	assert.Equal(t, Criteria{PropertyType: TypeHouse, Guests: MaxGuests, Bedrooms: MinBedrooms}, c.Criteria())
}

func TestApplyEmitsSnapshot(t *testing.T) {
	var emitted []Criteria
	c := NewController(WithConsumer(func(cr Criteria) {
		emitted = append(emitted, cr)
	}))

	c.Open()
	c.TogglePropertyType(TypeLoft)
	c.TogglePriceRange(Price100To200)
	c.Increment(CounterGuests)
	c.Increment(CounterGuests)
	got := c.Apply()

	want := Criteria{PriceRange: Price100To200, PropertyType: TypeLoft, Guests: 3, Bedrooms: 0}
	assert.Equal(t, want, got)
	require.Len(t, emitted, 1)
	assert.Equal(t, want, emitted[0])
	assert.False(t, c.IsOpen())

	// The emitted value is a copy; later edits must not leak into it.
	c.Open()
	c.ClearAll()
	assert.Equal(t, want, emitted[0])
}

func TestDismissDoesNotEmit(t *testing.T) {
	called := false
	c := NewController(WithConsumer(func(Criteria) { called = true }))

	c.Open()
	c.TogglePriceRange(Price0To50)
	c.Dismiss()

	assert.False(t, called)
	assert.False(t, c.IsOpen())
}

func TestDismissPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy DismissPolicy
		want   Criteria
	}{
		{
			name:   "keep preserves edits",
			policy: DismissKeep,
			want:   Criteria{PriceRange: Price50To100, PropertyType: TypeHouse, Guests: 2, Bedrooms: 1},
		},
		{
			name:   "discard restores the selection from open",
			policy: DismissDiscard,
			want:   Criteria{PropertyType: TypeHouse, Guests: 1, Bedrooms: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(WithDismissPolicy(tt.policy))

			c.Open()
			c.TogglePropertyType(TypeHouse)
			c.Apply()

			c.Open()
			c.TogglePriceRange(Price50To100)
			c.Increment(CounterGuests)
			c.Increment(CounterBedrooms)
			c.Dismiss()

			assert.Equal(t, tt.want, c.Criteria())

			c.Open()
			assert.Equal(t, tt.want, c.Criteria(), "reopening shows the retained selection")
		})
	}
}

func TestWithDismissPolicyIgnoresUnknown(t *testing.T) {
	c := NewController(WithDismissPolicy(DismissPolicy("archive")))
	assert.Equal(t, DismissKeep, c.Policy())
}

func TestParseDismissPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want DismissPolicy
		ok   bool
	}{
		{in: "keep", want: DismissKeep, ok: true},
		{in: " Discard ", want: DismissDiscard, ok: true},
		{in: "", ok: false},
		{in: "reset", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseDismissPolicy(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
