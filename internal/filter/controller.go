package filter

import (
	"strings"

	"github.com/chmouel/lazystay/internal/log"
)

var logger = log.For("filter")

// Category names a single-select criteria field.
type Category string

// Single-select categories.
const (
	CategoryPrice Category = "price"
	CategoryType  Category = "type"
)

// Counter names a bounded numeric criteria field.
type Counter string

// Counters.
const (
	CounterGuests   Counter = "guests"
	CounterBedrooms Counter = "bedrooms"
)

// Bounds returns the inclusive domain of the counter.
func (c Counter) Bounds() (lo, hi int, ok bool) {
	switch c {
	case CounterGuests:
		return MinGuests, MaxGuests, true
	case CounterBedrooms:
		return MinBedrooms, MaxBedrooms, true
	default:
		return 0, 0, false
	}
}

// DismissPolicy decides what happens to in-progress edits when the panel is
// closed without applying.
type DismissPolicy string

// Dismiss policies.
const (
	// DismissKeep leaves the edits in place for the next open.
	DismissKeep DismissPolicy = "keep"
	// DismissDiscard restores the selection recorded by Open.
	DismissDiscard DismissPolicy = "discard"
)

// ParseDismissPolicy normalises a policy name.
func ParseDismissPolicy(name string) (DismissPolicy, bool) {
	switch DismissPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case DismissKeep:
		return DismissKeep, true
	case DismissDiscard:
		return DismissDiscard, true
	default:
		return "", false
	}
}

// Consumer receives the snapshot emitted by Apply.
type Consumer func(Criteria)

// Controller owns the filter panel's working selection. It is not safe for
// concurrent use; every call is expected to come from the UI update loop.
type Controller struct {
	current  Criteria
	baseline Criteria
	open     bool
	policy   DismissPolicy
	consumer Consumer
}

// Option configures a Controller.
type Option func(*Controller)

// WithDismissPolicy sets the dismiss policy. Unknown policies are ignored.
func WithDismissPolicy(p DismissPolicy) Option {
	return func(c *Controller) {
		if p == DismissKeep || p == DismissDiscard {
			c.policy = p
		}
	}
}

// WithConsumer sets the function that receives applied snapshots.
func WithConsumer(fn Consumer) Option {
	return func(c *Controller) {
		c.consumer = fn
	}
}

// WithInitial seeds the selection. Out-of-domain values are clamped and
// unknown enum values are dropped.
func WithInitial(initial Criteria) Option {
	return func(c *Controller) {
		c.current = sanitize(initial)
	}
}

// NewController returns a closed controller holding the default selection.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		current: DefaultCriteria(),
		policy:  DismissKeep,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseline = c.current
	return c
}

// Criteria returns a snapshot of the working selection.
func (c *Controller) Criteria() Criteria {
	return c.current
}

// Policy returns the configured dismiss policy.
func (c *Controller) Policy() DismissPolicy {
	return c.policy
}

// IsOpen reports whether the panel is currently shown.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Open marks the panel as shown and records the baseline Dismiss may restore.
func (c *Controller) Open() {
	c.open = true
	c.baseline = c.current
}

// TogglePriceRange selects p, or clears the price range if p is already selected.
func (c *Controller) TogglePriceRange(p PriceRange) {
	if !p.Valid() {
		return
	}
	if c.current.PriceRange == p {
		c.current.PriceRange = PriceAny
		return
	}
	c.current.PriceRange = p
}

// TogglePropertyType selects t, or clears the property type if t is already selected.
func (c *Controller) TogglePropertyType(t PropertyType) {
	if !t.Valid() {
		return
	}
	if c.current.PropertyType == t {
		c.current.PropertyType = TypeAny
		return
	}
	c.current.PropertyType = t
}

// Toggle dispatches a toggle request by category name.
func (c *Controller) Toggle(category Category, value string) {
	switch category {
	case CategoryPrice:
		c.TogglePriceRange(PriceRange(value))
	case CategoryType:
		c.TogglePropertyType(PropertyType(value))
	}
}

// Increment raises the counter by one, saturating at its ceiling.
func (c *Controller) Increment(counter Counter) {
	c.step(counter, 1)
}

// Decrement lowers the counter by one, saturating at its floor.
func (c *Controller) Decrement(counter Counter) {
	c.step(counter, -1)
}

func (c *Controller) step(counter Counter, delta int) {
	lo, hi, ok := counter.Bounds()
	if !ok {
		return
	}
	field := c.counterField(counter)
	*field = clamp(*field+delta, lo, hi)
}

func (c *Controller) counterField(counter Counter) *int {
	if counter == CounterBedrooms {
		return &c.current.Bedrooms
	}
	return &c.current.Guests
}

// CanDecrement reports whether Decrement would change the counter.
func (c *Controller) CanDecrement(counter Counter) bool {
	lo, _, ok := counter.Bounds()
	return ok && *c.counterField(counter) > lo
}

// CanIncrement reports whether Increment would change the counter.
func (c *Controller) CanIncrement(counter Counter) bool {
	_, hi, ok := counter.Bounds()
	return ok && *c.counterField(counter) < hi
}

// ClearAll resets every field to its default.
func (c *Controller) ClearAll() {
	c.current = DefaultCriteria()
	logger.Debugf("cleared")
}

// Apply closes the panel and hands the snapshot to the consumer.
func (c *Controller) Apply() Criteria {
	snapshot := c.current
	c.open = false
	c.baseline = snapshot
	logger.Infof("applied %s", snapshot)
	if c.consumer != nil {
		c.consumer(snapshot)
	}
	return snapshot
}

// Dismiss closes the panel without emitting.
func (c *Controller) Dismiss() {
	c.open = false
	if c.policy == DismissDiscard {
		c.current = c.baseline
	}
	logger.Debugf("dismissed (policy %s)", c.policy)
}

func sanitize(in Criteria) Criteria {
	out := DefaultCriteria()
	if in.PriceRange.Valid() {
		out.PriceRange = in.PriceRange
	}
	if in.PropertyType.Valid() {
		out.PropertyType = in.PropertyType
	}
	out.Guests = clamp(in.Guests, MinGuests, MaxGuests)
	out.Bedrooms = clamp(in.Bedrooms, MinBedrooms, MaxBedrooms)
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
