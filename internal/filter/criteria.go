// Package filter holds the selection state behind the filter panel.
package filter

import (
	"fmt"
	"strings"
)

// PriceRange is a nightly price bucket. The zero value means no constraint.
type PriceRange string

// Price range buckets.
const (
	PriceAny      PriceRange = ""
	Price0To50    PriceRange = "0-50"
	Price50To100  PriceRange = "50-100"
	Price100To200 PriceRange = "100-200"
	Price200Plus  PriceRange = "200+"
)

// PriceRanges lists the selectable buckets in display order.
func PriceRanges() []PriceRange {
	return []PriceRange{Price0To50, Price50To100, Price100To200, Price200Plus}
}

// Valid reports whether p is one of the selectable buckets.
func (p PriceRange) Valid() bool {
	switch p {
	case Price0To50, Price50To100, Price100To200, Price200Plus:
		return true
	default:
		return false
	}
}

// Label returns the display label, e.g. "$50 - $100".
func (p PriceRange) Label() string {
	switch p {
	case Price0To50:
		return "$0 - $50"
	case Price50To100:
		return "$50 - $100"
	case Price100To200:
		return "$100 - $200"
	case Price200Plus:
		return "$200+"
	default:
		return "Any price"
	}
}

// PropertyType is a kind of lodging. The zero value means no constraint.
type PropertyType string

// Property types.
const (
	TypeAny       PropertyType = ""
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeLoft      PropertyType = "loft"
	TypeStudio    PropertyType = "studio"
)

// PropertyTypes lists the selectable types in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{TypeApartment, TypeHouse, TypeLoft, TypeStudio}
}

// Valid reports whether t is one of the selectable types.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeLoft, TypeStudio:
		return true
	default:
		return false
	}
}

// Label returns the capitalised display label.
func (t PropertyType) Label() string {
	switch t {
	case TypeApartment:
		return "Apartment"
	case TypeHouse:
		return "House"
	case TypeLoft:
		return "Loft"
	case TypeStudio:
		return "Studio"
	default:
		return "Any type"
	}
}

// Counter domains.
const (
	MinGuests       = 1
	MaxGuests       = 16
	DefaultGuests   = MinGuests
	MinBedrooms     = 0
	MaxBedrooms     = 8
	DefaultBedrooms = MinBedrooms
)

// Criteria is an immutable snapshot of the filter selection.
type Criteria struct {
	PriceRange   PriceRange   `json:"price_range,omitempty"`
	PropertyType PropertyType `json:"property_type,omitempty"`
	Guests       int          `json:"guests"`
	Bedrooms     int          `json:"bedrooms"`
}

// DefaultCriteria returns the cleared selection.
func DefaultCriteria() Criteria {
	return Criteria{Guests: DefaultGuests, Bedrooms: DefaultBedrooms}
}

// IsDefault reports whether c places no constraint beyond the defaults.
func (c Criteria) IsDefault() bool {
	return c == DefaultCriteria()
}

// ActiveCount returns how many fields differ from their defaults.
func (c Criteria) ActiveCount() int {
	n := 0
	if c.PriceRange != PriceAny {
		n++
	}
	if c.PropertyType != TypeAny {
		n++
	}
	if c.Guests != DefaultGuests {
		n++
	}
	if c.Bedrooms != DefaultBedrooms {
		n++
	}
	return n
}

// String renders a compact one-line summary.
func (c Criteria) String() string {
	parts := make([]string, 0, 4)
	if c.PriceRange != PriceAny {
		parts = append(parts, c.PriceRange.Label())
	}
	if c.PropertyType != TypeAny {
		parts = append(parts, c.PropertyType.Label())
	}
	parts = append(parts, plural(c.Guests, "guest"))
	if c.Bedrooms != DefaultBedrooms {
		parts = append(parts, plural(c.Bedrooms, "bedroom"))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
