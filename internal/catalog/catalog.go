// Package catalog loads the listings shown in the grid.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/log"
	"github.com/chmouel/lazystay/internal/models"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	// ErrDuplicateID is returned when two listings share an ID.
	ErrDuplicateID = errors.New("duplicate listing id")
	// ErrInvalidCatalog is returned when a catalog cannot be decoded or a
	// listing carries impossible values.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// idSpace namespaces the name-based IDs given to listings without one.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("lazystay/listing"))

var (
	printer = message.NewPrinter(language.English)
	logger  = log.For("catalog")
)

// Default returns the embedded catalog.
func Default() []models.Listing {
	listings, err := Parse(defaultCatalog)
	if err != nil {
		// The embedded file is covered by tests.
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return listings
}

// Load reads a YAML catalog from path.
func Load(path string) ([]models.Listing, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	listings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Infof("loaded %d listings from %s", len(listings), path)
	return listings, nil
}

// Parse decodes a YAML list of listings. Missing IDs are derived from the
// title and location so they survive a reload, and a missing kind is
// inferred from the type text, then the title.
func Parse(data []byte) ([]models.Listing, error) {
	var listings []models.Listing
	if err := yaml.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	seen := make(map[string]struct{}, len(listings))
	derived := make(map[string]int)
	for i := range listings {
		l := &listings[i]
		l.ID = strings.TrimSpace(l.ID)
		if l.ID == "" {
			l.ID = derivedID(*l, derived)
		}
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, l.ID)
		}
		seen[l.ID] = struct{}{}

		if err := validate(*l); err != nil {
			return nil, err
		}
		if l.Kind == filter.TypeAny {
			l.Kind = InferKind(l.Type, l.Title)
		}
	}
	return listings, nil
}

// derivedID names a listing by its title and location. Repeats of the same
// pair get their occurrence number mixed in.
func derivedID(l models.Listing, counts map[string]int) string {
	name := strings.ToLower(strings.TrimSpace(l.Title)) + "\x00" + strings.ToLower(strings.TrimSpace(l.Location))
	n := counts[name]
	counts[name] = n + 1
	if n > 0 {
		name = fmt.Sprintf("%s\x00%d", name, n)
	}
	return uuid.NewSHA1(idSpace, []byte(name)).String()
}

func validate(l models.Listing) error {
	switch {
	case strings.TrimSpace(l.Title) == "":
		return fmt.Errorf("%w: listing %q has no title", ErrInvalidCatalog, l.ID)
	case l.Price < 0:
		return fmt.Errorf("%w: listing %q has a negative price", ErrInvalidCatalog, l.ID)
	case math.IsNaN(l.Rating) || l.Rating < 0 || l.Rating > 5:
		return fmt.Errorf("%w: listing %q rating %.1f is outside 0-5", ErrInvalidCatalog, l.ID, l.Rating)
	case l.ReviewCount < 0:
		return fmt.Errorf("%w: listing %q has a negative review count", ErrInvalidCatalog, l.ID)
	case l.Kind != filter.TypeAny && !l.Kind.Valid():
		return fmt.Errorf("%w: listing %q has unknown kind %q", ErrInvalidCatalog, l.ID, l.Kind)
	}
	return nil
}

// InferKind returns the first property type named in texts, or TypeAny.
func InferKind(texts ...string) filter.PropertyType {
	for _, text := range texts {
		words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return (r < 'a' || r > 'z') && r != '-'
		})
		for _, w := range words {
			switch w {
			case "apartment", "flat", "condo":
				return filter.TypeApartment
			case "house", "home", "brownstone", "cottage", "villa":
				return filter.TypeHouse
			case "loft":
				return filter.TypeLoft
			case "studio":
				return filter.TypeStudio
			}
		}
	}
	return filter.TypeAny
}

// FormatPrice renders a whole-dollar price, e.g. "$1,200".
func FormatPrice(price int) string {
	if price < 0 {
		return "-" + printer.Sprintf("$%d", -price)
	}
	return printer.Sprintf("$%d", price)
}
