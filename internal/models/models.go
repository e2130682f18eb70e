// Package models defines the data objects shared across lazystay packages.
package models

import (
	"net/url"
	"path"
	"strings"

	"github.com/chmouel/lazystay/internal/filter"
)

// Listing is one catalog entry.
type Listing struct {
	ID          string              `yaml:"id" json:"id"`
	Title       string              `yaml:"title" json:"title"`
	Location    string              `yaml:"location" json:"location"`
	Price       int                 `yaml:"price" json:"price"` // Nightly price in whole dollars
	Rating      float64             `yaml:"rating" json:"rating"`
	ReviewCount int                 `yaml:"review_count" json:"review_count"`
	Type        string              `yaml:"type" json:"type"` // Free text, e.g. "Entire loft"
	Kind        filter.PropertyType `yaml:"kind,omitempty" json:"kind,omitempty"`
	Images      []string            `yaml:"images" json:"images"`
}

// ImageLabel returns a short name for the image at index i, derived from the
// last path segment of its URL.
func (l Listing) ImageLabel(i int) string {
	if i < 0 || i >= len(l.Images) {
		return ""
	}
	raw := strings.TrimSpace(l.Images[i])
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		raw = u.Path
	}
	base := path.Base(raw)
	if base == "." || base == "/" {
		return raw
	}
	return base
}
