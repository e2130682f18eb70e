package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageLabel(t *testing.T) {
	l := Listing{Images: []string{
		"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400",
		"photos/loft/kitchen.jpg",
		"",
	}}

	assert.Equal(t, "photo-1564013799919-ab600027ffc6", l.ImageLabel(0))
	assert.Equal(t, "kitchen.jpg", l.ImageLabel(1))
	assert.Equal(t, "", l.ImageLabel(2))
	assert.Equal(t, "", l.ImageLabel(3))
	assert.Equal(t, "", l.ImageLabel(-1))
}
