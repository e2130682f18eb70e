package app

import (
	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/models"
)

// Message types for the Bubble Tea app
type (
	errMsg              struct{ err error }
	catalogChangedMsg   struct{}
	catalogRetryMsg     struct{}
	criteriaAppliedMsg  struct{ criteria filter.Criteria }
	filtersDismissedMsg struct{ policy filter.DismissPolicy }
	catalogLoadedMsg    struct {
		listings []models.Listing
		err      error
	}
)
