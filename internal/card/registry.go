package card

import "github.com/chmouel/lazystay/internal/models"

// State is the interactive state of one mounted card.
type State struct {
	ID       string
	Carousel *Tracker
	Like     Like
}

// Registry keeps one State per listing ID. States are never shared between
// listings.
type Registry struct {
	states map[string]*State
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*State)}
}

// Sync mounts state for new listings and unmounts state for listings that are
// gone. A listing whose image count changed is remounted from scratch.
// It returns how many cards were mounted and unmounted.
func (r *Registry) Sync(listings []models.Listing) (mounted, unmounted int) {
	seen := make(map[string]struct{}, len(listings))
	for _, l := range listings {
		seen[l.ID] = struct{}{}
		st, ok := r.states[l.ID]
		if ok && st.Carousel.ImageCount() == len(l.Images) {
			continue
		}
		if ok {
			unmounted++
		}
		r.states[l.ID] = &State{ID: l.ID, Carousel: NewTracker(len(l.Images))}
		mounted++
	}
	for id := range r.states {
		if _, ok := seen[id]; !ok {
			delete(r.states, id)
			unmounted++
		}
	}
	return mounted, unmounted
}

// Get returns the state for a listing ID.
func (r *Registry) Get(id string) (*State, bool) {
	st, ok := r.states[id]
	return st, ok
}

// Len returns the number of mounted cards.
func (r *Registry) Len() int {
	return len(r.states)
}
