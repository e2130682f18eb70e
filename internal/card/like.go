package card

// Like is a card's liked flag.
type Like struct {
	liked bool
}

// Toggle flips the flag and returns the new value.
func (l *Like) Toggle() bool {
	l.liked = !l.liked
	return l.liked
}

// Liked reports the current value.
func (l *Like) Liked() bool {
	return l.liked
}
