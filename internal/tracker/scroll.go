package tracker

// Scroll records the document's vertical scroll offset in pixels.
// Last write wins; values are not validated.
type Scroll struct {
	y float64
}

// Set records the latest scroll offset.
func (s *Scroll) Set(y float64) {
	s.y = y
}

// Y returns the most recently recorded scroll offset.
func (s *Scroll) Y() float64 {
	return s.y
}
