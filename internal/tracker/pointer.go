package tracker

import "github.com/hnrq/scroll-based-animation-sub001/pkg/math"

// Pointer records the cursor position normalised to [-0.5, 0.5] on each
// axis, with (0, 0) at the viewport centre and +Y pointing down.
type Pointer struct {
	viewport *Viewport
	cursor   math.Vec2
}

// NewPointer creates a pointer tracker that normalises against viewport.
func NewPointer(viewport *Viewport) *Pointer {
	return &Pointer{viewport: viewport}
}

// Move records a pointer position given in window pixels.
func (p *Pointer) Move(clientX, clientY float64) {
	size := p.viewport.Size()
	p.cursor = math.Vec2{
		X: clientX/float64(size.Width) - 0.5,
		Y: clientY/float64(size.Height) - 0.5,
	}
}

// Cursor returns the most recently recorded normalised position.
func (p *Pointer) Cursor() math.Vec2 {
	return p.cursor
}
