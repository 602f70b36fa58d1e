// Package page models the scrolled document hosting the 3D scene.
//
// The document is a vertical stack of sections, each exactly one viewport
// tall. Each section carries an anchor that the visibility observer watches.
package page

import (
	"fmt"
	"math"
)

// Anchor identifies one section of the document. Index is its position in
// document order.
type Anchor struct {
	ID    string
	Index int
	Title string
}

// Page is the virtual document. Its scroll offset is in window pixels and
// stays within [0, MaxScroll].
type Page struct {
	anchors        []Anchor
	viewportHeight float64
	scrollY        float64
}

// New creates a document with one section per title. Anchor IDs are
// "section-0", "section-1", ... in document order.
func New(titles []string, viewportHeight int) *Page {
	anchors := make([]Anchor, len(titles))
	for i, title := range titles {
		anchors[i] = Anchor{
			ID:    fmt.Sprintf("section-%d", i),
			Index: i,
			Title: title,
		}
	}
	p := &Page{anchors: anchors}
	p.SetViewportHeight(viewportHeight)
	return p
}

// Anchors returns the section anchors in document order.
func (p *Page) Anchors() []Anchor {
	return p.anchors
}

// Len returns the number of sections.
func (p *Page) Len() int {
	return len(p.anchors)
}

// ViewportHeight returns the height of one section in pixels.
func (p *Page) ViewportHeight() float64 {
	return p.viewportHeight
}

// SetViewportHeight updates the section height. The scroll offset keeps the
// same relative position in the document.
func (p *Page) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	newHeight := float64(height)
	if p.viewportHeight > 0 {
		p.scrollY = p.scrollY / p.viewportHeight * newHeight
	}
	p.viewportHeight = newHeight
	p.scrollY = p.clamp(p.scrollY)
}

// ContentHeight returns the total document height in pixels.
func (p *Page) ContentHeight() float64 {
	return float64(len(p.anchors)) * p.viewportHeight
}

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.ContentHeight()-p.viewportHeight)
}

// ScrollY returns the current scroll offset.
func (p *Page) ScrollY() float64 {
	return p.scrollY
}

// ScrollTo sets the scroll offset, clamped to the document. It reports
// whether the offset changed.
func (p *Page) ScrollTo(y float64) bool {
	y = p.clamp(y)
	if y == p.scrollY {
		return false
	}
	p.scrollY = y
	return true
}

// ScrollBy moves the scroll offset by dy pixels.
func (p *Page) ScrollBy(dy float64) bool {
	return p.ScrollTo(p.scrollY + dy)
}

// PageDown scrolls forward by one viewport.
func (p *Page) PageDown() bool {
	return p.ScrollBy(p.viewportHeight)
}

// PageUp scrolls back by one viewport.
func (p *Page) PageUp() bool {
	return p.ScrollBy(-p.viewportHeight)
}

// Home scrolls to the top of the document.
func (p *Page) Home() bool {
	return p.ScrollTo(0)
}

// End scrolls to the bottom of the document.
func (p *Page) End() bool {
	return p.ScrollTo(p.MaxScroll())
}

// SectionBounds returns the top and bottom of the section in document
// pixels.
func (p *Page) SectionBounds(index int) (top, bottom float64) {
	top = float64(index) * p.viewportHeight
	return top, top + p.viewportHeight
}

// Current returns the anchor of the section occupying the viewport centre.
func (p *Page) Current() (Anchor, bool) {
	if len(p.anchors) == 0 {
		return Anchor{}, false
	}
	centre := p.scrollY + p.viewportHeight/2
	i := int(centre / p.viewportHeight)
	if i >= len(p.anchors) {
		i = len(p.anchors) - 1
	}
	return p.anchors[i], true
}

func (p *Page) clamp(y float64) float64 {
	if math.IsNaN(y) {
		return p.scrollY
	}
	return math.Min(math.Max(y, 0), p.MaxScroll())
}
