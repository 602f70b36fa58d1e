// Package visibility starts rotation tweens when a section scrolls into view.
//
// Observer measures how much of each section is inside the viewport and
// reports threshold crossings. Trigger maps a crossing back to its section
// and starts the tween on that section's object.
package visibility

import (
	"math"

	"github.com/hnrq/scroll-based-animation-sub001/internal/page"
)

// Document is the scrolled content the observer measures.
type Document interface {
	Anchors() []page.Anchor
	SectionBounds(index int) (top, bottom float64)
	ScrollY() float64
	ViewportHeight() float64
}

// Entry reports that a section's visible fraction crossed the threshold.
type Entry struct {
	AnchorID string
	Ratio    float64
	// Entering is true when the ratio rose to or above the threshold and
	// false when it fell below it.
	Entering bool
}

// Observer reports threshold crossings of each section's visible fraction.
// Before the first observation every section counts as fully hidden.
type Observer struct {
	threshold float64
	ratios    map[string]float64
}

// NewObserver creates an observer with a single threshold in (0, 1].
func NewObserver(threshold float64) *Observer {
	return &Observer{
		threshold: threshold,
		ratios:    make(map[string]float64),
	}
}

// Observe measures every section against the current viewport and returns
// the crossings since the previous call, in document order.
func (o *Observer) Observe(doc Document) []Entry {
	var entries []Entry

	viewTop := doc.ScrollY()
	viewBottom := viewTop + doc.ViewportHeight()

	for _, a := range doc.Anchors() {
		top, bottom := doc.SectionBounds(a.Index)
		ratio := VisibleFraction(top, bottom, viewTop, viewBottom)

		prev := o.ratios[a.ID]
		o.ratios[a.ID] = ratio

		was := prev >= o.threshold
		is := ratio >= o.threshold
		if was != is {
			entries = append(entries, Entry{AnchorID: a.ID, Ratio: ratio, Entering: is})
		}
	}
	return entries
}

// Ratio returns the last measured visible fraction for an anchor.
func (o *Observer) Ratio(anchorID string) float64 {
	return o.ratios[anchorID]
}

// VisibleFraction returns the share of [top, bottom] that lies inside
// [viewTop, viewBottom].
func VisibleFraction(top, bottom, viewTop, viewBottom float64) float64 {
	height := bottom - top
	if height <= 0 {
		return 0
	}
	overlap := math.Min(bottom, viewBottom) - math.Max(top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return math.Min(overlap/height, 1)
}
