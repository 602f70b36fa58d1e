// Package tracker holds the latest input and viewport state between frames.
//
// Each tracker has a single writer (the event dispatch in the game loop)
// and a single reader (the frame step). Both run on the main goroutine, so
// the trackers carry no locks. A caller that feeds them from another
// goroutine must serialise access itself.
package tracker

import "math"

// Size is the viewport size in window (device-independent) pixels plus the
// clamped device pixel ratio.
type Size struct {
	Width      int
	Height     int
	PixelRatio float64
}

// Aspect returns Width/Height.
func (s Size) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Viewport owns the current viewport dimensions. It is the only place
// other components read the viewport size from.
type Viewport struct {
	size          Size
	maxPixelRatio float64
	listeners     []func(Size)
}

// NewViewport creates a tracker with an initial size. The device pixel
// ratio is clamped to maxPixelRatio.
func NewViewport(width, height int, devicePixelRatio, maxPixelRatio float64) *Viewport {
	v := &Viewport{maxPixelRatio: maxPixelRatio}
	v.size = v.normalize(width, height, devicePixelRatio)
	return v
}

// Size returns the current viewport size.
func (v *Viewport) Size() Size {
	return v.size
}

// Width returns the current width in pixels.
func (v *Viewport) Width() int {
	return v.size.Width
}

// Height returns the current height in pixels.
func (v *Viewport) Height() int {
	return v.size.Height
}

// OnResize registers fn to be called after every Resize, in registration
// order. The camera registers before the renderer so both observe the same
// size before the next frame.
func (v *Viewport) OnResize(fn func(Size)) {
	v.listeners = append(v.listeners, fn)
}

// Resize records a new viewport size and notifies listeners synchronously.
func (v *Viewport) Resize(width, height int, devicePixelRatio float64) {
	v.size = v.normalize(width, height, devicePixelRatio)
	for _, fn := range v.listeners {
		fn(v.size)
	}
}

func (v *Viewport) normalize(width, height int, dpr float64) Size {
	// SDL reports 0x0 while the window is minimised.
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if dpr <= 0 || math.IsNaN(dpr) {
		dpr = 1
	}
	if v.maxPixelRatio > 0 {
		dpr = math.Min(dpr, v.maxPixelRatio)
	}
	return Size{Width: width, Height: height, PixelRatio: dpr}
}
