// Package texture loads the gradient ramp used for toon shading.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/hnrq/scroll-based-animation-sub001/internal/logger"
)

// MaxGradientSteps caps the width of a loaded ramp.
const MaxGradientSteps = 256

// Gradient is a one-row lookup ramp. The shader samples it with nearest
// filtering, so each pixel becomes one flat shading band.
type Gradient struct {
	Image  *image.RGBA
	Source string
}

// Steps returns the number of bands in the ramp.
func (g *Gradient) Steps() int {
	return g.Image.Bounds().Dx()
}

// Sample returns the band for t in [0, 1] the way a nearest-filtered
// texture lookup would.
func (g *Gradient) Sample(t float64) color.RGBA {
	n := g.Steps()
	i := int(t * float64(n))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return g.Image.RGBAAt(i, 0)
}

// DefaultGradient returns the built-in three band ramp.
func DefaultGradient() *Gradient {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	for i, v := range []uint8{0x50, 0xa0, 0xff} {
		img.SetRGBA(i, 0, color.RGBA{R: v, G: v, B: v, A: 0xff})
	}
	return &Gradient{Image: img, Source: "builtin"}
}

// LoadGradient reads a PNG, JPEG or BMP ramp from path.
func LoadGradient(path string) (*Gradient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gradient: %w", err)
	}
	g, err := DecodeGradient(data)
	if err != nil {
		return nil, fmt.Errorf("decoding gradient %s: %w", path, err)
	}
	g.Source = path
	return g, nil
}

// LoadGradientOrDefault loads path and falls back to DefaultGradient when
// that fails. A failure is logged, never returned.
func LoadGradientOrDefault(path string) *Gradient {
	g, err := LoadGradient(path)
	if err != nil {
		logger.Warn("gradient texture unavailable, using built-in ramp",
			zap.String("path", path),
			zap.Error(err))
		return DefaultGradient()
	}
	logger.Debug("loaded gradient texture",
		zap.String("path", path),
		zap.Int("steps", g.Steps()))
	return g
}

// DecodeGradient decodes an encoded image into a one-row ramp. Images
// taller than one row are collapsed with nearest-neighbour sampling, which
// keeps the middle row; wider than MaxGradientSteps are narrowed the same
// way.
func DecodeGradient(data []byte) (*Gradient, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromImage(src)
}

// FromImage converts any image to a one-row ramp.
func FromImage(src image.Image) (*Gradient, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty gradient image")
	}
	width := min(b.Dx(), MaxGradientSteps)

	dst := image.NewRGBA(image.Rect(0, 0, width, 1))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return &Gradient{Image: dst}, nil
}
