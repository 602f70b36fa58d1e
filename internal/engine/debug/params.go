// Package debug provides developer tweaking and capture utilities.
package debug

import (
	"fmt"
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/hnrq/scroll-based-animation-sub001/internal/logger"
)

// Keys of the color parameters registered by the scene.
const (
	MaterialColor  = "materialColor"
	ParticlesColor = "particlesColor"
)

type colorParam struct {
	value    colorful.Color
	onChange func(colorful.Color)
}

// Params is a key to color settings registry. Changing a value calls the
// callback registered with the key and has no other effect.
type Params struct {
	colors map[string]*colorParam
	keys   []string
}

// NewParams creates an empty registry.
func NewParams() *Params {
	return &Params{colors: make(map[string]*colorParam)}
}

// AddColor registers key with an initial value. onChange may be nil.
func (p *Params) AddColor(key string, initial colorful.Color, onChange func(colorful.Color)) {
	if _, ok := p.colors[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.colors[key] = &colorParam{value: initial, onChange: onChange}
}

// Keys returns the registered keys in registration order.
func (p *Params) Keys() []string {
	return p.keys
}

// Color returns the current value of key.
func (p *Params) Color(key string) (colorful.Color, bool) {
	c, ok := p.colors[key]
	if !ok {
		return colorful.Color{}, false
	}
	return c.value, true
}

// SetColor changes the value of key and notifies its callback.
func (p *Params) SetColor(key string, value colorful.Color) error {
	c, ok := p.colors[key]
	if !ok {
		return fmt.Errorf("unknown parameter %q", key)
	}
	c.value = value.Clamped()
	if c.onChange != nil {
		c.onChange(c.value)
	}
	logger.Debug("debug parameter changed",
		zap.String("key", key),
		zap.String("value", c.value.Hex()))
	return nil
}

// SetHex parses a "#rrggbb" or "#rgb" string and applies it to key.
func (p *Params) SetHex(key, hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", key, err)
	}
	return p.SetColor(key, c)
}

// ShiftHue rotates the hue of key by degrees, keeping saturation and value.
func (p *Params) ShiftHue(key string, degrees float64) error {
	c, ok := p.Color(key)
	if !ok {
		return fmt.Errorf("unknown parameter %q", key)
	}
	h, s, v := c.Hsv()
	h = gomath.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return p.SetColor(key, colorful.Hsv(h, s, v))
}
