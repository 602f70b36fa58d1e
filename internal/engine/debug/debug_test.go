package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParamsNotifyOnlyTheirKey(t *testing.T) {
	p := NewParams()

	var material, particles []colorful.Color
	p.AddColor(MaterialColor, colorful.Color{R: 1, G: 1, B: 1}, func(c colorful.Color) { material = append(material, c) })
	p.AddColor(ParticlesColor, colorful.Color{R: 1, G: 1, B: 1}, func(c colorful.Color) { particles = append(particles, c) })

	if err := p.SetHex(MaterialColor, "#ff0000"); err != nil {
		t.Fatalf("SetHex: %v", err)
	}

	if len(material) != 1 || len(particles) != 0 {
		t.Fatalf("callbacks: material %d, particles %d", len(material), len(particles))
	}
	if material[0].Hex() != "#ff0000" {
		t.Errorf("material color = %s", material[0].Hex())
	}
	if c, _ := p.Color(MaterialColor); c.Hex() != "#ff0000" {
		t.Errorf("Color(materialColor) = %s", c.Hex())
	}
	if keys := p.Keys(); len(keys) != 2 || keys[0] != MaterialColor {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestParamsErrors(t *testing.T) {
	p := NewParams()
	p.AddColor(MaterialColor, colorful.Color{}, nil)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"unknown key", func() error { return p.SetColor("fog", colorful.Color{}) }},
		{"bad hex", func() error { return p.SetHex(MaterialColor, "red") }},
		{"unknown hue", func() error { return p.ShiftHue("fog", 10) }},
	}
	for _, tt := range tests {
		if err := tt.fn(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestShiftHue(t *testing.T) {
	p := NewParams()
	red, _ := colorful.Hex("#ff0000")
	p.AddColor(MaterialColor, red, nil)

	if err := p.ShiftHue(MaterialColor, 120); err != nil {
		t.Fatalf("ShiftHue: %v", err)
	}
	c, _ := p.Color(MaterialColor)
	if c.Hex() != "#00ff00" {
		t.Errorf("after +120 = %s, want #00ff00", c.Hex())
	}

	if err := p.ShiftHue(MaterialColor, -120); err != nil {
		t.Fatalf("ShiftHue: %v", err)
	}
	c, _ = p.Color(MaterialColor)
	if c.Hex() != "#ff0000" {
		t.Errorf("after -120 = %s, want #ff0000", c.Hex())
	}
}

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(filepath.Join(dir, "shots"), "frame")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue (OpenGL order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if filepath.Base(path) != "frame_2024-05-01_12-00-00.000.png" {
		t.Errorf("path = %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue")
	}
	if r, _, _, _ := img.At(0, 1).RGBA(); r == 0 {
		t.Errorf("bottom pixel should be red")
	}
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame")
	if _, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
