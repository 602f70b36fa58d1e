package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "gradient.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultGradient(t *testing.T) {
	g := DefaultGradient()
	if g.Steps() != 3 {
		t.Fatalf("Steps() = %d, want 3", g.Steps())
	}
	if g.Source != "builtin" {
		t.Errorf("Source = %q", g.Source)
	}
	if g.Sample(0).R >= g.Sample(0.5).R || g.Sample(0.5).R >= g.Sample(1).R {
		t.Error("default ramp is not increasing")
	}
}

func TestSampleIsNearest(t *testing.T) {
	g := DefaultGradient()

	tests := []struct {
		t    float64
		want uint8
	}{
		{-1, 0x50},
		{0, 0x50},
		{0.33, 0x50},
		{0.34, 0xa0},
		{0.66, 0xa0},
		{0.67, 0xff},
		{1, 0xff},
		{2, 0xff},
	}
	for _, tt := range tests {
		if got := g.Sample(tt.t).R; got != tt.want {
			t.Errorf("Sample(%v).R = %#x, want %#x", tt.t, got, tt.want)
		}
	}
}

func TestLoadGradient(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 1))
	for x := 0; x < 5; x++ {
		src.SetRGBA(x, 0, color.RGBA{R: uint8(x * 50), A: 255})
	}
	path := writePNG(t, src)

	g, err := LoadGradient(path)
	if err != nil {
		t.Fatalf("LoadGradient: %v", err)
	}
	if g.Steps() != 5 {
		t.Errorf("Steps() = %d, want 5", g.Steps())
	}
	if g.Source != path {
		t.Errorf("Source = %q", g.Source)
	}
	for x := 0; x < 5; x++ {
		if got := g.Image.RGBAAt(x, 0).R; got != uint8(x*50) {
			t.Errorf("band %d R = %d, want %d", x, got, x*50)
		}
	}
}

func TestLoadGradientCollapsesRows(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{G: uint8(x * 60), A: 255})
		}
	}

	g, err := LoadGradient(writePNG(t, src))
	if err != nil {
		t.Fatalf("LoadGradient: %v", err)
	}
	if g.Image.Bounds().Dy() != 1 || g.Steps() != 4 {
		t.Errorf("bounds = %v", g.Image.Bounds())
	}
	if got := g.Image.RGBAAt(3, 0).G; got != 180 {
		t.Errorf("band 3 G = %d, want 180", got)
	}
}

func TestLoadGradientOrDefault(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.png") }},
		{"garbage", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "bad.png")
			if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
				t.Fatal(err)
			}
			return path
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := LoadGradientOrDefault(tt.path(t))
			if g.Source != "builtin" || g.Steps() != 3 {
				t.Errorf("got %q with %d steps, want builtin ramp", g.Source, g.Steps())
			}
		})
	}
}
