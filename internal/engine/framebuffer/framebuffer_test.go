package framebuffer

import "testing"

func TestScaledSize(t *testing.T) {
	tests := []struct {
		w, h  int
		ratio float64
		wantW int32
		wantH int32
	}{
		{800, 600, 1, 800, 600},
		{800, 600, 2, 1600, 1200},
		{1001, 501, 1.5, 1502, 752},
		{0, 0, 2, 1, 1},
	}
	for _, tt := range tests {
		w, h := ScaledSize(tt.w, tt.h, tt.ratio)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ScaledSize(%d, %d, %v) = %d, %d, want %d, %d", tt.w, tt.h, tt.ratio, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestBlitDestination(t *testing.T) {
	// A device ratio of 3 clamped to 2 renders at 1600x1200 but the
	// window's drawable is 2400x1800.
	srcW, srcH := ScaledSize(800, 600, min(3.0, 2.0))

	tests := []struct {
		name         string
		drawW, drawH int32
		wantW, wantH int32
	}{
		{"scaled up to drawable", 2400, 1800, 2400, 1800},
		{"same size", 1600, 1200, 1600, 1200},
		{"unknown drawable", 0, 0, 1600, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := BlitDestination(srcW, srcH, tt.drawW, tt.drawH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("BlitDestination(%d, %d, %d, %d) = %d, %d, want %d, %d",
					srcW, srcH, tt.drawW, tt.drawH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
	if w, _ := BlitDestination(srcW, srcH, 2400, 1800); w == srcW {
		t.Error("blit does not scale to the drawable")
	}
}
