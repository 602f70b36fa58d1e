package tween

import (
	gomath "math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

func approxEqual(a, b, eps float64) bool {
	return gomath.Abs(a-b) < eps
}

func TestRotateByReachesTarget(t *testing.T) {
	tests := []struct {
		name   string
		frames []float64
	}{
		{"60fps", repeat(1.0/60.0, 60)},
		{"uneven", []float64{0.1, 0.05, 0.3, 0.2, 0.4}},
		{"single large step", []float64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := math.Vec3{X: 1, Y: 2, Z: 3}
			g := RotateBy(&rot, math.Vec3{X: 6, Y: 2, Z: 1.5}, 800*time.Millisecond, ease.InOutSine)

			for _, dt := range tt.frames {
				g.Update(dt)
			}

			if !g.Done {
				t.Fatal("group not done after its duration")
			}
			want := math.Vec3{X: 7, Y: 4, Z: 4.5}
			if !approxEqual(rot.X, want.X, 1e-6) || !approxEqual(rot.Y, want.Y, 1e-6) || !approxEqual(rot.Z, want.Z, 1e-6) {
				t.Errorf("rotation = %v, want %v", rot, want)
			}
			if g.Applied(0) != 6 {
				t.Errorf("Applied(0) = %v, want exactly 6", g.Applied(0))
			}
		})
	}
}

func TestGroupIsAdditive(t *testing.T) {
	var x float64
	g := Add([]*float64{&x}, []float64{2}, time.Second, ease.Linear)

	g.Update(0.5)
	x += 10 // an unrelated writer
	g.Update(0.5)

	if !approxEqual(x, 12, 1e-6) {
		t.Errorf("x = %v, want 12", x)
	}
}

func TestOverlappingGroupsSum(t *testing.T) {
	var x float64
	m := NewManager()
	m.Start(Add([]*float64{&x}, []float64{6}, 800*time.Millisecond, ease.InOutSine))
	m.Update(0.4)
	m.Start(Add([]*float64{&x}, []float64{6}, 800*time.Millisecond, ease.InOutSine))

	for i := 0; i < 10; i++ {
		m.Update(0.1)
	}

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if !approxEqual(x, 12, 1e-6) {
		t.Errorf("x = %v, want 12", x)
	}
}

func TestOnCompleteRunsOnce(t *testing.T) {
	var x float64
	calls := 0
	g := Add([]*float64{&x}, []float64{1}, 100*time.Millisecond, nil)
	g.OnComplete = func() { calls++ }

	m := NewManager()
	m.Start(g)
	for i := 0; i < 5; i++ {
		m.Update(0.05)
	}

	if calls != 1 {
		t.Errorf("OnComplete called %d times, want 1", calls)
	}
}

func TestStartFromOnComplete(t *testing.T) {
	var x float64
	m := NewManager()
	first := Add([]*float64{&x}, []float64{1}, 100*time.Millisecond, ease.Linear)
	first.OnComplete = func() {
		m.Start(Add([]*float64{&x}, []float64{1}, 100*time.Millisecond, ease.Linear))
	}
	m.Start(first)

	m.Update(0.2)
	if m.Len() != 1 {
		t.Fatalf("Len() after first completes = %d, want 1", m.Len())
	}
	m.Update(0.2)
	if m.Len() != 0 || !approxEqual(x, 2, 1e-6) {
		t.Errorf("Len() = %d, x = %v", m.Len(), x)
	}
}

func TestEaseIsMonotonic(t *testing.T) {
	var x float64
	g := Add([]*float64{&x}, []float64{6}, 800*time.Millisecond, ease.InOutSine)

	prev := x
	for i := 0; i < 16; i++ {
		g.Update(0.05)
		if x < prev {
			t.Fatalf("step %d: x decreased from %v to %v", i, prev, x)
		}
		prev = x
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
