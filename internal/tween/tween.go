// Package tween animates float64 fields with gween easing curves.
//
// Tweens here are additive: each update adds the change of the eased value
// since the previous update to the target field instead of overwriting it.
// Several tweens, and any other writer, can therefore move the same field
// at once and their contributions sum.
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// Group animates up to three fields by fixed amounts over a shared duration.
// Call Update(dt) each frame, or hand the group to a Manager.
type Group struct {
	tweens  [3]*gween.Tween
	fields  [3]*float64
	applied [3]float64
	count   int

	elapsed  float64
	duration float64

	// OnComplete runs once, on the update that finishes the group.
	OnComplete func()
	Done       bool
}

// RotateBy creates a Group that adds by to rotation over duration.
func RotateBy(rotation *math.Vec3, by math.Vec3, duration time.Duration, fn ease.TweenFunc) *Group {
	return Add([]*float64{&rotation.X, &rotation.Y, &rotation.Z}, []float64{by.X, by.Y, by.Z}, duration, fn)
}

// Add creates a Group that adds deltas[i] to *fields[i] over duration.
// At most three fields are animated; extra entries are ignored.
func Add(fields []*float64, deltas []float64, duration time.Duration, fn ease.TweenFunc) *Group {
	if fn == nil {
		fn = ease.Linear
	}
	g := &Group{duration: duration.Seconds()}
	for i := range fields {
		if i >= len(g.fields) || i >= len(deltas) {
			break
		}
		g.tweens[i] = gween.New(0, float32(deltas[i]), float32(g.duration), fn)
		g.fields[i] = fields[i]
		g.count++
	}
	return g
}

// Update advances the group by dt seconds and applies the value change to
// each field. It returns true once the group has finished.
func (g *Group) Update(dt float64) bool {
	if g.Done {
		return true
	}
	g.elapsed += dt

	allDone := true
	for i := 0; i < g.count; i++ {
		t := g.elapsed
		if t >= g.duration {
			t = g.duration
		}
		val, finished := g.tweens[i].Set(float32(t))
		if t == g.duration {
			finished = true
		}
		v := float64(val)
		*g.fields[i] += v - g.applied[i]
		g.applied[i] = v
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && g.OnComplete != nil {
		g.OnComplete()
	}
	return g.Done
}

// Applied returns the total amount added to field i so far.
func (g *Group) Applied(i int) float64 {
	return g.applied[i]
}

// Manager advances a set of groups and drops them when they finish.
type Manager struct {
	groups []*Group
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Start adds a group to the manager. It first moves on the next Update.
func (m *Manager) Start(g *Group) {
	m.groups = append(m.groups, g)
}

// Update advances every active group by dt seconds, in start order.
// Groups started from an OnComplete callback first move on the next Update.
func (m *Manager) Update(dt float64) {
	groups := m.groups
	m.groups = nil

	var live []*Group
	for _, g := range groups {
		if !g.Update(dt) {
			live = append(live, g)
		}
	}
	m.groups = append(live, m.groups...)
}

// Len returns the number of active groups.
func (m *Manager) Len() int {
	return len(m.groups)
}
