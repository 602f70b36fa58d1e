package visibility

import (
	"time"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/hnrq/scroll-based-animation-sub001/internal/logger"
	"github.com/hnrq/scroll-based-animation-sub001/internal/page"
	"github.com/hnrq/scroll-based-animation-sub001/internal/tween"
	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// State is the animation state of one section.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// TriggerConfig describes the tween started on each entering crossing.
type TriggerConfig struct {
	Rotation math.Vec3
	Duration time.Duration
	Ease     ease.TweenFunc
}

type section struct {
	rotation *math.Vec3
	active   int
}

// Trigger starts a rotation tween on a section's object each time the
// section enters view. A section re-entering while its previous tween is
// still running gets a second tween; both add to the rotation.
type Trigger struct {
	cfg      TriggerConfig
	tweens   *tween.Manager
	index    map[string]int
	sections []section
}

// NewTrigger binds anchors[i] to rotations[i]. Tweens are driven by tweens.
func NewTrigger(anchors []page.Anchor, rotations []*math.Vec3, tweens *tween.Manager, cfg TriggerConfig) *Trigger {
	if cfg.Ease == nil {
		cfg.Ease = ease.InOutSine
	}
	t := &Trigger{
		cfg:      cfg,
		tweens:   tweens,
		index:    make(map[string]int, len(anchors)),
		sections: make([]section, len(rotations)),
	}
	for i, rot := range rotations {
		t.sections[i].rotation = rot
	}
	for _, a := range anchors {
		if a.Index >= 0 && a.Index < len(rotations) {
			t.index[a.ID] = a.Index
		}
	}
	return t
}

// Handle processes one visibility entry. It reports whether a tween was
// started.
func (t *Trigger) Handle(e Entry) bool {
	if !e.Entering {
		return false
	}
	i, ok := t.index[e.AnchorID]
	if !ok {
		logger.Warn("visibility entry for unknown anchor", zap.String("anchor", e.AnchorID))
		return false
	}

	s := &t.sections[i]
	g := tween.RotateBy(s.rotation, t.cfg.Rotation, t.cfg.Duration, t.cfg.Ease)
	g.OnComplete = func() {
		s.active--
		if s.active == 0 {
			logger.Debug("section tween finished", zap.Int("section", i))
		}
	}
	s.active++
	t.tweens.Start(g)

	logger.Debug("section entered view",
		zap.Int("section", i),
		zap.Float64("ratio", e.Ratio),
		zap.Int("active", s.active))
	return true
}

// HandleAll processes entries in order and returns how many tweens started.
func (t *Trigger) HandleAll(entries []Entry) int {
	started := 0
	for _, e := range entries {
		if t.Handle(e) {
			started++
		}
	}
	return started
}

// State returns the animation state of section i.
func (t *Trigger) State(i int) State {
	if t.sections[i].active > 0 {
		return Animating
	}
	return Idle
}

// Active returns the number of running tweens on section i.
func (t *Trigger) Active(i int) int {
	return t.sections[i].active
}
