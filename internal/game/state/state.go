// Package state holds the scene state the frame loop advances: the
// document and its trackers, the composed scene, the camera rig and the
// running tweens. It has no window or GL dependency.
package state

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/hnrq/scroll-based-animation-sub001/internal/config"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/camera"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/debug"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/texture"
	"github.com/hnrq/scroll-based-animation-sub001/internal/logger"
	"github.com/hnrq/scroll-based-animation-sub001/internal/page"
	"github.com/hnrq/scroll-based-animation-sub001/internal/scene"
	"github.com/hnrq/scroll-based-animation-sub001/internal/tracker"
	"github.com/hnrq/scroll-based-animation-sub001/internal/tween"
	"github.com/hnrq/scroll-based-animation-sub001/internal/visibility"
	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// FrameRenderer draws one frame.
type FrameRenderer interface {
	Render(s *scene.Scene, cam camera.View) error
}

// State is everything the frame loop reads and writes. It is created once
// and only touched from the main goroutine.
type State struct {
	Config *config.Config

	Page     *page.Page
	Viewport *tracker.Viewport
	Scroll   *tracker.Scroll
	Pointer  *tracker.Pointer

	Scene  *scene.Scene
	Rig    *camera.Rig
	Tweens *tween.Manager

	Observer *visibility.Observer
	Trigger  *visibility.Trigger
	Params   *debug.Params

	Clock *Clock

	// OnSectionChange is called when a different section takes the
	// viewport centre.
	OnSectionChange func(page.Anchor)

	renderer     FrameRenderer
	renderErrors *logger.Limiter
	section      int
}

// New builds the document, scene and camera rig for a viewport of
// width x height window pixels.
func New(cfg *config.Config, width, height int, devicePixelRatio float64, gradient *texture.Gradient, rng *rand.Rand, clock *Clock) *State {
	titles := make([]string, len(cfg.Scene.Sections))
	for i, sec := range cfg.Scene.Sections {
		titles[i] = sec.Title
	}

	s := &State{
		Config:       cfg,
		Viewport:     tracker.NewViewport(width, height, devicePixelRatio, cfg.Window.MaxPixelRatio),
		Scroll:       &tracker.Scroll{},
		Tweens:       tween.NewManager(),
		Observer:     visibility.NewObserver(cfg.Animation.VisibilityThreshold),
		Params:       debug.NewParams(),
		Clock:        clock,
		renderErrors: logger.Every(time.Second),
		section:      -1,
	}
	s.Pointer = tracker.NewPointer(s.Viewport)
	s.Page = page.New(titles, s.Viewport.Height())

	s.Scene = scene.Compose(scene.Options{
		ObjectsDistance: cfg.Scene.ObjectsDistance,
		MaterialColor:   config.MustColor(cfg.Scene.MaterialColor),
		ParticleCount:   cfg.Scene.ParticleCount,
		ParticleSize:    cfg.Scene.ParticleSize,
		ParticleExtent:  cfg.Scene.ParticleExtent,
		ParticlesColor:  config.MustColor(cfg.Scene.ParticlesColor),
		LightIntensity:  cfg.Scene.LightIntensity,
	}, s.Page.Anchors(), gradient, rng)

	cam := camera.NewPerspective(cfg.Camera.FOV, s.Viewport.Size().Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	s.Rig = camera.NewRig(cam, camera.RigConfig{
		BaseZ:           cfg.Camera.Distance,
		ObjectsDistance: cfg.Scene.ObjectsDistance,
		ParallaxAmount:  cfg.Camera.ParallaxAmount,
		SmoothingRate:   cfg.Camera.SmoothingRate,
	})

	rot := cfg.Animation.TweenRotation
	s.Trigger = visibility.NewTrigger(s.Page.Anchors(), s.Scene.Rotations(), s.Tweens, visibility.TriggerConfig{
		Rotation: math.Vec3{X: rot.X, Y: rot.Y, Z: rot.Z},
		Duration: cfg.Animation.TweenDuration,
	})

	s.Params.AddColor(debug.MaterialColor, s.Scene.Material.Color, func(c colorful.Color) {
		s.Scene.Material.Color = c
	})
	s.Params.AddColor(debug.ParticlesColor, s.Scene.Particles.Material.Color, func(c colorful.Color) {
		s.Scene.Particles.Material.Color = c
	})

	s.Viewport.OnResize(func(size tracker.Size) {
		s.Page.SetViewportHeight(size.Height)
		s.Scroll.Set(s.Page.ScrollY())
	})
	s.Viewport.OnResize(func(size tracker.Size) {
		s.Rig.SetAspect(size.Aspect())
	})

	return s
}

// AttachRenderer sets the frame renderer. onResize, if not nil, is called
// after the camera on every viewport change.
func (s *State) AttachRenderer(r FrameRenderer, onResize func(tracker.Size)) {
	s.renderer = r
	if onResize != nil {
		s.Viewport.OnResize(onResize)
	}
}

// HandleResize records a new viewport size.
func (s *State) HandleResize(width, height int, devicePixelRatio float64) {
	s.Viewport.Resize(width, height, devicePixelRatio)
}

// HandlePointer records a pointer position in window pixels.
func (s *State) HandlePointer(x, y float64) {
	s.Pointer.Move(x, y)
}

// HandleWheel scrolls by wheel notches; positive notches scroll up.
func (s *State) HandleWheel(notches int) {
	s.ScrollBy(-float64(notches) * s.Config.Input.ScrollStep)
}

// ScrollBy scrolls the document by dy pixels.
func (s *State) ScrollBy(dy float64) {
	s.Page.ScrollBy(dy)
	s.Scroll.Set(s.Page.ScrollY())
}

// ScrollTo scrolls the document to y pixels.
func (s *State) ScrollTo(y float64) {
	s.Page.ScrollTo(y)
	s.Scroll.Set(s.Page.ScrollY())
}

// PageDown scrolls forward by one viewport.
func (s *State) PageDown() {
	s.Page.PageDown()
	s.Scroll.Set(s.Page.ScrollY())
}

// PageUp scrolls back by one viewport.
func (s *State) PageUp() {
	s.Page.PageUp()
	s.Scroll.Set(s.Page.ScrollY())
}

// Home scrolls to the first section.
func (s *State) Home() {
	s.Page.Home()
	s.Scroll.Set(s.Page.ScrollY())
}

// End scrolls to the last section.
func (s *State) End() {
	s.Page.End()
	s.Scroll.Set(s.Page.ScrollY())
}

// Observe checks section visibility and starts tweens for sections that
// entered view. It returns the number of tweens started.
func (s *State) Observe() int {
	started := s.Trigger.HandleAll(s.Observer.Observe(s.Page))

	if a, ok := s.Page.Current(); ok && a.Index != s.section {
		s.section = a.Index
		if s.OnSectionChange != nil {
			s.OnSectionChange(a)
		}
	}
	return started
}

// Frame advances time and draws one frame. A render failure is logged and
// returned; state has already advanced, so the caller just moves on.
func (s *State) Frame() error {
	_, delta := s.Clock.Tick()

	s.Tweens.Update(delta)
	s.Rig.Update(delta, s.Scroll.Y(), float64(s.Viewport.Height()), s.Pointer.Cursor())
	s.Scene.Spin(delta, s.Config.Animation.AmbientRateX, s.Config.Animation.AmbientRateY)

	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.Render(s.Scene, s.Rig); err != nil {
		if ok, suppressed := s.renderErrors.Allow(); ok {
			logger.Error("frame dropped", zap.Error(err), zap.Int("suppressed", suppressed))
		}
		return err
	}
	return nil
}
