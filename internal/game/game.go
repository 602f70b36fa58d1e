// Package game wires the window, input, scene state and renderer into the
// frame loop.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/hnrq/scroll-based-animation-sub001/internal/config"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/debug"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/input"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/renderer"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/texture"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/window"
	"github.com/hnrq/scroll-based-animation-sub001/internal/game/state"
	"github.com/hnrq/scroll-based-animation-sub001/internal/logger"
	"github.com/hnrq/scroll-based-animation-sub001/internal/page"
	"github.com/hnrq/scroll-based-animation-sub001/internal/tracker"
)

// Hue step applied by the debug color keys, in degrees.
const debugHueStep = 30

// Game is the application instance.
type Game struct {
	config      *config.Config
	running     bool
	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	state       *state.State
	screenshots *debug.ScreenshotCapture
}

// New creates the window, renderer and scene.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("sections", len(cfg.Scene.Sections)),
	)

	g := &Game{
		config:      cfg,
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "scrollscene"),
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gradient := texture.LoadGradientOrDefault(cfg.Scene.GradientTexture)
	g.state = state.New(cfg, width, height, g.window.PixelRatio(), gradient, rand.New(rand.NewSource(seed)), state.NewClock())

	// Create renderer (AFTER window, since OpenGL context must exist)
	size := g.state.Viewport.Size()
	drawableWidth, drawableHeight := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:          size.Width,
		Height:         size.Height,
		PixelRatio:     size.PixelRatio,
		DrawableWidth:  drawableWidth,
		DrawableHeight: drawableHeight,
		ClearColor:     config.MustColor(cfg.Window.ClearColor),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.state.AttachRenderer(g.renderer, func(s tracker.Size) {
		dw, dh := g.window.DrawableSize()
		g.renderer.Resize(s.Width, s.Height, s.PixelRatio, dw, dh)
	})
	g.state.OnSectionChange = func(a page.Anchor) {
		g.window.SetTitle(fmt.Sprintf("%s | %s", cfg.Window.Title, a.Title))
	}

	g.input = input.New()

	logger.Info("initialized successfully", zap.Int64("seed", seed))
	return g, nil
}

// Run runs the frame loop until the window is closed or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")
	g.state.Clock.Reset()

	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			g.dispatch(event)
		}
		if !g.running {
			break
		}

		g.state.Observe()
		_ = g.state.Frame() // logged by Frame

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("scroll", g.state.Scroll.Y()),
				zap.Int("tweens", g.state.Tweens.Len()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) dispatch(event input.Event) {
	s := g.state
	switch event.Type {
	case input.EventWindowResize:
		s.HandleResize(event.Width, event.Height, g.window.PixelRatio())
	case input.EventMouseMove:
		s.HandlePointer(float64(event.MouseX), float64(event.MouseY))
	case input.EventMouseWheel:
		s.HandleWheel(event.WheelY)
	case input.EventKeyDown:
		g.handleKey(event.Key)
	}
}

func (g *Game) handleKey(key sdl.Scancode) {
	s := g.state
	step := g.config.Input.ScrollStep

	switch key {
	case sdl.SCANCODE_ESCAPE:
		g.running = false
	case sdl.SCANCODE_PAGEDOWN, sdl.SCANCODE_SPACE:
		s.PageDown()
	case sdl.SCANCODE_PAGEUP:
		s.PageUp()
	case sdl.SCANCODE_DOWN:
		s.ScrollBy(step)
	case sdl.SCANCODE_UP:
		s.ScrollBy(-step)
	case sdl.SCANCODE_HOME:
		s.Home()
	case sdl.SCANCODE_END:
		s.End()
	case sdl.SCANCODE_F12:
		g.captureScreenshot()
	case sdl.SCANCODE_1:
		g.shiftHue(debug.MaterialColor)
	case sdl.SCANCODE_2:
		g.shiftHue(debug.ParticlesColor)
	}
}

func (g *Game) shiftHue(key string) {
	if !g.config.Debug.Panel {
		return
	}
	if err := g.state.Params.ShiftHue(key, debugHueStep); err != nil {
		logger.Warn("debug parameter change failed", zap.Error(err))
	}
}

func (g *Game) captureScreenshot() {
	pixels, width, height := g.renderer.Capture()
	path, err := g.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up resources.
func (g *Game) Close() {
	logger.Info("closing")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
