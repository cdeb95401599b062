package polymorph

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Defaults applied by NewEngine to zero-valued RunConfig fields.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
	DefaultTPS    = 240
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title  string
	Width  int // default DefaultWidth
	Height int // default DefaultHeight

	// TPS is the fixed tick rate; every Update advances the shape by 1/TPS
	// seconds (default DefaultTPS).
	TPS int

	// Floating keeps the window above other windows. Resolve it once at
	// startup, e.g. with DefaultFloating.
	Floating bool

	// Decorated shows the OS title bar and border. The window is borderless
	// by default and is moved by dragging it.
	Decorated bool

	ShowFPS bool

	// Debug logs every retarget and per-second frame timings at debug level.
	Debug bool

	ClearColor Color

	// Logger receives lifecycle and debug events. The zero Logger discards
	// everything.
	Logger zerolog.Logger
}

// DefaultFloating reports whether the window should stay on top on the
// current platform.
func DefaultFloating() bool {
	return runtime.GOOS == "windows"
}

// Engine implements ebiten.Game: it polls input, advances the shape and
// draws it. All state is touched from ebiten's single game goroutine.
type Engine struct {
	shape  *MorphingShape
	config RunConfig
	log    zerolog.Logger

	pointer pointerSource
	window  windowMover
	drag    dragTracker

	fps   *fpsOverlay
	stats debugStats
	now   func() time.Time
}

// NewEngine wraps shape with the loop described by cfg.
func NewEngine(shape *MorphingShape, cfg RunConfig) *Engine {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = ColorBlack
	}
	e := &Engine{
		shape:   shape,
		config:  cfg,
		log:     cfg.Logger.With().Str("component", "engine").Logger(),
		pointer: ebitenPointer{},
		window:  ebitenWindow{},
		now:     time.Now,
	}
	if cfg.ShowFPS {
		e.fps = newFPSOverlay()
	}
	return e
}

// Config returns the effective configuration after defaults.
func (e *Engine) Config() RunConfig {
	return e.config
}

// tickSeconds is the fixed timestep of one Update.
func (e *Engine) tickSeconds() float64 {
	return 1.0 / float64(e.config.TPS)
}

// Update processes input and advances the shape by one fixed tick. It
// returns ebiten.Termination when the user presses Escape.
func (e *Engine) Update() error {
	if processInput(e.pointer, e.window, &e.drag) {
		e.log.Info().Msg("close requested")
		return ebiten.Termination
	}

	var t0 time.Time
	if e.config.Debug {
		t0 = e.now()
	}

	dt := e.tickSeconds()
	e.shape.Update(dt)
	if e.fps != nil {
		e.fps.update(dt)
	}

	if e.config.Debug {
		e.stats.updateTime += e.now().Sub(t0)
		e.stats.ticks++
		e.stats.logRetarget(e.log, e.shape)
		e.stats.logTimings(e.log, e.now())
	}
	return nil
}

// Draw clears screen and draws the shape, then the optional FPS overlay.
func (e *Engine) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if e.config.Debug {
		t0 = e.now()
	}

	screen.Fill(e.config.ClearColor.toRGBA())
	e.shape.Draw(screen)
	if e.fps != nil {
		e.fps.draw(screen)
	}

	if e.config.Debug {
		e.stats.drawTime += e.now().Sub(t0)
		e.stats.frames++
	}
}

// Layout returns the fixed window size.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.config.Width, e.config.Height
}

// Run opens the window described by cfg and runs the loop until the window
// is closed or Escape is pressed. A user-requested close returns nil.
func Run(shape *MorphingShape, cfg RunConfig) error {
	e := NewEngine(shape, cfg)
	cfg = e.config

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowDecorated(cfg.Decorated)
	ebiten.SetWindowFloating(cfg.Floating)
	ebiten.SetTPS(cfg.TPS)

	e.log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("tps", cfg.TPS).
		Bool("floating", cfg.Floating).
		Msg("starting")

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	e.log.Info().Int("regenerations", shape.Regenerations()).Msg("stopped")
	return nil
}
