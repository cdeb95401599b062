package polymorph

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// DefaultMorphDuration is the time in seconds spent morphing toward each
// target when MorphConfig.Duration is zero.
const DefaultMorphDuration = 1.0

// MorphConfig configures a MorphingShape.
type MorphConfig struct {
	// Duration of one morph in seconds (default DefaultMorphDuration).
	Duration float64

	// Easing maps linear morph progress to interpolation progress. Nil is
	// linear. Easings that overshoot [0, 1] move vertices off the segment
	// between previous and target.
	Easing ease.TweenFunc

	// Palette is cycled on every retarget; the fill color tweens toward the
	// next entry over one Duration. Empty means a constant white fill.
	Palette []Color
}

// MorphingShape owns three polygons: previous, current (drawn) and target.
// Update interpolates current from previous toward target and, each time the
// timer rolls over, promotes target to previous and generates a new target.
type MorphingShape struct {
	gen    *Generator
	config MorphConfig

	previous Polygon
	current  Polygon
	target   Polygon

	elapsed  float64
	duration float64
	regens   int

	fill       Color
	paletteIdx int
	fillTween  *colorTween

	mesh *polygonMesh
}

// NewMorphingShape generates the initial previous and target polygons from
// gen. current starts as a copy of previous.
func NewMorphingShape(gen *Generator, cfg MorphConfig) *MorphingShape {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultMorphDuration
	}
	m := &MorphingShape{
		gen:      gen,
		config:   cfg,
		duration: cfg.Duration,
		fill:     ColorWhite,
		mesh:     newPolygonMesh(),
	}
	if len(cfg.Palette) > 0 {
		m.fill = cfg.Palette[0]
	}
	m.previous = gen.Generate()
	m.current = m.previous
	m.target = gen.Generate()
	return m
}

// Update advances the morph timer by dt seconds. When the timer reaches the
// duration it wraps, keeping the overflow, and the shape retargets. The
// current polygon is then re-interpolated and re-centered.
func (m *MorphingShape) Update(dt float64) {
	m.elapsed += dt
	fillStep := dt
	if m.elapsed >= m.duration {
		m.elapsed = math.Mod(m.elapsed, m.duration)
		// Finish the running fill tween before the next one starts.
		m.advanceFill(dt - m.elapsed)
		m.retarget()
		fillStep = m.elapsed
	}

	t := easeProgress(m.config.Easing, m.elapsed/m.duration)
	for i := range m.current.Points {
		m.current.Points[i] = Lerp(m.previous.Points[i], m.target.Points[i], t)
	}
	m.current.Position = m.target.Position
	// Interpolated vertices move the bounding box every tick.
	m.current.Recenter()

	m.advanceFill(fillStep)
}

func (m *MorphingShape) advanceFill(dt float64) {
	if m.fillTween != nil {
		m.fill = m.fillTween.Update(float32(dt))
	}
}

func (m *MorphingShape) retarget() {
	m.previous = m.target
	m.target = m.gen.Generate()
	m.regens++

	if n := len(m.config.Palette); n > 1 {
		m.paletteIdx = (m.paletteIdx + 1) % n
		m.fillTween = newColorTween(m.fill, m.config.Palette[m.paletteIdx],
			float32(m.duration), ease.Linear)
	}
}

// Draw renders the current polygon into dst. dst is borrowed for the
// duration of the call and must not be nil.
func (m *MorphingShape) Draw(dst *ebiten.Image) {
	m.mesh.update(&m.current, m.fill)
	m.mesh.draw(dst)
}

// Current returns the polygon that is drawn.
func (m *MorphingShape) Current() Polygon { return m.current }

// Previous returns the polygon the shape is morphing from.
func (m *MorphingShape) Previous() Polygon { return m.previous }

// Target returns the polygon the shape is morphing toward.
func (m *MorphingShape) Target() Polygon { return m.target }

// Elapsed returns the time in seconds since the last retarget.
func (m *MorphingShape) Elapsed() float64 { return m.elapsed }

// Duration returns the length of one morph in seconds.
func (m *MorphingShape) Duration() float64 { return m.duration }

// Regenerations returns how many times a new target has been generated
// since construction, not counting the initial pair.
func (m *MorphingShape) Regenerations() int { return m.regens }

// Color returns the current fill color.
func (m *MorphingShape) Color() Color { return m.fill }
