package polymorph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// colorTween animates all four components of a Color toward a target over a
// fixed duration. Update it once per tick; Done reports completion.
type colorTween struct {
	tweens [4]*gween.Tween
	value  Color
	Done   bool
}

func newColorTween(from, to Color, duration float32, fn ease.TweenFunc) *colorTween {
	return &colorTween{
		tweens: [4]*gween.Tween{
			gween.New(float32(from.R), float32(to.R), duration, fn),
			gween.New(float32(from.G), float32(to.G), duration, fn),
			gween.New(float32(from.B), float32(to.B), duration, fn),
			gween.New(float32(from.A), float32(to.A), duration, fn),
		},
		value: from,
	}
}

// Update advances the tween by dt seconds and returns the current color.
func (c *colorTween) Update(dt float32) Color {
	if c.Done {
		return c.value
	}
	var out [4]float64
	allDone := true
	for i, tw := range c.tweens {
		val, finished := tw.Update(dt)
		out[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	c.value = Color{R: out[0], G: out[1], B: out[2], A: out[3]}
	c.Done = allDone
	return c.value
}

// easeProgress maps a linear progress value in [0, 1) through fn. A nil fn is
// linear.
func easeProgress(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}
