// Polymorph opens a small borderless window showing one polygon that keeps
// morphing between random convex shapes. Drag the window with the left mouse
// button; press Escape to quit.
package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/phanxgames/polymorph"
)

const (
	windowTitle   = "Polymorph"
	showFPS       = false
	debug         = false
	screenW       = 400
	screenH       = 400
	ticksPerSec   = 240
	morphDuration = 1.0 // seconds
)

var palette = []polymorph.Color{
	{R: 0.95, G: 0.95, B: 0.95, A: 1}, // white
	{R: 0.40, G: 0.75, B: 0.95, A: 1}, // sky
	{R: 0.55, G: 0.90, B: 0.60, A: 1}, // mint
	{R: 0.95, G: 0.70, B: 0.35, A: 1}, // amber
	{R: 0.85, G: 0.45, B: 0.80, A: 1}, // orchid
}

func main() {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	logger.Debug().Uint64("seed", seed).Msg("seeded")

	gen := polymorph.NewGenerator(rng, polymorph.Vec2{X: screenW / 2, Y: screenH / 2})
	shape := polymorph.NewMorphingShape(gen, polymorph.MorphConfig{
		Duration: morphDuration,
		Palette:  palette,
	})

	if err := polymorph.Run(shape, polymorph.RunConfig{
		Title:    windowTitle,
		Width:    screenW,
		Height:   screenH,
		TPS:      ticksPerSec,
		Floating: polymorph.DefaultFloating(),
		ShowFPS:  showFPS,
		Debug:    debug,
		Logger:   logger,
	}); err != nil {
		logger.Fatal().Err(err).Msg("polymorph exited")
	}
}
