// Package polymorph draws a single polygon that endlessly morphs between
// random convex shapes, using [Ebitengine] for the window and loop.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a borderless window
// and game loop for a [MorphingShape]:
//
//	rng := rand.New(rand.NewPCG(seed1, seed2))
//	gen := polymorph.NewGenerator(rng, polymorph.Vec2{X: 200, Y: 200})
//	shape := polymorph.NewMorphingShape(gen, polymorph.MorphConfig{})
//	polymorph.Run(shape, polymorph.RunConfig{Title: "Polymorph"})
//
// For full control, drive the shape from your own [ebiten.Game]:
//
//	func (g *Game) Update() error        { g.shape.Update(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.shape.Draw(s) }
//
// # Geometry
//
// [Generator] builds convex polygons by splitting random coordinates into
// two monotone chains per axis, randomly pairing the resulting x and y
// components into edge vectors, sorting those by angle and laying them end to
// end. The randomness is an explicit [Source], so a seeded or scripted source
// yields reproducible shapes.
//
// [MorphingShape] interpolates vertex i of the previous polygon toward vertex
// i of the target with [Lerp], re-centering the result every tick. Easing and
// fill color tweens come from [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package polymorph
