package polymorph

import (
	"math"
	"slices"
)

// MaxCoord is the inclusive upper bound of the integer coordinates drawn for
// each axis before they are turned into edge vectors.
const MaxCoord = 150

// Source is the randomness consumed by a Generator. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Generator builds random convex polygons by partitioning two sets of random
// coordinates into edge vectors, sorting those by angle and laying them end
// to end. See https://cglab.ca/~sander/misc/ConvexGeneration/convex.html.
type Generator struct {
	src    Source
	center Vec2

	xs, ys     [VertexCount]float64
	xVec, yVec [VertexCount]float64
	edges      Vertices
}

// NewGenerator returns a Generator drawing from src whose polygons are
// positioned at center. src must not be nil.
func NewGenerator(src Source, center Vec2) *Generator {
	if src == nil {
		panic("polymorph: NewGenerator with nil Source")
	}
	return &Generator{src: src, center: center}
}

// Center returns the position assigned to generated polygons.
func (g *Generator) Center() Vec2 {
	return g.center
}

// Generate returns a new convex polygon with VertexCount vertices. Vertex 0
// is always (0, 0).
func (g *Generator) Generate() Polygon {
	for i := 0; i < VertexCount; i++ {
		g.xs[i] = float64(g.src.IntN(MaxCoord + 1))
		g.ys[i] = float64(g.src.IntN(MaxCoord + 1))
	}
	slices.Sort(g.xs[:])
	slices.Sort(g.ys[:])

	g.splitChains(&g.xs, &g.xVec)
	g.splitChains(&g.ys, &g.yVec)

	// Pairing one shuffled list against the other is already a uniformly
	// random pairing.
	g.src.Shuffle(VertexCount, func(i, j int) {
		g.yVec[i], g.yVec[j] = g.yVec[j], g.yVec[i]
	})

	for i := range g.edges {
		g.edges[i] = Vec2{g.xVec[i], g.yVec[i]}
	}
	slices.SortStableFunc(g.edges[:], compareAngle)

	var poly Polygon
	var cur Vec2
	for i, e := range g.edges {
		poly.Points[i] = cur
		cur = cur.Add(e)
	}
	poly.Recenter()
	poly.Position = g.center
	return poly
}

// splitChains turns sorted values into signed components that walk from
// the minimum to the maximum along two chains and back again, so they sum
// to zero.
func (g *Generator) splitChains(sorted, out *[VertexCount]float64) {
	lo, hi := sorted[0], sorted[VertexCount-1]
	lastTop, lastBot := lo, lo
	k := 0
	for _, v := range sorted[1 : VertexCount-1] {
		if g.src.IntN(2) == 1 {
			out[k] = v - lastTop
			lastTop = v
		} else {
			out[k] = lastBot - v
			lastBot = v
		}
		k++
	}
	out[k] = hi - lastTop
	out[k+1] = lastBot - hi
}

func compareAngle(a, b Vec2) int {
	aa := math.Atan2(a.Y, a.X)
	ab := math.Atan2(b.Y, b.X)
	switch {
	case aa < ab:
		return -1
	case aa > ab:
		return 1
	}
	return 0
}
