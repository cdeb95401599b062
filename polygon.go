package polymorph

import "math"

// VertexCount is the number of vertices in every generated polygon.
const VertexCount = 8

// Vertices is the fixed-length vertex list of a Polygon. Index i names the
// same logical vertex across the previous, current and target polygons of a
// MorphingShape, which is what makes vertex-by-vertex interpolation valid.
type Vertices [VertexCount]Vec2

// Polygon is a closed shape in local coordinates. Vertex i is drawn at
// Position + Points[i] - Origin.
type Polygon struct {
	Points   Vertices
	Origin   Vec2
	Position Vec2
}

// Point returns vertex i. Panics if i is out of range.
func (p *Polygon) Point(i int) Vec2 {
	return p.Points[i]
}

// SetPoint replaces vertex i. Panics if i is out of range.
func (p *Polygon) SetPoint(i int, v Vec2) {
	p.Points[i] = v
}

// Bounds returns the local-space bounding box of the vertices.
func (p *Polygon) Bounds() Rect {
	return pointsBounds(&p.Points)
}

// Edges returns the edge vectors Points[i+1]-Points[i], wrapping the last
// vertex back to the first.
func (p *Polygon) Edges() Vertices {
	var out Vertices
	for i := range p.Points {
		out[i] = p.Points[(i+1)%VertexCount].Sub(p.Points[i])
	}
	return out
}

// ScreenPoints returns the vertices translated to screen space.
func (p *Polygon) ScreenPoints() Vertices {
	var out Vertices
	off := p.Position.Sub(p.Origin)
	for i, v := range p.Points {
		out[i] = v.Add(off)
	}
	return out
}

// Recenter recomputes Origin from the current vertices.
func (p *Polygon) Recenter() {
	p.Origin = CenterOrigin(&p.Points)
}

// CenterOrigin returns the origin that anchors a vertex set on its position:
// X is the horizontal midpoint of the vertices, Y sits half the vertical
// extent above the top edge. It depends only on the vertices.
func CenterOrigin(pts *Vertices) Vec2 {
	b := pointsBounds(pts)
	return Vec2{X: b.X + b.Width/2, Y: -b.Height / 2}
}

func pointsBounds(pts *Vertices) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range pts {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
