package polymorph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// polygonIndexCount is the index count of a fan-triangulated polygon:
// VertexCount-2 triangles.
const polygonIndexCount = (VertexCount - 2) * 3

// polygonMesh holds the vertex and index buffers used to draw a Polygon.
// Buffers are fixed-size and reused every frame.
type polygonMesh struct {
	verts [VertexCount]ebiten.Vertex
	inds  [polygonIndexCount]uint16
}

// newPolygonMesh returns a mesh with the fan index layout filled in. Vertex 0
// is the hub, which suits convex polygons.
func newPolygonMesh() *polygonMesh {
	m := &polygonMesh{}
	for i := 0; i < VertexCount-2; i++ {
		m.inds[i*3+0] = 0
		m.inds[i*3+1] = uint16(i + 1)
		m.inds[i*3+2] = uint16(i + 2)
	}
	return m
}

// update writes the polygon's screen-space vertices and the premultiplied
// fill color into the vertex buffer. Source coordinates map to the center
// of the white pixel.
func (m *polygonMesh) update(p *Polygon, fill Color) {
	pts := p.ScreenPoints()
	cr := float32(fill.R)
	cg := float32(fill.G)
	cb := float32(fill.B)
	ca := float32(fill.A)
	for i, pt := range pts {
		m.verts[i] = ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr * ca,
			ColorG: cg * ca,
			ColorB: cb * ca,
			ColorA: ca,
		}
	}
}

// draw submits the mesh to dst. dst is only used for the duration of the call.
func (m *polygonMesh) draw(dst *ebiten.Image) {
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(m.verts[:], m.inds[:], ensureWhitePixel(), op)
}

// --- White pixel singleton (no sync.Once; drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
