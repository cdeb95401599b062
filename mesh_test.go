package polymorph

import "testing"

func TestPolygonMeshFanIndices(t *testing.T) {
	m := newPolygonMesh()
	if len(m.inds) != 18 {
		t.Fatalf("indices = %d, want 18", len(m.inds))
	}
	for tri := 0; tri < VertexCount-2; tri++ {
		got := [3]uint16{m.inds[tri*3], m.inds[tri*3+1], m.inds[tri*3+2]}
		want := [3]uint16{0, uint16(tri + 1), uint16(tri + 2)}
		if got != want {
			t.Errorf("triangle %d = %v, want %v", tri, got, want)
		}
	}
}

func TestPolygonMeshUpdate(t *testing.T) {
	p := squarePolygon()
	p.Recenter()
	p.Position = Vec2{X: 100, Y: 50}

	m := newPolygonMesh()
	m.update(&p, Color{R: 1, G: 0.5, B: 0, A: 0.5})

	// Origin (20, -20): vertex (0,0) lands at (80, 70).
	if m.verts[0].DstX != 80 || m.verts[0].DstY != 70 {
		t.Errorf("vertex 0 at (%v, %v), want (80, 70)", m.verts[0].DstX, m.verts[0].DstY)
	}
	if m.verts[4].DstX != 120 || m.verts[4].DstY != 110 {
		t.Errorf("vertex 4 at (%v, %v), want (120, 110)", m.verts[4].DstX, m.verts[4].DstY)
	}
	for i, v := range m.verts {
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Errorf("vertex %d src = (%v, %v), want white pixel center", i, v.SrcX, v.SrcY)
		}
		if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
			t.Errorf("vertex %d color = (%v, %v, %v, %v), want premultiplied (0.5, 0.25, 0, 0.5)",
				i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestEnsureWhitePixelSingleton(t *testing.T) {
	a := ensureWhitePixel()
	b := ensureWhitePixel()
	if a != b {
		t.Error("ensureWhitePixel should return the same image")
	}
	if w, h := a.Bounds().Dx(), a.Bounds().Dy(); w != 1 || h != 1 {
		t.Errorf("white pixel size = %dx%d, want 1x1", w, h)
	}
}
