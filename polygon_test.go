package polymorph

import "testing"

// squarePolygon is a 40x40 square with vertex 0 at the origin, padded to
// VertexCount by repeating corners.
func squarePolygon() Polygon {
	return Polygon{Points: Vertices{
		{0, 0}, {20, 0}, {40, 0}, {40, 20},
		{40, 40}, {20, 40}, {0, 40}, {0, 20},
	}}
}

func TestPolygonBounds(t *testing.T) {
	p := squarePolygon()
	if got := p.Bounds(); got != (Rect{X: 0, Y: 0, Width: 40, Height: 40}) {
		t.Errorf("Bounds = %+v, want {0 0 40 40}", got)
	}
}

func TestPolygonEdgesClose(t *testing.T) {
	p := squarePolygon()
	var sum Vec2
	for _, e := range p.Edges() {
		sum = sum.Add(e)
	}
	if sum != (Vec2{}) {
		t.Errorf("edge sum = %v, want (0, 0)", sum)
	}
	edges := p.Edges()
	if edges[VertexCount-1] != (Vec2{X: 0, Y: -20}) {
		t.Errorf("wrap edge = %v, want (0, -20)", edges[VertexCount-1])
	}
}

func TestPolygonPointAccess(t *testing.T) {
	p := squarePolygon()
	p.SetPoint(3, Vec2{X: 45, Y: 20})
	if got := p.Point(3); got != (Vec2{X: 45, Y: 20}) {
		t.Errorf("Point(3) = %v, want (45, 20)", got)
	}
}

func TestPolygonPointOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range vertex index")
		}
	}()
	p := squarePolygon()
	i := VertexCount
	_ = p.Point(i)
}

func TestCenterOrigin(t *testing.T) {
	tests := []struct {
		name string
		pts  Vertices
		want Vec2
	}{
		{
			name: "square",
			pts:  squarePolygon().Points,
			want: Vec2{X: 20, Y: -20},
		},
		{
			name: "extends left and up",
			pts: Vertices{
				{0, 0}, {-70, -10}, {-60, -30}, {-50, -50},
				{-40, -70}, {-30, -60}, {-20, -40}, {-10, -20},
			},
			want: Vec2{X: -35, Y: -35},
		},
		{
			name: "straddles zero",
			pts: Vertices{
				{0, 0}, {-10, 5}, {-10, 10}, {0, 20},
				{30, 20}, {30, 10}, {20, 0}, {10, 0},
			},
			want: Vec2{X: 10, Y: -10},
		},
		{
			name: "degenerate point",
			pts:  Vertices{},
			want: Vec2{X: 0, Y: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenterOrigin(&tt.pts)
			if !vecApproxEqual(got, tt.want, 1e-9) {
				t.Errorf("CenterOrigin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenterOriginIdempotent(t *testing.T) {
	p := squarePolygon()
	p.Recenter()
	first := p.Origin
	p.Recenter()
	if p.Origin != first {
		t.Errorf("second Recenter = %v, first = %v", p.Origin, first)
	}
}

func TestPolygonScreenPoints(t *testing.T) {
	p := squarePolygon()
	p.Recenter()
	p.Position = Vec2{X: 200, Y: 200}
	pts := p.ScreenPoints()
	// Origin (20, -20): vertex (0,0) lands at (180, 220).
	if pts[0] != (Vec2{X: 180, Y: 220}) {
		t.Errorf("ScreenPoints[0] = %v, want (180, 220)", pts[0])
	}
	if pts[4] != (Vec2{X: 220, Y: 260}) {
		t.Errorf("ScreenPoints[4] = %v, want (220, 260)", pts[4])
	}
}
