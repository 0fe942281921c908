package flatten_test

import (
	"math"
	"testing"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/flatten"
	"github.com/vellum-cad/vellum/pkg/geom"
)

func pointsClose(a, b geom.Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestRingRect(t *testing.T) {
	e := entity.Entity{Data: entity.RectData{
		Position: geom.Point{X: 0, Y: 0}, Width: 10, Height: 5,
	}}
	ring, ok := flatten.Ring(e)
	if !ok {
		t.Fatal("rect should flatten to a ring")
	}
	want := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}}
	if len(ring) != 4 {
		t.Fatalf("ring has %d points, want 4", len(ring))
	}
	for i := range want {
		if !pointsClose(ring[i], want[i], 1e-9) {
			t.Errorf("corner %d = %v, want %v", i, ring[i], want[i])
		}
	}
}

func TestRingRotatedRect(t *testing.T) {
	e := entity.Entity{Data: entity.RectData{
		Position: geom.Point{X: 1, Y: 1}, Width: 4, Height: 2, Rotation: 90,
	}}
	ring, _ := flatten.Ring(e)
	// Corner 1 starts at (5,1); rotating 90° about (1,1) puts it at (1,5).
	if !pointsClose(ring[1], geom.Point{X: 1, Y: 5}, 1e-9) {
		t.Errorf("rotated corner = %v, want (1,5)", ring[1])
	}
}

func TestRingPolygon(t *testing.T) {
	e := entity.Entity{Data: entity.PolygonData{
		Center: geom.Point{X: 0, Y: 0}, Radius: 2, Sides: 4,
	}}
	ring, ok := flatten.Ring(e)
	if !ok || len(ring) != 4 {
		t.Fatalf("square polygon ring = %d points, ok=%v", len(ring), ok)
	}
	if !pointsClose(ring[0], geom.Point{X: 2, Y: 0}, 1e-9) {
		t.Errorf("first vertex = %v, want (2,0)", ring[0])
	}
	if !pointsClose(ring[1], geom.Point{X: 0, Y: 2}, 1e-9) {
		t.Errorf("second vertex = %v, want (0,2)", ring[1])
	}
}

func TestRingCircleOnBoundary(t *testing.T) {
	e := entity.Entity{Data: entity.CircleData{Center: geom.Point{X: 3, Y: 3}, Radius: 5}}
	ring, ok := flatten.Ring(e)
	if !ok {
		t.Fatal("circle should flatten to a ring")
	}
	if len(ring) != flatten.DefaultSegments {
		t.Fatalf("ring has %d points, want %d", len(ring), flatten.DefaultSegments)
	}
	for i, p := range ring {
		if d := p.Distance(geom.Point{X: 3, Y: 3}); math.Abs(d-5) > 1e-9 {
			t.Errorf("sample %d at distance %v from center, want 5", i, d)
		}
	}
}

func TestRingOpenShapes(t *testing.T) {
	tests := []struct {
		name string
		data entity.Data
	}{
		{"line", entity.LineData{End: geom.Point{X: 1, Y: 0}}},
		{"open polyline", entity.PolylineData{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}},
		{"arc", entity.ArcData{Radius: 1, EndAngle: math.Pi}},
		{"text", entity.TextData{Text: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := flatten.Ring(entity.Entity{Data: tt.data}); ok {
				t.Error("open shape should not produce a ring")
			}
		})
	}
}

func TestRingClosedPolylineIsCopy(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}
	e := entity.Entity{Data: entity.PolylineData{Points: pts, Closed: true}}
	ring, ok := flatten.Ring(e)
	if !ok {
		t.Fatal("closed polyline should flatten")
	}
	ring[0].X = 99
	if pts[0].X != 0 {
		t.Error("Ring shares backing storage with the entity")
	}
}

func TestArcPoints(t *testing.T) {
	d := entity.ArcData{
		Center: geom.Point{X: 0, Y: 0}, Radius: 1,
		StartAngle: 0, EndAngle: math.Pi / 2,
	}
	pts := flatten.ArcPoints(d, 8)
	if len(pts) != 9 {
		t.Fatalf("got %d points, want 9", len(pts))
	}
	if !pointsClose(pts[0], geom.Point{X: 1, Y: 0}, 1e-9) {
		t.Errorf("start = %v, want (1,0)", pts[0])
	}
	if !pointsClose(pts[8], geom.Point{X: 0, Y: 1}, 1e-9) {
		t.Errorf("end = %v, want (0,1)", pts[8])
	}
}

func TestArcPointsClockwise(t *testing.T) {
	d := entity.ArcData{
		Center: geom.Point{X: 0, Y: 0}, Radius: 1,
		StartAngle: 0, EndAngle: math.Pi / 2, Clockwise: true,
	}
	pts := flatten.ArcPoints(d, 4)
	// The clockwise sweep covers the other 3/4 of the circle; the
	// midpoint sits opposite the counterclockwise arc.
	if !pointsClose(pts[len(pts)-1], geom.Point{X: 0, Y: 1}, 1e-9) {
		t.Errorf("end = %v, want (0,1)", pts[len(pts)-1])
	}
	if pts[1].Y > 0 {
		t.Errorf("clockwise sweep went counterclockwise: %v", pts[1])
	}
}
