package modify

import (
	"math"
	"testing"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
)

func lineData(x1, y1, x2, y2 float64) entity.LineData {
	return entity.LineData{
		Start: geom.Point{X: x1, Y: y1},
		End:   geom.Point{X: x2, Y: y2},
	}
}

func pointsClose(a, b geom.Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestComputeFilletPerpendicular(t *testing.T) {
	l1 := lineData(0, 0, 10, 0)
	l2 := lineData(0, 0, 0, 10)

	res, ok := ComputeFillet(l1, l2, 1, true)
	if !ok {
		t.Fatal("expected fillet for perpendicular lines")
	}
	if !pointsClose(res.Arc.Center, geom.Point{X: 1, Y: 1}, 1e-9) {
		t.Errorf("arc center = %v, want (1,1)", res.Arc.Center)
	}
	if math.Abs(res.Arc.Radius-1) > 1e-12 {
		t.Errorf("arc radius = %v, want 1", res.Arc.Radius)
	}

	// Each line is shortened by exactly the tangent distance.
	if !pointsClose(res.Line1.Start, geom.Point{X: 1, Y: 0}, 1e-9) {
		t.Errorf("line1 start = %v, want (1,0)", res.Line1.Start)
	}
	if !pointsClose(res.Line2.Start, geom.Point{X: 0, Y: 1}, 1e-9) {
		t.Errorf("line2 start = %v, want (0,1)", res.Line2.Start)
	}
	if res.Line1.End != l1.End || res.Line2.End != l2.End {
		t.Error("far endpoints must be untouched")
	}

	// The arc is tangent to both lines: the tangent points sit at
	// radius distance from the center.
	for _, p := range []geom.Point{res.Line1.Start, res.Line2.Start} {
		if d := p.Distance(res.Arc.Center); math.Abs(d-1) > 1e-9 {
			t.Errorf("tangent point %v at distance %v from center, want 1", p, d)
		}
	}
}

func TestComputeFilletUnitLines(t *testing.T) {
	// Unit lines with radius 1 are consumed entirely by the trim.
	res, ok := ComputeFillet(lineData(0, 0, 1, 0), lineData(0, 0, 0, 1), 1, true)
	if !ok {
		t.Fatal("expected fillet")
	}
	if !pointsClose(res.Line1.Start, geom.Point{X: 1, Y: 0}, 1e-9) {
		t.Errorf("line1 shortened to %v-%v, want zero length at (1,0)", res.Line1.Start, res.Line1.End)
	}
}

func TestComputeFilletNoTrim(t *testing.T) {
	l1 := lineData(0, 0, 10, 0)
	l2 := lineData(0, 0, 0, 10)
	res, ok := ComputeFillet(l1, l2, 2, false)
	if !ok {
		t.Fatal("expected fillet")
	}
	if res.Line1 != l1 || res.Line2 != l2 {
		t.Error("lines must be unchanged when trim is off")
	}
}

func TestComputeFilletParallel(t *testing.T) {
	if _, ok := ComputeFillet(lineData(0, 0, 10, 0), lineData(0, 5, 10, 5), 1, true); ok {
		t.Error("parallel lines must not fillet")
	}
}

func TestComputeFilletBadRadius(t *testing.T) {
	if _, ok := ComputeFillet(lineData(0, 0, 10, 0), lineData(0, 0, 0, 10), 0, true); ok {
		t.Error("zero radius must fail")
	}
	if _, ok := ComputeFillet(lineData(0, 0, 10, 0), lineData(0, 0, 0, 10), -2, true); ok {
		t.Error("negative radius must fail")
	}
}

func TestComputeFilletOffsetCorner(t *testing.T) {
	// Corner away from the origin, lines ending at the corner.
	l1 := lineData(20, 10, 30, 10)
	l2 := lineData(30, 10, 30, 25)

	res, ok := ComputeFillet(l1, l2, 2, true)
	if !ok {
		t.Fatal("expected fillet")
	}
	if !pointsClose(res.Arc.Center, geom.Point{X: 28, Y: 12}, 1e-9) {
		t.Errorf("arc center = %v, want (28,12)", res.Arc.Center)
	}
	if !pointsClose(res.Line1.End, geom.Point{X: 28, Y: 10}, 1e-9) {
		t.Errorf("line1 end = %v, want (28,10)", res.Line1.End)
	}
	if !pointsClose(res.Line2.Start, geom.Point{X: 30, Y: 12}, 1e-9) {
		t.Errorf("line2 start = %v, want (30,12)", res.Line2.Start)
	}
}

func TestComputeChamfer(t *testing.T) {
	l1 := lineData(0, 0, 10, 0)
	l2 := lineData(0, 0, 0, 10)

	res, ok := ComputeChamfer(l1, l2, 2, 3, true)
	if !ok {
		t.Fatal("expected chamfer")
	}
	if !pointsClose(res.Chamfer.Start, geom.Point{X: 2, Y: 0}, 1e-9) {
		t.Errorf("chamfer start = %v, want (2,0)", res.Chamfer.Start)
	}
	if !pointsClose(res.Chamfer.End, geom.Point{X: 0, Y: 3}, 1e-9) {
		t.Errorf("chamfer end = %v, want (0,3)", res.Chamfer.End)
	}
	if !pointsClose(res.Line1.Start, geom.Point{X: 2, Y: 0}, 1e-9) {
		t.Errorf("line1 start = %v, want (2,0)", res.Line1.Start)
	}
	if !pointsClose(res.Line2.Start, geom.Point{X: 0, Y: 3}, 1e-9) {
		t.Errorf("line2 start = %v, want (0,3)", res.Line2.Start)
	}
}

func TestComputeChamferParallel(t *testing.T) {
	if _, ok := ComputeChamfer(lineData(0, 0, 10, 0), lineData(0, 1, 10, 1), 1, 1, true); ok {
		t.Error("parallel lines must not chamfer")
	}
}

func TestComputeChamferBadDistances(t *testing.T) {
	if _, ok := ComputeChamfer(lineData(0, 0, 10, 0), lineData(0, 0, 0, 10), 0, 1, true); ok {
		t.Error("zero distance must fail")
	}
}
