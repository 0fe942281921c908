package modify

import (
	"testing"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
)

func lineEntity(x1, y1, x2, y2 float64) entity.Entity {
	return entity.Entity{Data: lineData(x1, y1, x2, y2)}
}

func TestComputeTrim(t *testing.T) {
	cutter := []entity.Entity{lineEntity(5, -5, 5, 5)}

	tests := []struct {
		name  string
		line  entity.LineData
		click geom.Point
		want  entity.LineData
	}{
		{
			name:  "keep left side",
			line:  lineData(0, 0, 10, 0),
			click: geom.Point{X: 2, Y: 0},
			want:  lineData(0, 0, 5, 0),
		},
		{
			name:  "keep right side",
			line:  lineData(0, 0, 10, 0),
			click: geom.Point{X: 8, Y: 0},
			want:  lineData(5, 0, 10, 0),
		},
		{
			name:  "reversed line keeps clicked side",
			line:  lineData(10, 0, 0, 0),
			click: geom.Point{X: 2, Y: 0},
			want:  lineData(5, 0, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeTrim(tt.line, cutter, tt.click)
			if !ok {
				t.Fatal("expected a trim")
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeTrimNearestCrossing(t *testing.T) {
	// Two crossings at x=3 and x=7; the click at (6.5,0) picks x=7.
	boundaries := []entity.Entity{
		lineEntity(3, -5, 3, 5),
		lineEntity(7, -5, 7, 5),
	}
	got, ok := ComputeTrim(lineData(0, 0, 10, 0), boundaries, geom.Point{X: 6.5, Y: 0})
	if !ok {
		t.Fatal("expected a trim")
	}
	if got != lineData(0, 0, 7, 0) {
		t.Errorf("got %v, want (0,0)-(7,0)", got)
	}
}

func TestComputeTrimNoIntersection(t *testing.T) {
	boundaries := []entity.Entity{lineEntity(20, -5, 20, 5)}
	line := lineData(0, 0, 10, 0)
	got, ok := ComputeTrim(line, boundaries, geom.Point{X: 2, Y: 0})
	if ok {
		t.Error("expected no trim when the boundary misses the line")
	}
	if got != line {
		t.Errorf("line changed to %v on a miss", got)
	}
}

func TestComputeTrimSkipsNonLineBoundaries(t *testing.T) {
	boundaries := []entity.Entity{
		{Data: entity.CircleData{Center: geom.Point{X: 5, Y: 0}, Radius: 1}},
	}
	if _, ok := ComputeTrim(lineData(0, 0, 10, 0), boundaries, geom.Point{X: 2, Y: 0}); ok {
		t.Error("non-line boundaries must be ignored")
	}
}

func TestComputeExtend(t *testing.T) {
	wall := []entity.Entity{lineEntity(10, -5, 10, 5)}

	got, ok := ComputeExtend(lineData(0, 0, 5, 0), wall, geom.Point{X: 5, Y: 0})
	if !ok {
		t.Fatal("expected an extend")
	}
	if got != lineData(0, 0, 10, 0) {
		t.Errorf("got %v, want (0,0)-(10,0)", got)
	}
}

func TestComputeExtendStartEndpoint(t *testing.T) {
	wall := []entity.Entity{lineEntity(-4, -5, -4, 5)}

	got, ok := ComputeExtend(lineData(0, 0, 5, 0), wall, geom.Point{X: 0, Y: 0})
	if !ok {
		t.Fatal("expected an extend")
	}
	if got != lineData(-4, 0, 5, 0) {
		t.Errorf("got %v, want (-4,0)-(5,0)", got)
	}
}

func TestComputeExtendClosestAhead(t *testing.T) {
	walls := []entity.Entity{
		lineEntity(20, -5, 20, 5),
		lineEntity(8, -5, 8, 5),
	}
	got, ok := ComputeExtend(lineData(0, 0, 5, 0), walls, geom.Point{X: 5, Y: 0})
	if !ok {
		t.Fatal("expected an extend")
	}
	if got != lineData(0, 0, 8, 0) {
		t.Errorf("got %v, want the nearer wall at x=8, got %v", got, got)
	}
}

func TestComputeExtendIgnoresBoundaryBehind(t *testing.T) {
	// The wall sits between the endpoints, behind the free end.
	behind := []entity.Entity{lineEntity(2, -5, 2, 5)}
	line := lineData(0, 0, 5, 0)
	if _, ok := ComputeExtend(line, behind, geom.Point{X: 5, Y: 0}); ok {
		t.Error("crossings behind the free endpoint must be ignored")
	}
}

func TestComputeExtendNothingAhead(t *testing.T) {
	if _, ok := ComputeExtend(lineData(0, 0, 5, 0), nil, geom.Point{X: 5, Y: 0}); ok {
		t.Error("expected no extend with an empty boundary set")
	}
}

func TestComputeExtendZeroLength(t *testing.T) {
	wall := []entity.Entity{lineEntity(10, -5, 10, 5)}
	if _, ok := ComputeExtend(lineData(3, 3, 3, 3), wall, geom.Point{X: 3, Y: 3}); ok {
		t.Error("zero length line has no direction to extend along")
	}
}
