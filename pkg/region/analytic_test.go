package region_test

import (
	"math"
	"testing"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/region"
)

func TestCircleDistance(t *testing.T) {
	b := region.NewAnalytic()
	r := b.Circle(geom.Point{X: 0, Y: 0}, 5)

	tests := []struct {
		name string
		p    geom.Point
		want float64
	}{
		{"center", geom.Point{X: 0, Y: 0}, -5},
		{"on boundary", geom.Point{X: 5, Y: 0}, 0},
		{"outside", geom.Point{X: 8, Y: 0}, 3},
		{"inside", geom.Point{X: 3, Y: 0}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Distance(tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxDistance(t *testing.T) {
	b := region.NewAnalytic()
	r := b.Box(geom.Point{X: 0, Y: 0}, 10, 6, 0)

	if got := r.Distance(geom.Point{X: 5, Y: 3}); math.Abs(got+3) > 1e-9 {
		t.Errorf("center distance = %v, want -3", got)
	}
	if got := r.Distance(geom.Point{X: 15, Y: 3}); math.Abs(got-5) > 1e-9 {
		t.Errorf("outside distance = %v, want 5", got)
	}
	if !r.Contains(geom.Point{X: 1, Y: 1}) {
		t.Error("corner-adjacent interior point should be contained")
	}
	if r.Contains(geom.Point{X: -1, Y: -1}) {
		t.Error("outside point should not be contained")
	}
}

func TestRotatedBox(t *testing.T) {
	b := region.NewAnalytic()
	// A 10x2 box rotated 90° about its corner occupies x∈[-2,0], y∈[0,10].
	r := b.Box(geom.Point{X: 0, Y: 0}, 10, 2, 90)

	if !r.Contains(geom.Point{X: -1, Y: 5}) {
		t.Error("point inside rotated box should be contained")
	}
	if r.Contains(geom.Point{X: 5, Y: 1}) {
		t.Error("point inside the unrotated footprint should now be outside")
	}
}

func TestPolygonDistanceSign(t *testing.T) {
	b := region.NewAnalytic()
	r := b.Polygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})

	if got := r.Distance(geom.Point{X: 5, Y: 5}); got >= 0 {
		t.Errorf("interior distance = %v, want negative", got)
	}
	if got := r.Distance(geom.Point{X: 5, Y: 12}); math.Abs(got-2) > 1e-9 {
		t.Errorf("exterior distance = %v, want 2", got)
	}
}

func TestSegmentNeverNegative(t *testing.T) {
	b := region.NewAnalytic()
	r := b.Segment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})

	if got := r.Distance(geom.Point{X: 5, Y: 0}); got < 0 {
		t.Errorf("on-segment distance = %v, want non-negative", got)
	}
	if got := r.Distance(geom.Point{X: 5, Y: 4}); math.Abs(got-4) > 1e-9 {
		t.Errorf("offset distance = %v, want 4", got)
	}
}

func TestCombinators(t *testing.T) {
	b := region.NewAnalytic()
	left := b.Circle(geom.Point{X: 0, Y: 0}, 5)
	right := b.Circle(geom.Point{X: 6, Y: 0}, 5)

	u := b.Union(left, right)
	if !u.Contains(geom.Point{X: -4, Y: 0}) || !u.Contains(geom.Point{X: 10, Y: 0}) {
		t.Error("union should contain both lobes")
	}

	i := b.Intersect(left, right)
	if !i.Contains(geom.Point{X: 3, Y: 0}) {
		t.Error("intersection should contain the overlap")
	}
	if i.Contains(geom.Point{X: -4, Y: 0}) {
		t.Error("intersection should exclude the left-only lobe")
	}

	d := b.Difference(left, right)
	if !d.Contains(geom.Point{X: -4, Y: 0}) {
		t.Error("difference should keep the left-only lobe")
	}
	if d.Contains(geom.Point{X: 3, Y: 0}) {
		t.Error("difference should remove the overlap")
	}
}

func TestBoundingBoxes(t *testing.T) {
	b := region.NewAnalytic()
	r := b.Union(
		b.Circle(geom.Point{X: 0, Y: 0}, 2),
		b.Box(geom.Point{X: 10, Y: 10}, 4, 4, 0),
	)
	min, max := r.BoundingBox()
	if min.X != -2 || min.Y != -2 {
		t.Errorf("min = %v, want (-2,-2)", min)
	}
	if max.X != 14 || max.Y != 14 {
		t.Errorf("max = %v, want (14,14)", max)
	}
}

func TestFromEntity(t *testing.T) {
	b := region.NewAnalytic()

	tests := []struct {
		name   string
		e      entity.Entity
		hit    geom.Point
		miss   geom.Point
		wantOK bool
	}{
		{
			name:   "line",
			e:      entity.Entity{Data: entity.LineData{End: geom.Point{X: 10, Y: 0}}},
			hit:    geom.Point{X: 5, Y: 0},
			miss:   geom.Point{X: 5, Y: 8},
			wantOK: true,
		},
		{
			name:   "circle",
			e:      entity.Entity{Data: entity.CircleData{Center: geom.Point{X: 0, Y: 0}, Radius: 3}},
			hit:    geom.Point{X: 1, Y: 0},
			miss:   geom.Point{X: 9, Y: 0},
			wantOK: true,
		},
		{
			name: "closed polyline",
			e: entity.Entity{Data: entity.PolylineData{
				Points: []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
				Closed: true,
			}},
			hit:    geom.Point{X: 2, Y: 2},
			miss:   geom.Point{X: 9, Y: 9},
			wantOK: true,
		},
		{
			name:   "regular polygon",
			e:      entity.Entity{Data: entity.PolygonData{Radius: 5, Sides: 6}},
			hit:    geom.Point{X: 0, Y: 0},
			miss:   geom.Point{X: 9, Y: 0},
			wantOK: true,
		},
		{
			name:   "symbol has no footprint",
			e:      entity.Entity{Data: entity.SymbolData{Name: "valve"}},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := region.FromEntity(b, tt.e)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !r.Contains(tt.hit) {
				t.Errorf("expected %v to be contained", tt.hit)
			}
			if r.Contains(tt.miss) {
				t.Errorf("expected %v to be outside", tt.miss)
			}
		})
	}
}

func TestFromEntityOpenPolylineChain(t *testing.T) {
	b := region.NewAnalytic()
	e := entity.Entity{Data: entity.PolylineData{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
	}}
	r, ok := region.FromEntity(b, e)
	if !ok {
		t.Fatal("open polyline should map to a segment chain")
	}
	if !r.Contains(geom.Point{X: 10, Y: 5}) {
		t.Error("point on the second segment should be contained")
	}
	if r.Contains(geom.Point{X: 5, Y: 5}) {
		t.Error("point off the chain should be outside")
	}
}
