package region

import (
	"math"

	"github.com/vellum-cad/vellum/pkg/geom"
)

// Analytic is a pure-Go Builder with closed-form distance functions.
// It has no external dependencies and serves as the default backend.
type Analytic struct{}

var _ Builder = Analytic{}

// NewAnalytic returns the closed-form backend.
func NewAnalytic() Analytic { return Analytic{} }

func (Analytic) Circle(center geom.Point, radius float64) Region {
	return circleRegion{center: center, radius: radius}
}

func (Analytic) Box(pos geom.Point, width, height, rotationDeg float64) Region {
	return boxRegion{pos: pos, w: width, h: height, rot: geom.DegToRad(rotationDeg)}
}

func (Analytic) Polygon(ring []geom.Point) Region {
	r := polygonRegion{ring: make([]geom.Point, len(ring))}
	copy(r.ring, ring)
	return r
}

func (Analytic) Segment(a, b geom.Point) Region {
	return segmentRegion{a: a, b: b}
}

func (Analytic) Union(a, b Region) Region      { return unionRegion{a: a, b: b} }
func (Analytic) Intersect(a, b Region) Region  { return intersectRegion{a: a, b: b} }
func (Analytic) Difference(a, b Region) Region { return differenceRegion{a: a, b: b} }

// ---------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------

type circleRegion struct {
	center geom.Point
	radius float64
}

func (r circleRegion) Distance(p geom.Point) float64 {
	return p.Distance(r.center) - r.radius
}

func (r circleRegion) Contains(p geom.Point) bool {
	return r.Distance(p) <= geom.Epsilon
}

func (r circleRegion) BoundingBox() (geom.Point, geom.Point) {
	d := geom.Point{X: r.radius, Y: r.radius}
	return r.center.Sub(d), r.center.Add(d)
}

type boxRegion struct {
	pos  geom.Point
	w, h float64
	rot  float64
}

func (r boxRegion) Distance(p geom.Point) float64 {
	// Undo the box rotation, then measure against an axis-aligned box
	// centered at the half-extent.
	local := p.RotateAround(r.pos, -r.rot).Sub(r.pos)
	hw, hh := r.w/2, r.h/2
	dx := math.Abs(local.X-hw) - hw
	dy := math.Abs(local.Y-hh) - hh
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside
}

func (r boxRegion) Contains(p geom.Point) bool {
	return r.Distance(p) <= geom.Epsilon
}

func (r boxRegion) BoundingBox() (geom.Point, geom.Point) {
	corners := []geom.Point{
		r.pos,
		{X: r.pos.X + r.w, Y: r.pos.Y},
		{X: r.pos.X + r.w, Y: r.pos.Y + r.h},
		{X: r.pos.X, Y: r.pos.Y + r.h},
	}
	for i := range corners {
		corners[i] = corners[i].RotateAround(r.pos, r.rot)
	}
	return boundsOf(corners)
}

type polygonRegion struct {
	ring []geom.Point
}

func (r polygonRegion) Distance(p geom.Point) float64 {
	if len(r.ring) < 3 {
		return math.Inf(1)
	}
	d := math.Inf(1)
	for i := range r.ring {
		a := r.ring[i]
		b := r.ring[(i+1)%len(r.ring)]
		d = math.Min(d, p.DistToSegment(a, b))
	}
	if pointInRing(p, r.ring) {
		return -d
	}
	return d
}

func (r polygonRegion) Contains(p geom.Point) bool {
	return r.Distance(p) <= geom.Epsilon
}

func (r polygonRegion) BoundingBox() (geom.Point, geom.Point) {
	return boundsOf(r.ring)
}

type segmentRegion struct {
	a, b geom.Point
}

func (r segmentRegion) Distance(p geom.Point) float64 {
	return p.DistToSegment(r.a, r.b)
}

func (r segmentRegion) Contains(p geom.Point) bool {
	return r.Distance(p) <= geom.Epsilon
}

func (r segmentRegion) BoundingBox() (geom.Point, geom.Point) {
	return boundsOf([]geom.Point{r.a, r.b})
}

// ---------------------------------------------------------------------
// Combinators
// ---------------------------------------------------------------------

type unionRegion struct{ a, b Region }

func (r unionRegion) Distance(p geom.Point) float64 {
	return math.Min(r.a.Distance(p), r.b.Distance(p))
}

func (r unionRegion) Contains(p geom.Point) bool {
	return r.a.Contains(p) || r.b.Contains(p)
}

func (r unionRegion) BoundingBox() (geom.Point, geom.Point) {
	return mergeBounds(r.a, r.b)
}

type intersectRegion struct{ a, b Region }

func (r intersectRegion) Distance(p geom.Point) float64 {
	return math.Max(r.a.Distance(p), r.b.Distance(p))
}

func (r intersectRegion) Contains(p geom.Point) bool {
	return r.a.Contains(p) && r.b.Contains(p)
}

func (r intersectRegion) BoundingBox() (geom.Point, geom.Point) {
	amin, amax := r.a.BoundingBox()
	bmin, bmax := r.b.BoundingBox()
	return geom.Point{X: math.Max(amin.X, bmin.X), Y: math.Max(amin.Y, bmin.Y)},
		geom.Point{X: math.Min(amax.X, bmax.X), Y: math.Min(amax.Y, bmax.Y)}
}

type differenceRegion struct{ a, b Region }

func (r differenceRegion) Distance(p geom.Point) float64 {
	return math.Max(r.a.Distance(p), -r.b.Distance(p))
}

func (r differenceRegion) Contains(p geom.Point) bool {
	return r.a.Contains(p) && !r.b.Contains(p)
}

func (r differenceRegion) BoundingBox() (geom.Point, geom.Point) {
	return r.a.BoundingBox()
}

// ---------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------

func pointInRing(p geom.Point, ring []geom.Point) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func boundsOf(pts []geom.Point) (geom.Point, geom.Point) {
	if len(pts) == 0 {
		return geom.Point{}, geom.Point{}
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

func mergeBounds(a, b Region) (geom.Point, geom.Point) {
	amin, amax := a.BoundingBox()
	bmin, bmax := b.BoundingBox()
	return geom.Point{X: math.Min(amin.X, bmin.X), Y: math.Min(amin.Y, bmin.Y)},
		geom.Point{X: math.Max(amax.X, bmax.X), Y: math.Max(amax.Y, bmax.Y)}
}
