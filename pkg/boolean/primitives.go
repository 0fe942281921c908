// Package boolean computes approximate polygon union, intersection and
// difference over rings of points. It depends only on the point
// primitive and shares its segment-intersection math with the
// modification operations.
//
// The reconstruction step sorts the pooled boundary points by angle
// around their centroid. This is a documented heuristic: it produces the
// expected outer boundary for convex and mildly overlapping inputs but
// is not a correct clipper for concave or self-intersecting polygons.
package boolean

import (
	"math"
	"sort"

	"github.com/vellum-cad/vellum/pkg/geom"
)

// SegmentIntersection returns the intersection of segments p1-p2 and
// p3-p4 using the parametric line solution. It reports false when the
// lines are parallel (|denominator| < geom.Epsilon) or when the
// intersection falls outside either segment.
func SegmentIntersection(p1, p2, p3, p4 geom.Point) (geom.Point, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if math.Abs(denom) < geom.Epsilon {
		return geom.Point{}, false
	}
	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return geom.Point{}, false
	}
	return geom.Point{
		X: p1.X + ua*(p2.X-p1.X),
		Y: p1.Y + ua*(p2.Y-p1.Y),
	}, true
}

// PointInRing reports whether p lies inside the implicitly closed ring
// using ray casting with the odd-crossing rule. Points exactly on the
// boundary are not reliably classified; use OnRingBoundary for that.
func PointInRing(p geom.Point, ring []geom.Point) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// OnRingBoundary reports whether p lies within geom.Epsilon of any edge
// of the ring.
func OnRingBoundary(p geom.Point, ring []geom.Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if p.DistToSegment(a, b) < geom.Epsilon {
			return true
		}
	}
	return false
}

// Intersections collects every intersection point between the edges of
// two rings, checking all edge pairs. Points whose coordinates match to
// four decimal places are deduplicated.
func Intersections(a, b []geom.Point) []geom.Point {
	var out []geom.Point
	seen := make(map[pointKey]bool)
	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		a1 := a[i]
		a2 := a[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1 := b[j]
			b2 := b[(j+1)%nb]
			p, ok := SegmentIntersection(a1, a2, b1, b2)
			if !ok {
				continue
			}
			k := keyOf(p)
			if !seen[k] {
				seen[k] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// pointKey identifies a point by its coordinates rounded to 4 decimals.
type pointKey struct {
	x, y float64
}

func keyOf(p geom.Point) pointKey {
	return pointKey{
		x: math.Round(p.X*1e4) / 1e4,
		y: math.Round(p.Y*1e4) / 1e4,
	}
}

// dedupe removes points that coincide to 4 decimal places, keeping the
// first occurrence.
func dedupe(pts []geom.Point) []geom.Point {
	seen := make(map[pointKey]bool, len(pts))
	out := pts[:0:0]
	for _, p := range pts {
		k := keyOf(p)
		if !seen[k] {
			seen[k] = true
			out = append(out, p)
		}
	}
	return out
}

// centroid returns the arithmetic mean of the points.
func centroid(pts []geom.Point) geom.Point {
	var c geom.Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return geom.Point{X: c.X / n, Y: c.Y / n}
}

// sortByCentroidAngle orders points counterclockwise by their angle
// around the point-set centroid.
func sortByCentroidAngle(pts []geom.Point) {
	c := centroid(pts)
	sort.Slice(pts, func(i, j int) bool {
		ai := math.Atan2(pts[i].Y-c.Y, pts[i].X-c.X)
		aj := math.Atan2(pts[j].Y-c.Y, pts[j].X-c.X)
		return ai < aj
	})
}
