package boolean

import "github.com/vellum-cad/vellum/pkg/geom"

// Ring-level boolean operations. A nil result means the operation has no
// expressible outcome as a single simple ring (disjoint union, empty
// intersection, subject swallowed by clip).

// strictlyInside reports whether p is interior to ring and not on its
// boundary.
func strictlyInside(p geom.Point, ring []geom.Point) bool {
	return PointInRing(p, ring) && !OnRingBoundary(p, ring)
}

// UnionRings returns an approximate outer boundary of A ∪ B.
//
// With no boundary intersections the result is the containing ring when
// one ring contains the other, and nil when they are disjoint (a single
// simple ring cannot express that union). Otherwise all vertices and
// intersection points are pooled, points strictly interior to the other
// ring are discarded, and the survivors are emitted in centroid-angle
// order.
func UnionRings(a, b []geom.Point) []geom.Point {
	if len(a) < 3 || len(b) < 3 {
		return nil
	}
	isects := Intersections(a, b)
	if len(isects) == 0 {
		switch {
		case PointInRing(a[0], b):
			return clone(b)
		case PointInRing(b[0], a):
			return clone(a)
		default:
			return nil
		}
	}

	pool := make([]geom.Point, 0, len(a)+len(b)+len(isects))
	for _, p := range a {
		if !strictlyInside(p, b) {
			pool = append(pool, p)
		}
	}
	for _, p := range b {
		if !strictlyInside(p, a) {
			pool = append(pool, p)
		}
	}
	pool = append(pool, isects...)
	pool = dedupe(pool)
	if len(pool) < 3 {
		return nil
	}
	sortByCentroidAngle(pool)
	return pool
}

// IntersectRings returns an approximate boundary of A ∩ B, or nil when
// the rings are disjoint or the overlap degenerates below 3 points. With
// no boundary intersections the contained ring is returned whole.
func IntersectRings(a, b []geom.Point) []geom.Point {
	if len(a) < 3 || len(b) < 3 {
		return nil
	}
	isects := Intersections(a, b)
	if len(isects) == 0 {
		switch {
		case PointInRing(a[0], b):
			return clone(a)
		case PointInRing(b[0], a):
			return clone(b)
		default:
			return nil
		}
	}

	pool := append([]geom.Point{}, isects...)
	for _, p := range a {
		if PointInRing(p, b) {
			pool = append(pool, p)
		}
	}
	for _, p := range b {
		if PointInRing(p, a) {
			pool = append(pool, p)
		}
	}
	pool = dedupe(pool)
	if len(pool) < 3 {
		return nil
	}
	sortByCentroidAngle(pool)
	return pool
}

// DifferenceRings returns an approximate boundary of A − B.
//
// A clip ring with fewer than 3 points leaves A unchanged. With no
// boundary intersections: A inside B yields nil (empty result), B inside
// A yields A unchanged (punching a hole is unsupported), and disjoint
// rings yield A unchanged.
func DifferenceRings(a, b []geom.Point) []geom.Point {
	if len(a) < 3 {
		return nil
	}
	if len(b) < 3 {
		return clone(a)
	}
	isects := Intersections(a, b)
	if len(isects) == 0 {
		if PointInRing(a[0], b) {
			return nil
		}
		// B inside A, or disjoint: A is unchanged either way.
		return clone(a)
	}

	pool := append([]geom.Point{}, isects...)
	for _, p := range a {
		if !PointInRing(p, b) {
			pool = append(pool, p)
		}
	}
	pool = dedupe(pool)
	if len(pool) < 3 {
		return nil
	}
	sortByCentroidAngle(pool)
	return pool
}

func clone(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	return out
}
