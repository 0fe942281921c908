package geom

import "math"

// Epsilon is the fixed tolerance used by all equality, parallelism and
// duplicate-point checks in the kernel. It is a deliberate constant, not
// derived from coordinate magnitude; callers working at extreme scales
// must rescale before invoking these operations.
const Epsilon = 1e-4

// Point is an immutable 2D coordinate. All methods return new values.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dot returns the dot product p · q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Unit returns p normalized to length 1. The zero vector is returned
// unchanged.
func (p Point) Unit() Point {
	l := p.Length()
	if l < Epsilon {
		return p
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Eq reports whether p and q coincide within Epsilon on both axes.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// RotateAround returns p rotated by angle radians around center using the
// standard rotation matrix [cosθ -sinθ; sinθ cosθ].
func (p Point) RotateAround(center Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// DistToSegment returns the distance from p to the segment a-b.
func (p Point) DistToSegment(a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Scale(t)))
}

// ScaleAround returns p scaled relative to center by (sx, sy):
// p' = center + (p - center) * (sx, sy).
func (p Point) ScaleAround(center Point, sx, sy float64) Point {
	return Point{
		X: center.X + (p.X-center.X)*sx,
		Y: center.Y + (p.Y-center.Y)*sy,
	}
}
