// Package sdfx implements the region.Builder interface using the
// github.com/deadsy/sdfx signed-distance-field CAD library.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/region"
)

// Compile-time interface check.
var _ region.Builder = (*Builder)(nil)

// sdfxRegion wraps an sdf.SDF2 to implement region.Region.
type sdfxRegion struct {
	s sdf.SDF2
}

func (r *sdfxRegion) Distance(p geom.Point) float64 {
	return r.s.Evaluate(v2.Vec{X: p.X, Y: p.Y})
}

func (r *sdfxRegion) Contains(p geom.Point) bool {
	return r.Distance(p) <= geom.Epsilon
}

func (r *sdfxRegion) BoundingBox() (min, max geom.Point) {
	bb := r.s.BoundingBox()
	return geom.Point{X: bb.Min.X, Y: bb.Min.Y}, geom.Point{X: bb.Max.X, Y: bb.Max.Y}
}

// Builder implements region.Builder using sdfx 2D primitives.
type Builder struct{}

// New returns a new sdfx-backed Builder.
func New() *Builder {
	return &Builder{}
}

// unwrap extracts the underlying sdf.SDF2 from a region.Region.
func unwrap(r region.Region) sdf.SDF2 {
	return r.(*sdfxRegion).s
}

// wrap creates a region.Region from an sdf.SDF2.
func wrap(s sdf.SDF2) region.Region {
	return &sdfxRegion{s: s}
}

// Circle creates a disc of the given radius at center.
func (b *Builder) Circle(center geom.Point, radius float64) region.Region {
	s, err := sdf.Circle2D(radius)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Circle2D: %v", err))
	}
	m := sdf.Translate2d(v2.Vec{X: center.X, Y: center.Y})
	return wrap(sdf.Transform2D(s, m))
}

// Box creates a rectangle with its minimum corner at pos, rotated by
// rotationDeg around that corner. sdf.Box2D centers the box at the
// origin, so we shift to corner-origin before rotating and placing.
func (b *Builder) Box(pos geom.Point, width, height, rotationDeg float64) region.Region {
	s := sdf.Box2D(v2.Vec{X: width, Y: height}, 0)
	m := sdf.Translate2d(v2.Vec{X: pos.X, Y: pos.Y}).
		Mul(sdf.Rotate2d(geom.DegToRad(rotationDeg))).
		Mul(sdf.Translate2d(v2.Vec{X: width / 2, Y: height / 2}))
	return wrap(sdf.Transform2D(s, m))
}

// Polygon creates a filled region bounded by the given ring.
func (b *Builder) Polygon(ring []geom.Point) region.Region {
	verts := make([]v2.Vec, len(ring))
	for i, p := range ring {
		verts[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	s, err := sdf.Polygon2D(verts)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Polygon2D: %v", err))
	}
	return wrap(s)
}

// Segment creates a zero-area region tracing the segment from a to b.
func (b *Builder) Segment(a, p geom.Point) region.Region {
	return wrap(&segment2{a: v2.Vec{X: a.X, Y: a.Y}, b: v2.Vec{X: p.X, Y: p.Y}})
}

// Union returns the union of two regions.
func (b *Builder) Union(a, r region.Region) region.Region {
	return wrap(sdf.Union2D(unwrap(a), unwrap(r)))
}

// Intersect returns the intersection of two regions.
func (b *Builder) Intersect(a, r region.Region) region.Region {
	return wrap(sdf.Intersect2D(unwrap(a), unwrap(r)))
}

// Difference returns the difference a - r.
func (b *Builder) Difference(a, r region.Region) region.Region {
	return wrap(sdf.Difference2D(unwrap(a), unwrap(r)))
}

// segment2 is an unsigned distance field for a line segment. sdfx has
// no finite open-curve primitive, so we provide the SDF2 directly.
type segment2 struct {
	a, b v2.Vec
}

func (s *segment2) Evaluate(p v2.Vec) float64 {
	ab := s.b.Sub(s.a)
	ap := p.Sub(s.a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return p.Sub(s.a).Length()
	}
	t := ap.Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := s.a.Add(ab.MulScalar(t))
	return p.Sub(closest).Length()
}

func (s *segment2) BoundingBox() sdf.Box2 {
	min := v2.Vec{X: minf(s.a.X, s.b.X), Y: minf(s.a.Y, s.b.Y)}
	max := v2.Vec{X: maxf(s.a.X, s.b.X), Y: maxf(s.a.Y, s.b.Y)}
	return sdf.Box2{Min: min, Max: max}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
