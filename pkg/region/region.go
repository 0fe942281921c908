// Package region defines the abstract 2D region interface used for
// hit-testing and containment queries. Implementations (the analytic
// backend here, the signed-distance backend in the sdfx subpackage)
// provide distance fields behind this interface so backends can be
// swapped without changing the rest of the system.
package region

import (
	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/flatten"
	"github.com/vellum-cad/vellum/pkg/geom"
)

// Region is an opaque handle to a 2D area or curve.
type Region interface {
	// Distance returns the signed distance from p to the region
	// boundary: negative inside, positive outside, zero on the boundary.
	// Open curves (segments, polyline chains) never report negative.
	Distance(p geom.Point) float64
	// Contains reports whether p is inside or on the region.
	Contains(p geom.Point) bool
	// BoundingBox returns the axis-aligned bounds.
	BoundingBox() (min, max geom.Point)
}

// Builder constructs regions from primitives and combines them.
type Builder interface {
	Circle(center geom.Point, radius float64) Region
	Box(pos geom.Point, width, height, rotationDeg float64) Region
	Polygon(ring []geom.Point) Region
	Segment(a, b geom.Point) Region

	Union(a, b Region) Region
	Intersect(a, b Region) Region
	Difference(a, b Region) Region
}

// FromEntity builds a hit-test region for an entity with the given
// builder. The second return is false for kinds that have no spatial
// footprint to test against (symbols, tolerances, dimensions, text).
func FromEntity(b Builder, e entity.Entity) (Region, bool) {
	switch d := e.Data.(type) {
	case entity.LineData:
		return b.Segment(d.Start, d.End), true
	case entity.CircleData:
		return b.Circle(d.Center, d.Radius), true
	case entity.RectData:
		return b.Box(d.Position, d.Width, d.Height, d.Rotation), true
	case entity.EllipseData:
		ring, ok := flatten.Ring(e)
		if !ok {
			return nil, false
		}
		return b.Polygon(ring), true
	case entity.ArcData:
		return chain(b, flatten.ArcPoints(d, flatten.DefaultSegments), false), true
	case entity.PolylineData:
		if d.Closed && len(d.Points) >= 3 {
			return b.Polygon(d.Points), true
		}
		return chain(b, d.Points, false), len(d.Points) >= 2
	case entity.PathData:
		if d.Closed && len(d.Points) >= 3 {
			return b.Polygon(d.Points), true
		}
		return chain(b, d.Points, false), len(d.Points) >= 2
	case entity.PolygonData:
		return b.Polygon(flatten.PolygonVertices(d)), true
	case entity.HatchData:
		if len(d.Boundary) < 3 {
			return nil, false
		}
		return b.Polygon(d.Boundary), true
	case entity.LeaderData:
		return chain(b, d.Points, false), len(d.Points) >= 2
	}
	return nil, false
}

// chain unions consecutive segments of an open point sequence.
func chain(b Builder, pts []geom.Point, closed bool) Region {
	if len(pts) < 2 {
		return nil
	}
	r := b.Segment(pts[0], pts[1])
	for i := 1; i < len(pts)-1; i++ {
		r = b.Union(r, b.Segment(pts[i], pts[i+1]))
	}
	if closed {
		r = b.Union(r, b.Segment(pts[len(pts)-1], pts[0]))
	}
	return r
}
