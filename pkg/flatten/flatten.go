// Package flatten converts entities into rings: ordered, implicitly
// closed point sequences suitable for the boolean operations module and
// for polygonal region construction. Curved entities are sampled at a
// fixed segment count.
package flatten

import (
	"math"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
)

// DefaultSegments controls how many segments curved boundaries are
// sampled into.
const DefaultSegments = 32

// Ring extracts the closed boundary of a polygon-like entity. The second
// return is false for entities that have no closed boundary (lines, arcs,
// open polylines, dimensions, annotations).
func Ring(e entity.Entity) ([]geom.Point, bool) {
	switch d := e.Data.(type) {
	case entity.PolygonData:
		return PolygonVertices(d), true
	case entity.PolylineData:
		if !d.Closed || len(d.Points) < 3 {
			return nil, false
		}
		return clonePoints(d.Points), true
	case entity.PathData:
		if !d.Closed || len(d.Points) < 3 {
			return nil, false
		}
		return clonePoints(d.Points), true
	case entity.RectData:
		return RectCorners(d), true
	case entity.CircleData:
		return sampleEllipse(d.Center, d.Radius, d.Radius, 0, DefaultSegments), true
	case entity.EllipseData:
		return sampleEllipse(d.Center, d.RadiusX, d.RadiusY, geom.DegToRad(d.Rotation), DefaultSegments), true
	case entity.HatchData:
		if len(d.Boundary) < 3 {
			return nil, false
		}
		return clonePoints(d.Boundary), true
	}
	return nil, false
}

// PolygonVertices returns the vertices of a regular polygon, starting at
// the rotation angle and proceeding counterclockwise.
func PolygonVertices(d entity.PolygonData) []geom.Point {
	if d.Sides < 3 {
		return nil
	}
	rot := geom.DegToRad(d.Rotation)
	pts := make([]geom.Point, d.Sides)
	for i := 0; i < d.Sides; i++ {
		a := rot + float64(i)*2*math.Pi/float64(d.Sides)
		pts[i] = d.Center.Add(geom.PolarToCartesian(d.Radius, a))
	}
	return pts
}

// RectCorners returns the four corners of a rectangle, applying its
// intrinsic rotation around the top-left position.
func RectCorners(d entity.RectData) []geom.Point {
	corners := []geom.Point{
		d.Position,
		{X: d.Position.X + d.Width, Y: d.Position.Y},
		{X: d.Position.X + d.Width, Y: d.Position.Y + d.Height},
		{X: d.Position.X, Y: d.Position.Y + d.Height},
	}
	if d.Rotation != 0 {
		theta := geom.DegToRad(d.Rotation)
		for i := range corners {
			corners[i] = corners[i].RotateAround(d.Position, theta)
		}
	}
	return corners
}

// ArcPoints samples an arc into an open polyline from StartAngle to
// EndAngle, honoring the sweep direction.
func ArcPoints(d entity.ArcData, segments int) []geom.Point {
	if segments < 1 {
		segments = DefaultSegments
	}
	sweep := d.EndAngle - d.StartAngle
	if d.Clockwise && sweep > 0 {
		sweep -= 2 * math.Pi
	}
	if !d.Clockwise && sweep < 0 {
		sweep += 2 * math.Pi
	}
	pts := make([]geom.Point, segments+1)
	for i := 0; i <= segments; i++ {
		a := d.StartAngle + sweep*float64(i)/float64(segments)
		pts[i] = d.Center.Add(geom.PolarToCartesian(d.Radius, a))
	}
	return pts
}

func sampleEllipse(center geom.Point, rx, ry, rot float64, segments int) []geom.Point {
	pts := make([]geom.Point, segments)
	for i := 0; i < segments; i++ {
		a := float64(i) * 2 * math.Pi / float64(segments)
		sin, cos := math.Sincos(a)
		p := geom.Point{X: rx * cos, Y: ry * sin}
		if rot != 0 {
			p = p.RotateAround(geom.Point{}, rot)
		}
		pts[i] = center.Add(p)
	}
	return pts
}

func clonePoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	return out
}
