// Package transform implements pure spatial transforms over single
// entities. Every function returns a mutated deep copy and leaves its
// input untouched; the caller decides whether to commit the result.
// Unrecognized payload kinds pass through unchanged so transforms stay
// best-effort per type.
package transform

import (
	"math"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
)

// Offset translates every point-valued field of the entity by delta.
// Non-point fields (radii, sizes, rotations) are unchanged.
func Offset(e entity.Entity, delta geom.Point) entity.Entity {
	out := e.Clone()
	switch d := out.Data.(type) {
	case entity.LineData:
		d.Start = d.Start.Add(delta)
		d.End = d.End.Add(delta)
		out.Data = d
	case entity.CircleData:
		d.Center = d.Center.Add(delta)
		out.Data = d
	case entity.RectData:
		d.Position = d.Position.Add(delta)
		out.Data = d
	case entity.EllipseData:
		d.Center = d.Center.Add(delta)
		out.Data = d
	case entity.ArcData:
		d.Center = d.Center.Add(delta)
		out.Data = d
	case entity.PolylineData:
		offsetPoints(d.Points, delta)
		out.Data = d
	case entity.SplineData:
		offsetPoints(d.Points, delta)
		offsetPoints(d.Control, delta)
		out.Data = d
	case entity.PolygonData:
		d.Center = d.Center.Add(delta)
		out.Data = d
	case entity.PathData:
		offsetPoints(d.Points, delta)
		out.Data = d
	case entity.HatchData:
		offsetPoints(d.Boundary, delta)
		out.Data = d
	case entity.LinearDimData:
		d.DimGeometry = offsetDim(d.DimGeometry, delta)
		out.Data = d
	case entity.AlignedDimData:
		d.DimGeometry = offsetDim(d.DimGeometry, delta)
		out.Data = d
	case entity.AngularDimData:
		d.DimGeometry = offsetDim(d.DimGeometry, delta)
		d.Vertex = d.Vertex.Add(delta)
		out.Data = d
	case entity.RadialDimData:
		d.DimGeometry = offsetDim(d.DimGeometry, delta)
		out.Data = d
	case entity.DiameterDimData:
		d.DimGeometry = offsetDim(d.DimGeometry, delta)
		out.Data = d
	case entity.TextData:
		d.Position = d.Position.Add(delta)
		out.Data = d
	case entity.LeaderData:
		offsetPoints(d.Points, delta)
		out.Data = d
	case entity.SymbolData:
		d.Position = d.Position.Add(delta)
		out.Data = d
	case entity.ToleranceData:
		d.Position = d.Position.Add(delta)
		out.Data = d
	}
	return out
}

// Rotate rotates every point-valued field around center by angleDeg
// degrees, and composes the entity's own intrinsic rotation additively:
// in degrees for rect/ellipse/polygon/text, in radians for arc angles.
// Composition is additive and unbounded; no normalization is applied.
func Rotate(e entity.Entity, center geom.Point, angleDeg float64) entity.Entity {
	theta := geom.DegToRad(angleDeg)
	out := e.Clone()
	switch d := out.Data.(type) {
	case entity.LineData:
		d.Start = d.Start.RotateAround(center, theta)
		d.End = d.End.RotateAround(center, theta)
		out.Data = d
	case entity.CircleData:
		d.Center = d.Center.RotateAround(center, theta)
		out.Data = d
	case entity.RectData:
		d.Position = d.Position.RotateAround(center, theta)
		d.Rotation += angleDeg
		out.Data = d
	case entity.EllipseData:
		d.Center = d.Center.RotateAround(center, theta)
		d.Rotation += angleDeg
		out.Data = d
	case entity.ArcData:
		d.Center = d.Center.RotateAround(center, theta)
		d.StartAngle += theta
		d.EndAngle += theta
		out.Data = d
	case entity.PolylineData:
		rotatePoints(d.Points, center, theta)
		out.Data = d
	case entity.SplineData:
		rotatePoints(d.Points, center, theta)
		rotatePoints(d.Control, center, theta)
		out.Data = d
	case entity.PolygonData:
		d.Center = d.Center.RotateAround(center, theta)
		d.Rotation += angleDeg
		out.Data = d
	case entity.PathData:
		rotatePoints(d.Points, center, theta)
		out.Data = d
	case entity.HatchData:
		rotatePoints(d.Boundary, center, theta)
		out.Data = d
	case entity.LinearDimData:
		d.DimGeometry = rotateDim(d.DimGeometry, center, theta)
		out.Data = d
	case entity.AlignedDimData:
		d.DimGeometry = rotateDim(d.DimGeometry, center, theta)
		out.Data = d
	case entity.AngularDimData:
		d.DimGeometry = rotateDim(d.DimGeometry, center, theta)
		d.Vertex = d.Vertex.RotateAround(center, theta)
		out.Data = d
	case entity.RadialDimData:
		d.DimGeometry = rotateDim(d.DimGeometry, center, theta)
		out.Data = d
	case entity.DiameterDimData:
		d.DimGeometry = rotateDim(d.DimGeometry, center, theta)
		out.Data = d
	case entity.TextData:
		d.Position = d.Position.RotateAround(center, theta)
		d.Rotation += angleDeg
		out.Data = d
	case entity.LeaderData:
		rotatePoints(d.Points, center, theta)
		out.Data = d
	case entity.SymbolData:
		d.Position = d.Position.RotateAround(center, theta)
		out.Data = d
	case entity.ToleranceData:
		d.Position = d.Position.RotateAround(center, theta)
		out.Data = d
	}
	return out
}

// Scale scales every point-valued field relative to center. Uniform
// radii (circle, arc, regular polygon) scale by max(|sx|, |sy|);
// independent axes (ellipse radii, rect width/height) scale by |sx| and
// |sy| respectively. Negative factors are valid for position mapping but
// magnitudes always use the absolute value.
func Scale(e entity.Entity, center geom.Point, sx, sy float64) entity.Entity {
	uniform := math.Max(math.Abs(sx), math.Abs(sy))
	out := e.Clone()
	switch d := out.Data.(type) {
	case entity.LineData:
		d.Start = d.Start.ScaleAround(center, sx, sy)
		d.End = d.End.ScaleAround(center, sx, sy)
		out.Data = d
	case entity.CircleData:
		d.Center = d.Center.ScaleAround(center, sx, sy)
		d.Radius *= uniform
		out.Data = d
	case entity.RectData:
		d.Position = d.Position.ScaleAround(center, sx, sy)
		d.Width *= math.Abs(sx)
		d.Height *= math.Abs(sy)
		out.Data = d
	case entity.EllipseData:
		d.Center = d.Center.ScaleAround(center, sx, sy)
		d.RadiusX *= math.Abs(sx)
		d.RadiusY *= math.Abs(sy)
		out.Data = d
	case entity.ArcData:
		d.Center = d.Center.ScaleAround(center, sx, sy)
		d.Radius *= uniform
		out.Data = d
	case entity.PolylineData:
		scalePoints(d.Points, center, sx, sy)
		out.Data = d
	case entity.SplineData:
		scalePoints(d.Points, center, sx, sy)
		scalePoints(d.Control, center, sx, sy)
		out.Data = d
	case entity.PolygonData:
		d.Center = d.Center.ScaleAround(center, sx, sy)
		d.Radius *= uniform
		out.Data = d
	case entity.PathData:
		scalePoints(d.Points, center, sx, sy)
		out.Data = d
	case entity.HatchData:
		scalePoints(d.Boundary, center, sx, sy)
		out.Data = d
	case entity.LinearDimData:
		d.DimGeometry = scaleDim(d.DimGeometry, center, sx, sy)
		out.Data = d
	case entity.AlignedDimData:
		d.DimGeometry = scaleDim(d.DimGeometry, center, sx, sy)
		out.Data = d
	case entity.AngularDimData:
		d.DimGeometry = scaleDim(d.DimGeometry, center, sx, sy)
		d.Vertex = d.Vertex.ScaleAround(center, sx, sy)
		out.Data = d
	case entity.RadialDimData:
		d.DimGeometry = scaleDim(d.DimGeometry, center, sx, sy)
		out.Data = d
	case entity.DiameterDimData:
		d.DimGeometry = scaleDim(d.DimGeometry, center, sx, sy)
		out.Data = d
	case entity.TextData:
		d.Position = d.Position.ScaleAround(center, sx, sy)
		out.Data = d
	case entity.LeaderData:
		scalePoints(d.Points, center, sx, sy)
		out.Data = d
	case entity.SymbolData:
		d.Position = d.Position.ScaleAround(center, sx, sy)
		out.Data = d
	case entity.ToleranceData:
		d.Position = d.Position.ScaleAround(center, sx, sy)
		out.Data = d
	}
	return out
}

func offsetPoints(pts []geom.Point, delta geom.Point) {
	for i := range pts {
		pts[i] = pts[i].Add(delta)
	}
}

func rotatePoints(pts []geom.Point, center geom.Point, theta float64) {
	for i := range pts {
		pts[i] = pts[i].RotateAround(center, theta)
	}
}

func scalePoints(pts []geom.Point, center geom.Point, sx, sy float64) {
	for i := range pts {
		pts[i] = pts[i].ScaleAround(center, sx, sy)
	}
}

func offsetDim(g entity.DimGeometry, delta geom.Point) entity.DimGeometry {
	g.Start = g.Start.Add(delta)
	g.End = g.End.Add(delta)
	g.TextPosition = g.TextPosition.Add(delta)
	return g
}

func rotateDim(g entity.DimGeometry, center geom.Point, theta float64) entity.DimGeometry {
	g.Start = g.Start.RotateAround(center, theta)
	g.End = g.End.RotateAround(center, theta)
	g.TextPosition = g.TextPosition.RotateAround(center, theta)
	return g
}

func scaleDim(g entity.DimGeometry, center geom.Point, sx, sy float64) entity.DimGeometry {
	g.Start = g.Start.ScaleAround(center, sx, sy)
	g.End = g.End.ScaleAround(center, sx, sy)
	g.TextPosition = g.TextPosition.ScaleAround(center, sx, sy)
	return g
}
