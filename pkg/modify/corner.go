package modify

import (
	"math"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
)

// FilletResult holds the arc joining two lines and, when trimming was
// requested, the shortened replacements for each input line.
type FilletResult struct {
	Arc   entity.ArcData
	Line1 entity.LineData
	Line2 entity.LineData
}

// ChamferResult holds the bevel line connecting two lines and the
// shortened replacements for each input line.
type ChamferResult struct {
	Chamfer entity.LineData
	Line1   entity.LineData
	Line2   entity.LineData
}

// ComputeFillet builds an arc of the given radius tangent to both
// lines near their corner. Returns false when the lines are parallel
// or a degenerate corner makes the tangent construction impossible.
// When trim is true the result carries each line with its corner-side
// endpoint moved to the tangent point; otherwise the lines are
// returned unchanged.
func ComputeFillet(l1, l2 entity.LineData, radius float64, trim bool) (FilletResult, bool) {
	corner, d1, d2, theta, ok := cornerFrame(l1, l2)
	if !ok || radius <= 0 {
		return FilletResult{}, false
	}

	half := theta / 2
	tanDist := radius / math.Tan(half)
	t1 := corner.Add(d1.Scale(tanDist))
	t2 := corner.Add(d2.Scale(tanDist))

	bisector := d1.Add(d2).Unit()
	center := corner.Add(bisector.Scale(radius / math.Sin(half)))

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	arc := entity.ArcData{
		Center:     center,
		Radius:     radius,
		StartAngle: a1,
		EndAngle:   a2,
	}
	// Take the minor sweep so the arc hugs the corner.
	if geom.NormalizeAngle(a2-a1) > math.Pi {
		arc.Clockwise = true
	}

	res := FilletResult{Arc: arc, Line1: l1, Line2: l2}
	if trim {
		res.Line1 = replaceNearEndpoint(l1, corner, t1)
		res.Line2 = replaceNearEndpoint(l2, corner, t2)
	}
	return res, true
}

// ComputeChamfer offsets each line's corner-side endpoint by dist1 and
// dist2 along its own direction and connects the offsets with a bevel
// line. Returns false for parallel lines or non-positive distances.
func ComputeChamfer(l1, l2 entity.LineData, dist1, dist2 float64, trim bool) (ChamferResult, bool) {
	corner, d1, d2, _, ok := cornerFrame(l1, l2)
	if !ok || dist1 <= 0 || dist2 <= 0 {
		return ChamferResult{}, false
	}

	p1 := corner.Add(d1.Scale(dist1))
	p2 := corner.Add(d2.Scale(dist2))

	res := ChamferResult{
		Chamfer: entity.LineData{Start: p1, End: p2},
		Line1:   l1,
		Line2:   l2,
	}
	if trim {
		res.Line1 = replaceNearEndpoint(l1, corner, p1)
		res.Line2 = replaceNearEndpoint(l2, corner, p2)
	}
	return res, true
}

// cornerFrame intersects the infinite extensions of two lines and
// returns the corner, each line's unit direction away from the corner,
// and the angle between those directions.
func cornerFrame(l1, l2 entity.LineData) (corner, d1, d2 geom.Point, theta float64, ok bool) {
	corner, ok = lineIntersection(l1, l2)
	if !ok {
		return geom.Point{}, geom.Point{}, geom.Point{}, 0, false
	}
	d1, ok = awayFromCorner(l1, corner)
	if !ok {
		return geom.Point{}, geom.Point{}, geom.Point{}, 0, false
	}
	d2, ok = awayFromCorner(l2, corner)
	if !ok {
		return geom.Point{}, geom.Point{}, geom.Point{}, 0, false
	}
	cos := math.Max(-1, math.Min(1, d1.Dot(d2)))
	theta = math.Acos(cos)
	if math.Sin(theta/2) < geom.Epsilon {
		return geom.Point{}, geom.Point{}, geom.Point{}, 0, false
	}
	return corner, d1, d2, theta, true
}

// lineIntersection intersects the infinite extensions of two lines.
func lineIntersection(l1, l2 entity.LineData) (geom.Point, bool) {
	r := l1.End.Sub(l1.Start)
	s := l2.End.Sub(l2.Start)
	denom := r.X*s.Y - r.Y*s.X
	if math.Abs(denom) < geom.Epsilon {
		return geom.Point{}, false
	}
	d := l2.Start.Sub(l1.Start)
	t := (d.X*s.Y - d.Y*s.X) / denom
	return l1.Start.Add(r.Scale(t)), true
}

// awayFromCorner returns the unit direction from the corner toward the
// line's far endpoint.
func awayFromCorner(l entity.LineData, corner geom.Point) (geom.Point, bool) {
	far := l.End
	if l.Start.Distance(corner) > l.End.Distance(corner) {
		far = l.Start
	}
	v := far.Sub(corner)
	if v.Length() < geom.Epsilon {
		return geom.Point{}, false
	}
	return v.Unit(), true
}

// replaceNearEndpoint moves the endpoint closer to the corner onto p.
func replaceNearEndpoint(l entity.LineData, corner, p geom.Point) entity.LineData {
	if l.Start.Distance(corner) <= l.End.Distance(corner) {
		l.Start = p
	} else {
		l.End = p
	}
	return l
}
