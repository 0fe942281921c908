package modify

import (
	"math"

	"github.com/vellum-cad/vellum/pkg/boolean"
	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
)

// ExtendProbe is how far past the free endpoint Extend searches for a
// boundary crossing.
const ExtendProbe = 10000.0

// ComputeTrim cuts the line at its intersection with the boundary set,
// keeping the side containing the click point. The boundary crossing
// nearest the click is used. Returns false when no boundary entity
// intersects the line.
//
// Only line boundaries participate today; other entity kinds in the
// boundary set are skipped.
func ComputeTrim(line entity.LineData, boundaries []entity.Entity, click geom.Point) (entity.LineData, bool) {
	best := geom.Point{}
	bestDist := math.Inf(1)
	found := false
	for _, b := range boundaries {
		bl, ok := b.Data.(entity.LineData)
		if !ok {
			continue
		}
		hit, ok := boolean.SegmentIntersection(line.Start, line.End, bl.Start, bl.End)
		if !ok {
			continue
		}
		if d := hit.Distance(click); d < bestDist {
			best, bestDist, found = hit, d, true
		}
	}
	if !found {
		return line, false
	}

	// Keep the side of the cut the user clicked on.
	if line.Start.Distance(click) <= line.End.Distance(click) {
		line.End = best
	} else {
		line.Start = best
	}
	return line, true
}

// ComputeExtend stretches the endpoint nearer the click until it meets
// the closest boundary entity ahead of it. The probe runs ExtendProbe
// units past the free endpoint along the line's direction; crossings
// behind the free endpoint are ignored. Returns false when nothing
// lies ahead within the probe distance.
func ComputeExtend(line entity.LineData, boundaries []entity.Entity, click geom.Point) (entity.LineData, bool) {
	free, fixed := line.End, line.Start
	if line.Start.Distance(click) < line.End.Distance(click) {
		free, fixed = line.Start, line.End
	}
	dir := free.Sub(fixed)
	if dir.Length() < geom.Epsilon {
		return line, false
	}
	dir = dir.Unit()
	probeEnd := free.Add(dir.Scale(ExtendProbe))

	best := geom.Point{}
	bestDist := math.Inf(1)
	found := false
	for _, b := range boundaries {
		bl, ok := b.Data.(entity.LineData)
		if !ok {
			continue
		}
		hit, ok := boolean.SegmentIntersection(free, probeEnd, bl.Start, bl.End)
		if !ok {
			continue
		}
		if hit.Sub(free).Dot(dir) <= 0 {
			continue
		}
		if d := hit.Distance(free); d < bestDist {
			best, bestDist, found = hit, d, true
		}
	}
	if !found {
		return line, false
	}

	if free == line.Start {
		line.Start = best
	} else {
		line.End = best
	}
	return line, true
}
