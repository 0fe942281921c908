package store

import (
	"math"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/region"
)

// DefaultPickTolerance is the hit-test slop in world units.
const DefaultPickTolerance = 5.0

var picker = region.NewAnalytic()

// EntityAt returns the visible, unlocked entity nearest the point
// within tolerance. Later additions win ties, matching draw order
// where newer entities sit on top.
func (s *Store) EntityAt(p geom.Point, tolerance float64) (entity.Entity, bool) {
	if tolerance <= 0 {
		tolerance = DefaultPickTolerance
	}
	var best entity.Entity
	bestDist := math.Inf(1)
	found := false
	for _, e := range s.All() {
		if !e.Visible || e.Locked {
			continue
		}
		r, ok := region.FromEntity(picker, e)
		if !ok || r == nil {
			continue
		}
		d := r.Distance(p)
		if d > tolerance {
			continue
		}
		if d <= bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
