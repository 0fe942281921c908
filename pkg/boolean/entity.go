package boolean

import (
	"github.com/google/uuid"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/flatten"
	"github.com/vellum-cad/vellum/pkg/geom"
)

// Options controls how a boolean operation result entity is built.
type Options struct {
	// Layer for the result. Empty inherits the first operand's layer.
	Layer string
	// Style overrides the default of inheriting the first operand's style.
	Style *entity.Style
}

// Union builds a closed polyline approximating a ∪ b. It returns nil
// when either operand has no closed boundary of at least 3 points or the
// union cannot be expressed as a single simple ring.
func Union(a, b entity.Entity, opt Options) *entity.Entity {
	return apply(UnionRings, a, b, opt)
}

// Intersect builds a closed polyline approximating a ∩ b, or nil when
// the operands are disjoint.
func Intersect(a, b entity.Entity, opt Options) *entity.Entity {
	return apply(IntersectRings, a, b, opt)
}

// Subtract builds a closed polyline approximating a − b, or nil when the
// subject has no usable boundary or is entirely consumed by the clip.
func Subtract(a, b entity.Entity, opt Options) *entity.Entity {
	ringA, okA := flatten.Ring(a)
	if !okA || len(ringA) < 3 {
		return nil
	}
	// A degenerate clip leaves the subject unchanged; DifferenceRings
	// handles that with a nil clip ring.
	ringB, _ := flatten.Ring(b)
	result := DifferenceRings(ringA, ringB)
	if result == nil {
		return nil
	}
	return resultEntity(result, a, opt)
}

func apply(op func(a, b []geom.Point) []geom.Point, a, b entity.Entity, opt Options) *entity.Entity {
	ringA, okA := flatten.Ring(a)
	ringB, okB := flatten.Ring(b)
	if !okA || !okB || len(ringA) < 3 || len(ringB) < 3 {
		return nil
	}
	result := op(ringA, ringB)
	if result == nil {
		return nil
	}
	return resultEntity(result, a, opt)
}

// resultEntity wraps a ring as a fresh closed polyline entity. The id is
// newly generated; layer and style default to the first operand's.
func resultEntity(ring []geom.Point, first entity.Entity, opt Options) *entity.Entity {
	style := first.Style
	if opt.Style != nil {
		style = *opt.Style
	}
	layer := opt.Layer
	if layer == "" {
		layer = first.Layer
	}
	return &entity.Entity{
		ID:      entity.ID(uuid.NewString()),
		Layer:   layer,
		Visible: true,
		Style:   style,
		Data:    entity.PolylineData{Points: ring, Closed: true},
	}
}
