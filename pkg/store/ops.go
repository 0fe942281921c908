package store

import (
	"github.com/google/uuid"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/transform"
)

// Spatial operations delegate to the transform engine and commit the
// result. Absent ids are skipped silently; unsupported kinds pass
// through the engine as unchanged copies.

// Move translates the record by delta.
func (s *Store) Move(id entity.ID, delta geom.Point) bool {
	return s.applyTransform(id, func(e entity.Entity) entity.Entity {
		return transform.Offset(e, delta)
	})
}

// Rotate rotates the record around center by angleDeg degrees.
func (s *Store) Rotate(id entity.ID, center geom.Point, angleDeg float64) bool {
	return s.applyTransform(id, func(e entity.Entity) entity.Entity {
		return transform.Rotate(e, center, angleDeg)
	})
}

// Scale scales the record relative to center by (sx, sy).
func (s *Store) Scale(id entity.ID, center geom.Point, sx, sy float64) bool {
	return s.applyTransform(id, func(e entity.Entity) entity.Entity {
		return transform.Scale(e, center, sx, sy)
	})
}

// MoveSelected translates every selected record, returning the number
// affected. One notification fires if any record moved.
func (s *Store) MoveSelected(delta geom.Point) int {
	return s.transformSelected(func(e entity.Entity) entity.Entity {
		return transform.Offset(e, delta)
	})
}

// RotateSelected rotates every selected record around center.
func (s *Store) RotateSelected(center geom.Point, angleDeg float64) int {
	return s.transformSelected(func(e entity.Entity) entity.Entity {
		return transform.Rotate(e, center, angleDeg)
	})
}

// ScaleSelected scales every selected record relative to center.
func (s *Store) ScaleSelected(center geom.Point, sx, sy float64) int {
	return s.transformSelected(func(e entity.Entity) entity.Entity {
		return transform.Scale(e, center, sx, sy)
	})
}

// Copy clones the record with the given id, assigns a fresh id, applies
// the optional offset, and inserts the clone into its collection. The
// new id is returned; a missing source yields ("", false).
func (s *Store) Copy(id entity.ID, offset *geom.Point) (entity.ID, bool) {
	c, e := s.lookup(id)
	if e == nil {
		return "", false
	}
	clone := e.Clone()
	if offset != nil {
		clone = transform.Offset(clone, *offset)
	}
	clone.ID = entity.ID(uuid.NewString())
	c.insert(&clone)
	s.notify()
	return clone.ID, true
}

func (s *Store) applyTransform(id entity.ID, fn func(entity.Entity) entity.Entity) bool {
	c, e := s.lookup(id)
	if e == nil {
		return false
	}
	result := fn(e.Clone())
	result.ID = id
	c.byID[id] = &result
	s.notify()
	return true
}

func (s *Store) transformSelected(fn func(entity.Entity) entity.Entity) int {
	count := 0
	for _, id := range s.selection {
		c, e := s.lookup(id)
		if e == nil {
			continue
		}
		result := fn(e.Clone())
		result.ID = id
		c.byID[id] = &result
		count++
	}
	if count > 0 {
		s.notify()
	}
	return count
}
