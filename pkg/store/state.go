package store

import "github.com/vellum-cad/vellum/pkg/entity"

// State is a plain-record snapshot of the three collections, suitable
// for undo stacks and external persistence. It carries no behavior.
type State struct {
	Entities    []entity.Entity `json:"entities"`
	Dimensions  []entity.Entity `json:"dimensions"`
	Annotations []entity.Entity `json:"annotations"`
}

// GetState returns a deep snapshot of the three collections in
// insertion order.
func (s *Store) GetState() State {
	return State{
		Entities:    s.entities.all(),
		Dimensions:  s.dimensions.all(),
		Annotations: s.annotations.all(),
	}
}

// SetState replaces all three collections with deep copies of the given
// snapshot, clears the selection, and fires a single notification.
// Records are kept under their snapshot ids; callers are responsible for
// id uniqueness within a snapshot (GetState output always satisfies it).
func (s *Store) SetState(st State) {
	s.entities = rebuild(st.Entities)
	s.dimensions = rebuild(st.Dimensions)
	s.annotations = rebuild(st.Annotations)
	s.selection = nil
	s.notify()
}

func rebuild(records []entity.Entity) *collection {
	c := newCollection()
	for _, e := range records {
		clone := e.Clone()
		c.insert(&clone)
	}
	return c
}
