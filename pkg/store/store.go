package store

import (
	"github.com/google/uuid"

	"github.com/vellum-cad/vellum/pkg/entity"
)

// collection is one of the three id-indexed families, with insertion
// order preserved for deterministic snapshots.
type collection struct {
	byID  map[entity.ID]*entity.Entity
	order []entity.ID
}

func newCollection() *collection {
	return &collection{byID: make(map[entity.ID]*entity.Entity)}
}

func (c *collection) insert(e *entity.Entity) {
	c.byID[e.ID] = e
	c.order = append(c.order, e.ID)
}

func (c *collection) remove(id entity.ID) {
	delete(c.byID, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection) all() []entity.Entity {
	out := make([]entity.Entity, 0, len(c.order))
	for _, id := range c.order {
		if e, ok := c.byID[id]; ok {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Store is the authoritative, mutable drawing document.
type Store struct {
	entities    *collection
	dimensions  *collection
	annotations *collection

	selection []entity.ID

	listeners  []listenerEntry
	nextHandle int
}

type listenerEntry struct {
	handle int
	fn     func()
}

// New creates an empty store.
func New() *Store {
	return &Store{
		entities:    newCollection(),
		dimensions:  newCollection(),
		annotations: newCollection(),
	}
}

// family returns the collection an entity belongs to, or nil for an
// unsupported payload.
func (s *Store) family(e entity.Entity) *collection {
	switch e.Family() {
	case entity.FamilyDrawing:
		return s.entities
	case entity.FamilyDimension:
		return s.dimensions
	case entity.FamilyAnnotation:
		return s.annotations
	default:
		return nil
	}
}

// lookup finds an entity in whichever collection holds its id.
func (s *Store) lookup(id entity.ID) (*collection, *entity.Entity) {
	for _, c := range []*collection{s.entities, s.dimensions, s.annotations} {
		if e, ok := c.byID[id]; ok {
			return c, e
		}
	}
	return nil, nil
}

// Add classifies the payload into one of the three families, assigns a
// fresh unique id, validates degenerate geometry, inserts and notifies.
// A payload matching no family fails with entity.UnsupportedKindError.
// The record is stored as given apart from the id and the empty-style
// default, so a Get after Add returns the caller's fields unchanged.
func (s *Store) Add(e entity.Entity) (entity.ID, error) {
	c := s.family(e)
	if c == nil {
		tag := "nil"
		if e.Data != nil {
			tag = e.Kind().String()
		}
		return "", entity.UnsupportedKindError{Tag: tag}
	}
	if err := entity.Validate(e.Data); err != nil {
		return "", err
	}
	stored := e.Clone()
	stored.ID = entity.ID(uuid.NewString())
	if stored.Style == (entity.Style{}) {
		stored.Style = entity.DefaultStyle
	}
	c.insert(&stored)
	s.notify()
	return stored.ID, nil
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id entity.ID) (entity.Entity, bool) {
	_, e := s.lookup(id)
	if e == nil {
		return entity.Entity{}, false
	}
	return e.Clone(), true
}

// Update applies mutate to the record with the given id. It returns
// false, without error, when the id is absent. The id and the variant
// tag are immutable, and mutated geometry must still validate: a data
// change that breaks either is discarded while the rest of the
// mutation is kept.
func (s *Store) Update(id entity.ID, mutate func(*entity.Entity)) bool {
	c, e := s.lookup(id)
	if e == nil {
		return false
	}
	kind := e.Kind()
	work := e.Clone()
	mutate(&work)
	work.ID = id
	if work.Kind() != kind || entity.Validate(work.Data) != nil {
		// Variant changes and degenerate geometry are not allowed;
		// drop the data mutation.
		work.Data = e.Data
	}
	c.byID[id] = &work
	s.notify()
	return true
}

// Delete removes the record with the given id, reporting whether
// anything was removed. Absent ids are a no-op, not an error.
func (s *Store) Delete(id entity.ID) bool {
	c, e := s.lookup(id)
	if e == nil {
		return false
	}
	c.remove(id)
	s.deselectID(id)
	s.notify()
	return true
}

// UpdateWhere applies mutate to every record matching pred across all
// three collections and returns the match count. One notification fires
// if the count is positive.
func (s *Store) UpdateWhere(pred func(entity.Entity) bool, mutate func(*entity.Entity)) int {
	count := 0
	for _, c := range []*collection{s.entities, s.dimensions, s.annotations} {
		for _, id := range c.order {
			e := c.byID[id]
			if e == nil || !pred(e.Clone()) {
				continue
			}
			kind := e.Kind()
			work := e.Clone()
			mutate(&work)
			work.ID = id
			if work.Kind() != kind || entity.Validate(work.Data) != nil {
				work.Data = e.Data
			}
			c.byID[id] = &work
			count++
		}
	}
	if count > 0 {
		s.notify()
	}
	return count
}

// DeleteWhere removes every record matching pred across all three
// collections and returns the removal count. One notification fires if
// the count is positive.
func (s *Store) DeleteWhere(pred func(entity.Entity) bool) int {
	count := 0
	for _, c := range []*collection{s.entities, s.dimensions, s.annotations} {
		// Snapshot the order slice: remove mutates it.
		ids := append([]entity.ID(nil), c.order...)
		for _, id := range ids {
			e := c.byID[id]
			if e == nil || !pred(e.Clone()) {
				continue
			}
			c.remove(id)
			s.deselectID(id)
			count++
		}
	}
	if count > 0 {
		s.notify()
	}
	return count
}

// Entities returns copies of all drawing entities in insertion order.
func (s *Store) Entities() []entity.Entity { return s.entities.all() }

// Dimensions returns copies of all dimensions in insertion order.
func (s *Store) Dimensions() []entity.Entity { return s.dimensions.all() }

// Annotations returns copies of all annotations in insertion order.
func (s *Store) Annotations() []entity.Entity { return s.annotations.all() }

// All returns copies of every record across the three collections.
func (s *Store) All() []entity.Entity {
	out := s.entities.all()
	out = append(out, s.dimensions.all()...)
	out = append(out, s.annotations.all()...)
	return out
}

// Count returns the total number of records.
func (s *Store) Count() int {
	return len(s.entities.byID) + len(s.dimensions.byID) + len(s.annotations.byID)
}

// AddChangeListener registers a callback invoked with no arguments after
// every successful mutation. Listeners run in registration order; a
// panicking listener is recovered so the remaining listeners still run.
// The returned handle is used to remove the listener.
func (s *Store) AddChangeListener(fn func()) int {
	s.nextHandle++
	s.listeners = append(s.listeners, listenerEntry{handle: s.nextHandle, fn: fn})
	return s.nextHandle
}

// RemoveChangeListener unregisters a listener by handle.
func (s *Store) RemoveChangeListener(handle int) {
	for i, l := range s.listeners {
		if l.handle == handle {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Store) notify() {
	// Snapshot the registry: a listener may unregister during delivery.
	current := append([]listenerEntry(nil), s.listeners...)
	for _, l := range current {
		func() {
			defer func() { _ = recover() }()
			l.fn()
		}()
	}
}
