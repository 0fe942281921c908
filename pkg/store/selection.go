package store

import "github.com/vellum-cad/vellum/pkg/entity"

// Selection is ephemeral: it is not entity state, it survives no bulk
// load, and selecting ids that do not exist is a silent no-op.

// Select marks an id as selected. With addToSelection false the current
// selection is replaced; with true the id joins it. Selecting an
// already-selected id again is a no-op, as is a nonexistent id.
func (s *Store) Select(id entity.ID, addToSelection bool) {
	if _, e := s.lookup(id); e == nil {
		return
	}
	if !addToSelection {
		s.selection = []entity.ID{id}
		return
	}
	for _, sid := range s.selection {
		if sid == id {
			return
		}
	}
	s.selection = append(s.selection, id)
}

// Deselect removes an id from the selection if present.
func (s *Store) Deselect(id entity.ID) {
	s.deselectID(id)
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.selection = nil
}

// SelectedIDs returns the selected ids in selection order.
func (s *Store) SelectedIDs() []entity.ID {
	return append([]entity.ID(nil), s.selection...)
}

// SelectedEntities returns copies of the selected records, skipping ids
// that no longer resolve.
func (s *Store) SelectedEntities() []entity.Entity {
	out := make([]entity.Entity, 0, len(s.selection))
	for _, id := range s.selection {
		if _, e := s.lookup(id); e != nil {
			out = append(out, e.Clone())
		}
	}
	return out
}

func (s *Store) deselectID(id entity.ID) {
	for i, sid := range s.selection {
		if sid == id {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return
		}
	}
}
