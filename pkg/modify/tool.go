package modify

import (
	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/store"
)

// ToolKind selects the operation an interactive Tool performs.
type ToolKind int

const (
	ToolTrim ToolKind = iota
	ToolExtend
)

// ToolState is the tool's current interaction phase.
type ToolState int

const (
	// StateBoundarySelection collects the boundary set, one click per
	// entity toggle.
	StateBoundarySelection ToolState = iota
	// StateEntitySelection applies the operation to each clicked
	// entity against the collected boundary set.
	StateEntitySelection
	// StateDone means the tool has exited and ignores further input.
	StateDone
)

// Tool is the interactive trim/extend adapter. It owns the boundary
// set and phase state; all geometry goes through the Compute functions
// via the store appliers.
type Tool struct {
	store    *store.Store
	kind     ToolKind
	state    ToolState
	boundary map[entity.ID]bool
	order    []entity.ID
}

// NewTool starts a tool in boundary selection.
func NewTool(st *store.Store, kind ToolKind) *Tool {
	return &Tool{
		store:    st,
		kind:     kind,
		state:    StateBoundarySelection,
		boundary: make(map[entity.ID]bool),
	}
}

// State returns the current phase.
func (t *Tool) State() ToolState { return t.state }

// Boundary returns the boundary set in toggle order.
func (t *Tool) Boundary() []entity.ID {
	out := make([]entity.ID, 0, len(t.order))
	for _, id := range t.order {
		if t.boundary[id] {
			out = append(out, id)
		}
	}
	return out
}

// Click handles a pointer click at p. In boundary selection it toggles
// membership of the entity under the cursor; in entity selection it
// attempts the operation on that entity and stays in entity selection.
// Returns true when the click changed something.
func (t *Tool) Click(p geom.Point) bool {
	switch t.state {
	case StateBoundarySelection:
		e, ok := t.store.EntityAt(p, store.DefaultPickTolerance)
		if !ok {
			return false
		}
		t.toggle(e.ID)
		return true
	case StateEntitySelection:
		e, ok := t.store.EntityAt(p, store.DefaultPickTolerance)
		if !ok {
			return false
		}
		ids := t.Boundary()
		if t.kind == ToolExtend {
			return Extend(t.store, e.ID, ids, p)
		}
		return Trim(t.store, e.ID, ids, p)
	}
	return false
}

// Confirm moves from boundary selection to entity selection. An empty
// boundary set defaults to every current entity.
func (t *Tool) Confirm() {
	if t.state != StateBoundarySelection {
		return
	}
	if len(t.Boundary()) == 0 {
		for _, e := range t.store.All() {
			t.toggle(e.ID)
		}
	}
	t.state = StateEntitySelection
}

// Cancel steps back one phase: entity selection returns to boundary
// selection with a cleared boundary set, boundary selection exits the
// tool.
func (t *Tool) Cancel() {
	switch t.state {
	case StateEntitySelection:
		t.boundary = make(map[entity.ID]bool)
		t.order = nil
		t.state = StateBoundarySelection
	case StateBoundarySelection:
		t.state = StateDone
	}
}

func (t *Tool) toggle(id entity.ID) {
	if t.boundary[id] {
		t.boundary[id] = false
		return
	}
	if !contains(t.order, id) {
		t.order = append(t.order, id)
	}
	t.boundary[id] = true
}

func contains(ids []entity.ID, id entity.ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
