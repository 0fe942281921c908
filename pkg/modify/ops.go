package modify

import (
	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/store"
)

// Fillet applies ComputeFillet to two stored lines, adds the arc, and
// (when trim is set) shortens both lines in place. Returns the new
// arc's id. False when either id is missing, not a line, or the
// construction fails.
func Fillet(st *store.Store, id1, id2 entity.ID, radius float64, trim bool) (entity.ID, bool) {
	l1, e1, ok := storedLine(st, id1)
	if !ok {
		return "", false
	}
	l2, _, ok := storedLine(st, id2)
	if !ok {
		return "", false
	}
	res, ok := ComputeFillet(l1, l2, radius, trim)
	if !ok {
		return "", false
	}
	if trim {
		setLine(st, id1, res.Line1)
		setLine(st, id2, res.Line2)
	}
	arcID, err := st.Add(entity.Entity{Layer: e1.Layer, Visible: true, Style: e1.Style, Data: res.Arc})
	if err != nil {
		return "", false
	}
	return arcID, true
}

// Chamfer applies ComputeChamfer to two stored lines and adds the
// bevel line. Semantics mirror Fillet.
func Chamfer(st *store.Store, id1, id2 entity.ID, dist1, dist2 float64, trim bool) (entity.ID, bool) {
	l1, e1, ok := storedLine(st, id1)
	if !ok {
		return "", false
	}
	l2, _, ok := storedLine(st, id2)
	if !ok {
		return "", false
	}
	res, ok := ComputeChamfer(l1, l2, dist1, dist2, trim)
	if !ok {
		return "", false
	}
	if trim {
		setLine(st, id1, res.Line1)
		setLine(st, id2, res.Line2)
	}
	chID, err := st.Add(entity.Entity{Layer: e1.Layer, Visible: true, Style: e1.Style, Data: res.Chamfer})
	if err != nil {
		return "", false
	}
	return chID, true
}

// Trim cuts a stored line against the given boundary entities, keeping
// the side nearest the click. No-op (false) when the id is missing,
// not a line, or nothing intersects.
func Trim(st *store.Store, id entity.ID, boundaryIDs []entity.ID, click geom.Point) bool {
	line, _, ok := storedLine(st, id)
	if !ok {
		return false
	}
	trimmed, ok := ComputeTrim(line, resolve(st, boundaryIDs, id), click)
	if !ok {
		return false
	}
	return setLine(st, id, trimmed)
}

// Extend stretches a stored line to the nearest boundary entity ahead
// of its free endpoint. Semantics mirror Trim.
func Extend(st *store.Store, id entity.ID, boundaryIDs []entity.ID, click geom.Point) bool {
	line, _, ok := storedLine(st, id)
	if !ok {
		return false
	}
	extended, ok := ComputeExtend(line, resolve(st, boundaryIDs, id), click)
	if !ok {
		return false
	}
	return setLine(st, id, extended)
}

func storedLine(st *store.Store, id entity.ID) (entity.LineData, entity.Entity, bool) {
	e, ok := st.Get(id)
	if !ok {
		return entity.LineData{}, entity.Entity{}, false
	}
	l, ok := e.Data.(entity.LineData)
	return l, e, ok
}

func setLine(st *store.Store, id entity.ID, l entity.LineData) bool {
	return st.Update(id, func(e *entity.Entity) {
		e.Data = l
	})
}

// resolve looks up boundary entities, dropping missing ids and the
// entity being modified.
func resolve(st *store.Store, ids []entity.ID, skip entity.ID) []entity.Entity {
	out := make([]entity.Entity, 0, len(ids))
	for _, id := range ids {
		if id == skip {
			continue
		}
		if e, ok := st.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}
