package modify

import (
	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/store"
)

// BatchResult reports the outcome of a batch corner operation.
type BatchResult struct {
	Created []entity.ID
	Trimmed []entity.ID
}

// BatchFillet fillets every unordered pair of the given lines. A line
// consumed by one fillet is skipped in later pairs so it is never
// trimmed twice. Pairs that fail (parallel lines, missing ids) are
// skipped silently.
func BatchFillet(st *store.Store, ids []entity.ID, radius float64) BatchResult {
	return batchPairs(ids, func(a, b entity.ID) (entity.ID, bool) {
		return Fillet(st, a, b, radius, true)
	})
}

// BatchChamfer chamfers every unordered pair of the given lines with
// the same consumed-line tracking as BatchFillet.
func BatchChamfer(st *store.Store, ids []entity.ID, dist1, dist2 float64) BatchResult {
	return batchPairs(ids, func(a, b entity.ID) (entity.ID, bool) {
		return Chamfer(st, a, b, dist1, dist2, true)
	})
}

func batchPairs(ids []entity.ID, op func(a, b entity.ID) (entity.ID, bool)) BatchResult {
	var res BatchResult
	consumed := make(map[entity.ID]bool)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if consumed[a] || consumed[b] {
				continue
			}
			created, ok := op(a, b)
			if !ok {
				continue
			}
			consumed[a] = true
			consumed[b] = true
			res.Created = append(res.Created, created)
			res.Trimmed = append(res.Trimmed, a, b)
		}
	}
	return res
}
