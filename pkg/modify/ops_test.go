package modify

import (
	"testing"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/store"
)

func addLine(t *testing.T, st *store.Store, x1, y1, x2, y2 float64) entity.ID {
	t.Helper()
	id, err := st.Add(entity.Entity{Layer: "walls", Visible: true, Data: lineData(x1, y1, x2, y2)})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return id
}

func mustLine(t *testing.T, st *store.Store, id entity.ID) entity.LineData {
	t.Helper()
	e, ok := st.Get(id)
	if !ok {
		t.Fatalf("entity %s missing", id.Short())
	}
	l, ok := e.Data.(entity.LineData)
	if !ok {
		t.Fatalf("entity %s is %s, want line", id.Short(), e.Kind())
	}
	return l
}

func TestFillet(t *testing.T) {
	st := store.New()
	id1 := addLine(t, st, 0, 0, 10, 0)
	id2 := addLine(t, st, 0, 0, 0, 10)

	arcID, ok := Fillet(st, id1, id2, 1, true)
	if !ok {
		t.Fatal("expected fillet to succeed")
	}

	arc, found := st.Get(arcID)
	if !found {
		t.Fatal("arc not stored")
	}
	if arc.Kind() != entity.KindArc {
		t.Errorf("created entity is %s, want arc", arc.Kind())
	}
	if arc.Layer != "walls" {
		t.Errorf("arc layer = %q, want first line's layer", arc.Layer)
	}
	ad := arc.Data.(entity.ArcData)
	if !pointsClose(ad.Center, geom.Point{X: 1, Y: 1}, 1e-9) {
		t.Errorf("arc center = %v, want (1,1)", ad.Center)
	}

	if got := mustLine(t, st, id1); !pointsClose(got.Start, geom.Point{X: 1, Y: 0}, 1e-9) {
		t.Errorf("line1 start = %v, want (1,0)", got.Start)
	}
	if got := mustLine(t, st, id2); !pointsClose(got.Start, geom.Point{X: 0, Y: 1}, 1e-9) {
		t.Errorf("line2 start = %v, want (0,1)", got.Start)
	}
}

func TestFilletNoTrimLeavesLines(t *testing.T) {
	st := store.New()
	id1 := addLine(t, st, 0, 0, 10, 0)
	id2 := addLine(t, st, 0, 0, 0, 10)

	if _, ok := Fillet(st, id1, id2, 1, false); !ok {
		t.Fatal("expected fillet to succeed")
	}
	if got := mustLine(t, st, id1); got != lineData(0, 0, 10, 0) {
		t.Errorf("line1 changed to %v without trim", got)
	}
	if st.Count() != 3 {
		t.Errorf("Count = %d, want 3", st.Count())
	}
}

func TestFilletRejectsNonLine(t *testing.T) {
	st := store.New()
	id1 := addLine(t, st, 0, 0, 10, 0)
	circID, err := st.Add(entity.Entity{Data: entity.CircleData{Center: geom.Point{X: 5, Y: 5}, Radius: 2}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := Fillet(st, id1, circID, 1, true); ok {
		t.Error("fillet with a circle operand must fail")
	}
	if _, ok := Fillet(st, id1, "missing", 1, true); ok {
		t.Error("fillet with a missing id must fail")
	}
}

func TestFilletParallelLeavesStore(t *testing.T) {
	st := store.New()
	id1 := addLine(t, st, 0, 0, 10, 0)
	id2 := addLine(t, st, 0, 5, 10, 5)
	if _, ok := Fillet(st, id1, id2, 1, true); ok {
		t.Fatal("parallel fillet must fail")
	}
	if st.Count() != 2 {
		t.Errorf("Count = %d after failed fillet, want 2", st.Count())
	}
	if got := mustLine(t, st, id1); got != lineData(0, 0, 10, 0) {
		t.Errorf("line1 changed to %v on failure", got)
	}
}

func TestChamferStore(t *testing.T) {
	st := store.New()
	id1 := addLine(t, st, 0, 0, 10, 0)
	id2 := addLine(t, st, 0, 0, 0, 10)

	bevelID, ok := Chamfer(st, id1, id2, 2, 2, true)
	if !ok {
		t.Fatal("expected chamfer to succeed")
	}
	bevel := mustLine(t, st, bevelID)
	if !pointsClose(bevel.Start, geom.Point{X: 2, Y: 0}, 1e-9) ||
		!pointsClose(bevel.End, geom.Point{X: 0, Y: 2}, 1e-9) {
		t.Errorf("bevel = %v-%v, want (2,0)-(0,2)", bevel.Start, bevel.End)
	}
	if got := mustLine(t, st, id1); !pointsClose(got.Start, geom.Point{X: 2, Y: 0}, 1e-9) {
		t.Errorf("line1 start = %v, want (2,0)", got.Start)
	}
}

func TestTrimStore(t *testing.T) {
	st := store.New()
	target := addLine(t, st, 0, 0, 10, 0)
	cutter := addLine(t, st, 5, -5, 5, 5)

	if !Trim(st, target, []entity.ID{cutter}, geom.Point{X: 2, Y: 0}) {
		t.Fatal("expected trim to succeed")
	}
	if got := mustLine(t, st, target); got != lineData(0, 0, 5, 0) {
		t.Errorf("trimmed line = %v, want (0,0)-(5,0)", got)
	}
	// The cutter is untouched.
	if got := mustLine(t, st, cutter); got != lineData(5, -5, 5, 5) {
		t.Errorf("cutter changed to %v", got)
	}
}

func TestTrimSkipsSelf(t *testing.T) {
	st := store.New()
	target := addLine(t, st, 0, 0, 10, 0)
	if Trim(st, target, []entity.ID{target}, geom.Point{X: 2, Y: 0}) {
		t.Error("an entity must not trim against itself")
	}
}

func TestExtendStore(t *testing.T) {
	st := store.New()
	target := addLine(t, st, 0, 0, 5, 0)
	wall := addLine(t, st, 10, -5, 10, 5)

	if !Extend(st, target, []entity.ID{wall}, geom.Point{X: 5, Y: 0}) {
		t.Fatal("expected extend to succeed")
	}
	if got := mustLine(t, st, target); got != lineData(0, 0, 10, 0) {
		t.Errorf("extended line = %v, want (0,0)-(10,0)", got)
	}
}

func TestExtendMissingBoundaryIDs(t *testing.T) {
	st := store.New()
	target := addLine(t, st, 0, 0, 5, 0)
	if Extend(st, target, []entity.ID{"gone"}, geom.Point{X: 5, Y: 0}) {
		t.Error("missing boundary ids must resolve to nothing")
	}
}
