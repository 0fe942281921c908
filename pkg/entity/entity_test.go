package entity_test

import (
	"testing"

	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
)

func TestKindFamily(t *testing.T) {
	tests := []struct {
		name string
		kind entity.Kind
		want entity.Family
	}{
		{"line", entity.KindLine, entity.FamilyDrawing},
		{"hatch", entity.KindHatch, entity.FamilyDrawing},
		{"linear dimension", entity.KindLinearDim, entity.FamilyDimension},
		{"diameter dimension", entity.KindDiameterDim, entity.FamilyDimension},
		{"text", entity.KindText, entity.FamilyAnnotation},
		{"tolerance", entity.KindTolerance, entity.FamilyAnnotation},
		{"out of range", entity.Kind(99), entity.FamilyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Family(); got != tt.want {
				t.Errorf("Family() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDataKindTags(t *testing.T) {
	tests := []struct {
		name string
		data entity.Data
		want entity.Kind
	}{
		{"line", entity.LineData{}, entity.KindLine},
		{"circle", entity.CircleData{}, entity.KindCircle},
		{"rect", entity.RectData{}, entity.KindRect},
		{"ellipse", entity.EllipseData{}, entity.KindEllipse},
		{"arc", entity.ArcData{}, entity.KindArc},
		{"polyline", entity.PolylineData{}, entity.KindPolyline},
		{"spline", entity.SplineData{}, entity.KindSpline},
		{"polygon", entity.PolygonData{}, entity.KindPolygon},
		{"path", entity.PathData{}, entity.KindPath},
		{"hatch", entity.HatchData{}, entity.KindHatch},
		{"linear dim", entity.LinearDimData{}, entity.KindLinearDim},
		{"aligned dim", entity.AlignedDimData{}, entity.KindAlignedDim},
		{"angular dim", entity.AngularDimData{}, entity.KindAngularDim},
		{"radial dim", entity.RadialDimData{}, entity.KindRadialDim},
		{"diameter dim", entity.DiameterDimData{}, entity.KindDiameterDim},
		{"text", entity.TextData{}, entity.KindText},
		{"leader", entity.LeaderData{}, entity.KindLeader},
		{"symbol", entity.SymbolData{}, entity.KindSymbol},
		{"tolerance", entity.ToleranceData{}, entity.KindTolerance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.data.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := entity.PolylineData{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		Closed: true,
	}
	clone := orig.Clone().(entity.PolylineData)
	clone.Points[0].X = 99

	if orig.Points[0].X != 0 {
		t.Errorf("clone shares point slice with original")
	}
	if !clone.Closed {
		t.Errorf("clone lost Closed flag")
	}
}

func TestEntityClone(t *testing.T) {
	e := entity.Entity{
		ID:      "abc",
		Layer:   "walls",
		Visible: true,
		Style:   entity.DefaultStyle,
		Data:    entity.LeaderData{Points: []geom.Point{{X: 1, Y: 2}}, Text: "note"},
	}
	c := e.Clone()
	cd := c.Data.(entity.LeaderData)
	cd.Points[0].X = -1

	ed := e.Data.(entity.LeaderData)
	if ed.Points[0].X != 1 {
		t.Error("entity clone shares leader points with original")
	}
	if c.ID != e.ID || c.Layer != e.Layer {
		t.Error("entity clone dropped scalar fields")
	}
}

func TestIDShort(t *testing.T) {
	if got := entity.ID("0123456789abcdef").Short(); got != "01234567" {
		t.Errorf("Short = %q, want %q", got, "01234567")
	}
	if got := entity.ID("abc").Short(); got != "abc" {
		t.Errorf("Short = %q, want %q", got, "abc")
	}
	if !entity.ID("").IsZero() {
		t.Error("empty id should be zero")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    entity.Data
		wantErr bool
	}{
		{"valid circle", entity.CircleData{Radius: 5}, false},
		{"zero radius circle", entity.CircleData{}, true},
		{"negative radius arc", entity.ArcData{Radius: -1}, true},
		{"valid rect", entity.RectData{Width: 10, Height: 5}, false},
		{"zero width rect", entity.RectData{Height: 5}, true},
		{"two sided polygon", entity.PolygonData{Radius: 5, Sides: 2}, true},
		{"valid polygon", entity.PolygonData{Radius: 5, Sides: 3}, false},
		{"one point polyline", entity.PolylineData{Points: []geom.Point{{X: 0, Y: 0}}}, true},
		{"valid line", entity.LineData{End: geom.Point{X: 1, Y: 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.Validate(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnsupportedKindError(t *testing.T) {
	err := entity.UnsupportedKindError{Tag: "blob"}
	want := `unsupported entity type "blob"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
