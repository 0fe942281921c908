package entity

import "github.com/vellum-cad/vellum/pkg/geom"

// ---------------------------------------------------------------------------
// Annotations
// ---------------------------------------------------------------------------

// TextStyle carries the typography attributes of a text annotation.
type TextStyle struct {
	FontSize float64 `json:"fontSize"`
	Weight   string  `json:"weight,omitempty"` // "normal", "bold"
	Align    string  `json:"align,omitempty"`  // "left", "center", "right"
}

// TextData is a free-standing text label.
type TextData struct {
	Position geom.Point `json:"position"`
	Rotation float64    `json:"rotation,omitempty"` // degrees
	Text     string     `json:"text"`
	Font     TextStyle  `json:"font"`
}

func (TextData) entityData()   {}
func (TextData) Kind() Kind    { return KindText }
func (d TextData) Clone() Data { return d }

// LeaderData is a polyline arrow with a text label at its tail.
type LeaderData struct {
	Points []geom.Point `json:"points"`
	Text   string       `json:"text"`
}

func (LeaderData) entityData() {}
func (LeaderData) Kind() Kind  { return KindLeader }
func (d LeaderData) Clone() Data {
	d.Points = clonePoints(d.Points)
	return d
}

// SymbolData is a named symbol instance (weld mark, surface finish, ...).
type SymbolData struct {
	Position geom.Point `json:"position"`
	Name     string     `json:"name"`
	Scale    float64    `json:"scale,omitempty"`
}

func (SymbolData) entityData()   {}
func (SymbolData) Kind() Kind    { return KindSymbol }
func (d SymbolData) Clone() Data { return d }

// ToleranceData is a feature-control tolerance callout.
type ToleranceData struct {
	Position geom.Point `json:"position"`
	Value    string     `json:"value"`
	Datum    string     `json:"datum,omitempty"`
}

func (ToleranceData) entityData()   {}
func (ToleranceData) Kind() Kind    { return KindTolerance }
func (d ToleranceData) Clone() Data { return d }
