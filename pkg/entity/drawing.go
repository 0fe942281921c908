package entity

import "github.com/vellum-cad/vellum/pkg/geom"

// ---------------------------------------------------------------------------
// Drawing entities
// ---------------------------------------------------------------------------

// LineData is a straight segment between two points.
type LineData struct {
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

func (LineData) entityData()   {}
func (LineData) Kind() Kind    { return KindLine }
func (d LineData) Clone() Data { return d }

// CircleData is a full circle.
type CircleData struct {
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`
}

func (CircleData) entityData()   {}
func (CircleData) Kind() Kind    { return KindCircle }
func (d CircleData) Clone() Data { return d }

// RectData is an axis-aligned rectangle, optionally rotated around its
// top-left position. Position and Rotation are always updated together.
type RectData struct {
	Position geom.Point `json:"position"` // top-left corner
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Rotation float64    `json:"rotation,omitempty"` // degrees
}

func (RectData) entityData()   {}
func (RectData) Kind() Kind    { return KindRect }
func (d RectData) Clone() Data { return d }

// EllipseData is an axis-aligned ellipse, optionally rotated.
type EllipseData struct {
	Center   geom.Point `json:"center"`
	RadiusX  float64    `json:"radiusX"`
	RadiusY  float64    `json:"radiusY"`
	Rotation float64    `json:"rotation,omitempty"` // degrees
}

func (EllipseData) entityData()   {}
func (EllipseData) Kind() Kind    { return KindEllipse }
func (d EllipseData) Clone() Data { return d }

// ArcData is a circular arc. Angles are in radians; Clockwise selects
// the sweep direction from StartAngle to EndAngle.
type ArcData struct {
	Center     geom.Point `json:"center"`
	Radius     float64    `json:"radius"`
	StartAngle float64    `json:"startAngle"`
	EndAngle   float64    `json:"endAngle"`
	Clockwise  bool       `json:"clockwise,omitempty"`
}

func (ArcData) entityData()   {}
func (ArcData) Kind() Kind    { return KindArc }
func (d ArcData) Clone() Data { return d }

// PolylineData is an ordered point sequence, optionally closed.
type PolylineData struct {
	Points []geom.Point `json:"points"`
	Closed bool         `json:"closed,omitempty"`
}

func (PolylineData) entityData() {}
func (PolylineData) Kind() Kind  { return KindPolyline }
func (d PolylineData) Clone() Data {
	d.Points = clonePoints(d.Points)
	return d
}

// SplineData is a smooth curve through an ordered point sequence with
// optional explicit control points.
type SplineData struct {
	Points  []geom.Point `json:"points"`
	Control []geom.Point `json:"control,omitempty"`
	Closed  bool         `json:"closed,omitempty"`
}

func (SplineData) entityData() {}
func (SplineData) Kind() Kind  { return KindSpline }
func (d SplineData) Clone() Data {
	d.Points = clonePoints(d.Points)
	d.Control = clonePoints(d.Control)
	return d
}

// PolygonData is a regular polygon described by center, circumradius and
// side count, optionally rotated.
type PolygonData struct {
	Center   geom.Point `json:"center"`
	Radius   float64    `json:"radius"`
	Sides    int        `json:"sides"`
	Rotation float64    `json:"rotation,omitempty"` // degrees
}

func (PolygonData) entityData()   {}
func (PolygonData) Kind() Kind    { return KindPolygon }
func (d PolygonData) Clone() Data { return d }

// PathData is a free-form point path.
type PathData struct {
	Points []geom.Point `json:"points"`
	Closed bool         `json:"closed,omitempty"`
}

func (PathData) entityData() {}
func (PathData) Kind() Kind  { return KindPath }
func (d PathData) Clone() Data {
	d.Points = clonePoints(d.Points)
	return d
}

// HatchData is a closed boundary filled with a named pattern.
type HatchData struct {
	Boundary []geom.Point `json:"boundary"`
	Pattern  string       `json:"pattern"`
	Angle    float64      `json:"angle,omitempty"`   // degrees
	Spacing  float64      `json:"spacing,omitempty"` // pattern line spacing
}

func (HatchData) entityData() {}
func (HatchData) Kind() Kind  { return KindHatch }
func (d HatchData) Clone() Data {
	d.Boundary = clonePoints(d.Boundary)
	return d
}

func clonePoints(pts []geom.Point) []geom.Point {
	if pts == nil {
		return nil
	}
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	return out
}
