package entity

import "github.com/vellum-cad/vellum/pkg/geom"

// ---------------------------------------------------------------------------
// Dimensions
// ---------------------------------------------------------------------------

// DimGeometry is the shared shape of every dimension variant: the two
// measured points, the offset of the dimension line from the geometry,
// and the display text position.
type DimGeometry struct {
	Start        geom.Point `json:"start"`
	End          geom.Point `json:"end"`
	Offset       float64    `json:"offset"`
	TextPosition geom.Point `json:"textPosition"`
}

// LinearDimData measures the horizontal or vertical distance between two
// points.
type LinearDimData struct {
	DimGeometry
}

func (LinearDimData) entityData()   {}
func (LinearDimData) Kind() Kind    { return KindLinearDim }
func (d LinearDimData) Clone() Data { return d }

// AlignedDimData measures the true distance between two points along the
// line joining them.
type AlignedDimData struct {
	DimGeometry
}

func (AlignedDimData) entityData()   {}
func (AlignedDimData) Kind() Kind    { return KindAlignedDim }
func (d AlignedDimData) Clone() Data { return d }

// AngularDimData measures the angle at Vertex between the rays through
// Start and End.
type AngularDimData struct {
	DimGeometry
	Vertex geom.Point `json:"vertex"`
}

func (AngularDimData) entityData()   {}
func (AngularDimData) Kind() Kind    { return KindAngularDim }
func (d AngularDimData) Clone() Data { return d }

// RadialDimData annotates the radius of a circle or arc. Start is the
// center, End a point on the curve.
type RadialDimData struct {
	DimGeometry
}

func (RadialDimData) entityData()   {}
func (RadialDimData) Kind() Kind    { return KindRadialDim }
func (d RadialDimData) Clone() Data { return d }

// DiameterDimData annotates the diameter of a circle. Start and End are
// diametrically opposite points.
type DiameterDimData struct {
	DimGeometry
}

func (DiameterDimData) entityData()   {}
func (DiameterDimData) Kind() Kind    { return KindDiameterDim }
func (d DiameterDimData) Clone() Data { return d }
