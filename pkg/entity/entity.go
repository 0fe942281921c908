package entity

import "fmt"

// ID uniquely identifies an entity, dimension or annotation. IDs are
// assigned at creation and never reused, even across the three
// collections combined.
type ID string

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool { return id == "" }

// Short returns an abbreviated form suitable for log and error messages.
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// Family groups entity kinds into the three top-level collections.
type Family int

const (
	FamilyDrawing Family = iota
	FamilyDimension
	FamilyAnnotation
	FamilyUnknown
)

func (f Family) String() string {
	switch f {
	case FamilyDrawing:
		return "drawing"
	case FamilyDimension:
		return "dimension"
	case FamilyAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// Kind enumerates every entity variant in the data model.
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindRect
	KindEllipse
	KindArc
	KindPolyline
	KindSpline
	KindPolygon
	KindPath
	KindHatch

	KindLinearDim
	KindAlignedDim
	KindAngularDim
	KindRadialDim
	KindDiameterDim

	KindText
	KindLeader
	KindSymbol
	KindTolerance
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindEllipse:
		return "ellipse"
	case KindArc:
		return "arc"
	case KindPolyline:
		return "polyline"
	case KindSpline:
		return "spline"
	case KindPolygon:
		return "polygon"
	case KindPath:
		return "path"
	case KindHatch:
		return "hatch"
	case KindLinearDim:
		return "linear-dimension"
	case KindAlignedDim:
		return "aligned-dimension"
	case KindAngularDim:
		return "angular-dimension"
	case KindRadialDim:
		return "radial-dimension"
	case KindDiameterDim:
		return "diameter-dimension"
	case KindText:
		return "text"
	case KindLeader:
		return "leader"
	case KindSymbol:
		return "symbol"
	case KindTolerance:
		return "tolerance"
	default:
		return "unknown"
	}
}

// Family returns the collection a kind belongs to.
func (k Kind) Family() Family {
	switch {
	case k >= KindLine && k <= KindHatch:
		return FamilyDrawing
	case k >= KindLinearDim && k <= KindDiameterDim:
		return FamilyDimension
	case k >= KindText && k <= KindTolerance:
		return FamilyAnnotation
	default:
		return FamilyUnknown
	}
}

// Data is the interface for kind-specific entity payloads. The unexported
// marker method restricts implementations to this package, keeping the
// union closed.
type Data interface {
	entityData()
	// Kind returns the variant tag for this payload.
	Kind() Kind
	// Clone returns a deep copy; point slices are never shared.
	Clone() Data
}

// Style is the stroke/fill record attached to every entity.
type Style struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Dash        string  `json:"dash,omitempty"`
	Fill        string  `json:"fill,omitempty"`
}

// DefaultStyle is applied when a caller provides no style.
var DefaultStyle = Style{Stroke: "#000000", StrokeWidth: 1}

// Entity is a single record in the drawing: one drawing entity,
// dimension or annotation. The id and variant are immutable after
// creation; geometry is replaced whole, never partially.
type Entity struct {
	ID      ID     `json:"id"`
	Layer   string `json:"layer"`
	Visible bool   `json:"visible"`
	Locked  bool   `json:"locked"`
	Style   Style  `json:"style"`
	Data    Data   `json:"data"`
}

// Kind returns the variant tag of the entity's payload.
func (e Entity) Kind() Kind {
	if e.Data == nil {
		return Kind(-1)
	}
	return e.Data.Kind()
}

// Family returns which of the three collections the entity belongs to.
func (e Entity) Family() Family {
	if e.Data == nil {
		return FamilyUnknown
	}
	return e.Data.Kind().Family()
}

// Clone returns a deep copy of the entity.
func (e Entity) Clone() Entity {
	c := e
	if e.Data != nil {
		c.Data = e.Data.Clone()
	}
	return c
}

// UnsupportedKindError is returned when a payload's tag matches none of
// the three entity families.
type UnsupportedKindError struct {
	Tag string
}

func (e UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported entity type %q", e.Tag)
}
