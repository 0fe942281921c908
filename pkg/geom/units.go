package geom

import "fmt"

// Unit is a drawing length unit. Millimeters are the canonical base unit;
// every other unit is defined by its size in mm.
type Unit string

const (
	UnitMM Unit = "mm"
	UnitCM Unit = "cm"
	UnitIn Unit = "in"
	UnitFt Unit = "ft"
)

// unitToMM maps each unit to its length in millimeters.
var unitToMM = map[Unit]float64{
	UnitMM: 1,
	UnitCM: 10,
	UnitIn: 25.4,
	UnitFt: 304.8,
}

// ConvertUnits converts a length between units. Unknown units are
// rejected so typos surface at the call site instead of silently scaling
// by zero.
func ConvertUnits(value float64, from, to Unit) (float64, error) {
	fm, ok := unitToMM[from]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	tm, ok := unitToMM[to]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	return value * fm / tm, nil
}

// PaperSize is a standard sheet size in millimeters, portrait orientation.
type PaperSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// paperSizes is the fixed lookup table of standard sheets (portrait, mm).
var paperSizes = map[string]PaperSize{
	"A0":      {841, 1189},
	"A1":      {594, 841},
	"A2":      {420, 594},
	"A3":      {297, 420},
	"A4":      {210, 297},
	"A5":      {148, 210},
	"Letter":  {215.9, 279.4},
	"Legal":   {215.9, 355.6},
	"Tabloid": {279.4, 431.8},
}

// LookupPaperSize returns the dimensions of a named standard sheet,
// swapping width and height when landscape is requested.
func LookupPaperSize(name string, landscape bool) (PaperSize, bool) {
	ps, ok := paperSizes[name]
	if !ok {
		return PaperSize{}, false
	}
	if landscape {
		ps.Width, ps.Height = ps.Height, ps.Width
	}
	return ps, true
}
