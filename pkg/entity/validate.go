package entity

import "fmt"

// Validate checks a payload for degenerate geometry. Radius-like fields
// must be strictly positive at creation time; the store rejects invalid
// payloads rather than holding them, so downstream transform and boolean
// code never sees a non-positive radius.
func Validate(d Data) error {
	switch v := d.(type) {
	case CircleData:
		if v.Radius <= 0 {
			return fmt.Errorf("circle: radius %.4f, must be positive", v.Radius)
		}
	case RectData:
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("rect: size %.4f x %.4f, must be positive", v.Width, v.Height)
		}
	case EllipseData:
		if v.RadiusX <= 0 || v.RadiusY <= 0 {
			return fmt.Errorf("ellipse: radii %.4f x %.4f, must be positive", v.RadiusX, v.RadiusY)
		}
	case ArcData:
		if v.Radius <= 0 {
			return fmt.Errorf("arc: radius %.4f, must be positive", v.Radius)
		}
	case PolygonData:
		if v.Radius <= 0 {
			return fmt.Errorf("polygon: radius %.4f, must be positive", v.Radius)
		}
		if v.Sides < 3 {
			return fmt.Errorf("polygon: %d sides, need at least 3", v.Sides)
		}
	case PolylineData:
		if len(v.Points) < 2 {
			return fmt.Errorf("polyline: %d points, need at least 2", len(v.Points))
		}
	case SplineData:
		if len(v.Points) < 2 {
			return fmt.Errorf("spline: %d points, need at least 2", len(v.Points))
		}
	}
	return nil
}
