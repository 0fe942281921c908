package geom

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// CartesianToPolar returns the radius and angle (radians) of p relative
// to the origin.
func CartesianToPolar(p Point) (r, theta float64) {
	return p.Length(), math.Atan2(p.Y, p.X)
}

// PolarToCartesian converts a radius and angle (radians) to a point.
func PolarToCartesian(r, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{X: r * cos, Y: r * sin}
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// NormalizeAngleSigned maps an angle in radians into [-π, π).
func NormalizeAngleSigned(rad float64) float64 {
	rad = NormalizeAngle(rad)
	if rad >= math.Pi {
		rad -= 2 * math.Pi
	}
	return rad
}

// Viewport describes the pan+zoom affine mapping between screen and
// world coordinates: world = (screen - pan) / zoom.
type Viewport struct {
	Pan  Point   `json:"pan"`
	Zoom float64 `json:"zoom"`
}

// ScreenToWorld converts a screen coordinate to world space. A zero zoom
// is treated as identity scale to keep the mapping total.
func (v Viewport) ScreenToWorld(screen Point) Point {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return Point{
		X: (screen.X - v.Pan.X) / zoom,
		Y: (screen.Y - v.Pan.Y) / zoom,
	}
}

// WorldToScreen converts a world coordinate to screen space.
func (v Viewport) WorldToScreen(world Point) Point {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return Point{
		X: world.X*zoom + v.Pan.X,
		Y: world.Y*zoom + v.Pan.Y,
	}
}

// Frame is a local coordinate frame defined by an origin and a rotation
// in radians. Local coordinates are expressed relative to the origin with
// axes rotated by Rotation.
type Frame struct {
	Origin   Point   `json:"origin"`
	Rotation float64 `json:"rotation"`
}

// WorldToLocal converts a world coordinate into the frame: translate by
// -Origin, then rotate by -Rotation.
func (f Frame) WorldToLocal(world Point) Point {
	return world.Sub(f.Origin).RotateAround(Point{}, -f.Rotation)
}

// LocalToWorld converts a frame-local coordinate back to world space.
func (f Frame) LocalToWorld(local Point) Point {
	return local.RotateAround(Point{}, f.Rotation).Add(f.Origin)
}
