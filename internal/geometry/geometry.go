// Package geometry defines the value types the sketch controller reasons
// about: points and ellipses in device-independent units, and the scale that
// converts raw pointer pixels into that unit space.
package geometry

import "math"

// Point is a position in device-independent units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Ellipse is an axis-aligned ellipse defined by its center and radii.
// Radii are always non-negative.
type Ellipse struct {
	Center  Point
	RadiusX float64
	RadiusY float64
}

// EllipseAt returns the degenerate ellipse produced by a pointer-down at p:
// centered on p with both radii zero.
func EllipseAt(p Point) Ellipse {
	return Ellipse{Center: p}
}

// EllipseBetween returns the ellipse bounded by anchor and cur: its center is
// the midpoint of the two points and each radius is half the componentwise
// distance. The result depends only on the two arguments, so intermediate
// drag positions do not matter.
func EllipseBetween(anchor, cur Point) Ellipse {
	return Ellipse{
		Center:  Point{X: (anchor.X + cur.X) / 2, Y: (anchor.Y + cur.Y) / 2},
		RadiusX: math.Abs(cur.X-anchor.X) / 2,
		RadiusY: math.Abs(cur.Y-anchor.Y) / 2,
	}
}

// Empty reports whether the ellipse has no area.
func (e Ellipse) Empty() bool {
	return e.RadiusX <= 0 || e.RadiusY <= 0
}

// Scale converts physical pixel coordinates into device-independent units.
// The zero value is not usable; use NewScale or ScaleFromDPI.
type Scale struct {
	X, Y float64
}

// baseDPI is the pixel density at which one pixel equals one
// device-independent unit.
const baseDPI = 96.0

// NewScale returns a uniform scale factor.
func NewScale(factor float64) Scale {
	return Scale{X: factor, Y: factor}
}

// ScaleFromDPI derives the scale factor from a display's pixel density.
func ScaleFromDPI(dpi float64) Scale {
	return NewScale(dpi / baseDPI)
}

// Valid reports whether the scale can convert coordinates.
func (s Scale) Valid() bool { return s.X > 0 && s.Y > 0 }

// PxToDip converts a point given in physical pixels into device-independent
// units.
func (s Scale) PxToDip(p Point) Point {
	return Point{X: p.X / s.X, Y: p.Y / s.Y}
}

// DipToPx converts a point given in device-independent units into physical
// pixels.
func (s Scale) DipToPx(p Point) Point {
	return Point{X: p.X * s.X, Y: p.Y * s.Y}
}
