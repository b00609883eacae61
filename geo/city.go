package geo

import (
	"math"
	"strconv"
)

// City is an immutable 2D point with an optional label.
//
// The zero value is the unlabelled origin.
type City struct {
	x, y  float64
	label string
}

// NewCity returns a City at (x, y) carrying label. The label may be empty.
func NewCity(x, y float64, label string) City {
	return City{x: x, y: y, label: label}
}

// X returns the x coordinate.
func (c City) X() float64 { return c.x }

// Y returns the y coordinate.
func (c City) Y() float64 { return c.y }

// Label returns the label, possibly empty.
func (c City) Label() string { return c.label }

// DistanceTo returns the Euclidean distance between c and other.
// The result is symmetric, non-negative and zero iff the coordinates match.
//
// Complexity: O(1).
func (c City) DistanceTo(other City) float64 {
	return math.Hypot(c.x-other.x, c.y-other.y)
}

// Equals reports coordinate-wise equality. Labels are ignored.
func (c City) Equals(other City) bool {
	return c.x == other.x && c.y == other.y
}

// IsFinite reports whether both coordinates are finite numbers.
func (c City) IsFinite() bool {
	return !math.IsNaN(c.x) && !math.IsInf(c.x, 0) &&
		!math.IsNaN(c.y) && !math.IsInf(c.y, 0)
}

// String returns the label, or "(x, y)" for an unlabelled city.
func (c City) String() string {
	if c.label != "" {
		return c.label
	}

	return "(" + strconv.FormatFloat(c.x, 'g', -1, 64) + ", " +
		strconv.FormatFloat(c.y, 'g', -1, 64) + ")"
}
