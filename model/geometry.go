package model

import "math"

// Point represents a 2D point. Within this module it is mostly used as an
// offset (see DeviationPair), not as a standalone position.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Add returns the component-wise sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox is a rectangle in PDF user space given by its lower-left (X0, Y0)
// and upper-right (X1, Y1) corners. Y grows upward.
//
// The corners are stored exactly as given. A box whose upper-right corner
// lies below or left of its lower-left corner is a legal value; it simply
// contains nothing.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// NewBBox creates a bounding box from its corner coordinates
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// NewBBoxFromPoints creates a bounding box from a lower-left and an
// upper-right corner without reordering them.
func NewBBoxFromPoints(lowerLeft, upperRight Point) BBox {
	return BBox{X0: lowerLeft.X, Y0: lowerLeft.Y, X1: upperRight.X, Y1: upperRight.Y}
}

// LowerLeft returns the lower-left corner
func (b BBox) LowerLeft() Point {
	return Point{X: b.X0, Y: b.Y0}
}

// UpperRight returns the upper-right corner
func (b BBox) UpperRight() Point {
	return Point{X: b.X1, Y: b.Y1}
}

// Width returns X1 - X0. Negative for inverted boxes.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns Y1 - Y0. Negative for inverted boxes.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.X0 + b.X1) / 2,
		Y: (b.Y0 + b.Y1) / 2,
	}
}

// Contains checks if a point is inside the bounding box (edges included)
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X0 && p.X <= b.X1 &&
		p.Y >= b.Y0 && p.Y <= b.Y1
}

// ContainsBox reports whether other lies completely inside b, edges
// included. This is the containment rule used for region extraction.
func (b BBox) ContainsBox(other BBox) bool {
	return other.X0 >= b.X0 && other.Y0 >= b.Y0 &&
		other.X1 <= b.X1 && other.Y1 <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Area returns the area of the bounding box, 0 for degenerate boxes
func (b BBox) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero or negative area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// ApproxEqual compares two boxes corner by corner within epsilon
func (b BBox) ApproxEqual(other BBox, epsilon float64) bool {
	return math.Abs(b.X0-other.X0) <= epsilon &&
		math.Abs(b.Y0-other.Y0) <= epsilon &&
		math.Abs(b.X1-other.X1) <= epsilon &&
		math.Abs(b.Y1-other.Y1) <= epsilon
}

// DeviationPair nudges the corners of a computed value region away from the
// raw anchor coordinates: Start applies to the lower-left corner, End to the
// upper-right corner.
type DeviationPair struct {
	Start Point `yaml:"start" json:"start"`
	End   Point `yaml:"end" json:"end"`
}
