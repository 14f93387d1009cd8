// Package geometry provides the integer 2D primitives the rest of the
// solver builds on: a Point type with the arithmetic a region/line
// specifier needs, plus the two cell enumerators (axis-aligned boxes and
// straight-or-45°-diagonal lines) that region expansion is built from.
package geometry

import "fmt"

// Point is an integer 2D vector. It is used both for absolute cell
// coordinates and for direction vectors (e.g. the unit step of a line).
type Point struct {
	X, Y int
}

// NewPoint constructs a Point from its coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied component-wise by the scalar k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// DivScalar returns p divided component-wise by the scalar k.
func (p Point) DivScalar(k int) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Less orders points by (Y, X), row-major order. It gives a total,
// deterministic ordering over cells, used by region.Region.Cells to
// return a region's cells in a stable order.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// InBounds reports whether p lies within a grid of the given size,
// i.e. 0 <= p.X < size.X and 0 <= p.Y < size.Y.
func (p Point) InBounds(size Point) bool {
	return p.X >= 0 && p.X < size.X && p.Y >= 0 && p.Y < size.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// sign returns -1, 0, or 1 according to the sign of n.
func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
