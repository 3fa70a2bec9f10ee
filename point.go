package ggline

import "image"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Eq reports whether p and q are the same pixel.
func (p Point) Eq(q Point) bool {
	return p == q
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// Segment is a line segment between two pixel coordinates.
type Segment struct {
	A, B Point
}

// Draw rasterizes the segment with alg into s.
func (seg Segment) Draw(alg Algorithm, s Sink, c RGBA) {
	alg(s, seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, c)
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns +1 or -1 for the direction from a to b. Equal values step
// forward; the caller never walks that axis.
func sign(a, b int) int {
	if a > b {
		return -1
	}
	return 1
}
