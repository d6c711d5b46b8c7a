package shapes

import "image"

// Point is a pixel position. The zero value is the origin.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// RandomPoint returns a point in [0, width) × [0, height).
//
// Each coordinate is a raw 32-bit sample reduced modulo the bound, which
// is slightly biased towards small values but never out of range.
// RandomPoint panics if width or height is not positive.
func RandomPoint(src Source, width, height int) Point {
	if width <= 0 || height <= 0 {
		panic("shapes: RandomPoint with non-positive bounds")
	}
	//nolint:gosec // bounds are positive, and the result is below them
	return Point{
		X: int(src.Uint32() % uint32(width)),
		Y: int(src.Uint32() % uint32(height)),
	}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies inside r.
func (p Point) In(r image.Rectangle) bool {
	return image.Pt(p.X, p.Y).In(r)
}

// Draw writes p onto dst in a fresh random color.
func (p Point) Draw(dst Canvas, src Source) {
	p.DrawColor(dst, RandomColor(src))
}

// DrawColor writes p onto dst in color c.
func (p Point) DrawColor(dst Canvas, c Color) {
	dst.SetPixel(p.X, p.Y, c)
}
