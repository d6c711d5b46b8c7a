package shapes

import "log/slog"

// Rectangle is an axis-aligned outline spanned by two opposite corners.
// A and B need not be ordered: either diagonal works.
type Rectangle struct {
	A, B Point
}

// NewRectangle creates a rectangle from two opposite corners.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{A: a, B: b}
}

// Corners returns the four corners in draw order. The second corner takes
// its x from B and its y from A. The fourth takes its x from A and its y
// from B.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		r.A,
		{X: r.B.X, Y: r.A.Y},
		r.B,
		{X: r.A.X, Y: r.B.Y},
	}
}

// Edges returns the four perimeter edges in draw order.
func (r Rectangle) Edges() [4]Line {
	c := r.Corners()
	return [4]Line{
		{A: c[0], B: c[1]},
		{A: c[1], B: c[2]},
		{A: c[2], B: c[3]},
		{A: c[3], B: c[0]},
	}
}

// Draw rasterizes the four edges onto dst in one fresh random color.
func (r Rectangle) Draw(dst Canvas, src Source) {
	r.DrawColor(dst, RandomColor(src))
}

// DrawColor rasterizes the four edges onto dst in color c.
func (r Rectangle) DrawColor(dst Canvas, c Color) {
	Logger().Debug("shapes: draw rectangle",
		slog.Any("a", r.A), slog.Any("b", r.B), slog.Any("color", c))

	for _, e := range r.Edges() {
		drawLine(dst, e.A, e.B, c)
	}
}
