package shapes

import "github.com/gogpu/shapes/internal/raster"

// Line is a segment from A to B. A and B may be equal.
type Line struct {
	A, B Point
}

// NewLine creates a line from a to b.
func NewLine(a, b Point) Line {
	return Line{A: a, B: b}
}

// RandomLine creates a line between two independent random points
// within [0, width) × [0, height).
func RandomLine(src Source, width, height int) Line {
	a := RandomPoint(src, width, height)
	b := RandomPoint(src, width, height)
	return Line{A: a, B: b}
}

// Pixels returns the pixels a draw of l writes, in order.
//
// The walk starts exactly at A and steps max(|dx|, |dy|) times, so the last
// pixel is one step short of B. When A equals B the result is the single
// pixel A.
func (l Line) Pixels() []Point {
	pts := make([]Point, 0, raster.LineLen(l.A.X, l.A.Y, l.B.X, l.B.Y))
	raster.Line(l.A.X, l.A.Y, l.B.X, l.B.Y, func(x, y int) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}

// Draw rasterizes l onto dst in a fresh random color.
func (l Line) Draw(dst Canvas, src Source) {
	l.DrawColor(dst, RandomColor(src))
}

// DrawColor rasterizes l onto dst in color c.
func (l Line) DrawColor(dst Canvas, c Color) {
	drawLine(dst, l.A, l.B, c)
}

// drawLine is shared by every shape built from segments.
func drawLine(dst Canvas, a, b Point, c Color) {
	raster.Line(a.X, a.Y, b.X, b.Y, func(x, y int) {
		dst.SetPixel(x, y, c)
	})
}
