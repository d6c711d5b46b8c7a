package shapes

import (
	"log/slog"

	"github.com/gogpu/shapes/internal/raster"
)

// minRandomRadius is the smallest radius RandomCircle produces.
const minRandomRadius = 5

// Circle is a circle outline around Center.
// Radius 0 draws the center pixel, and a negative radius draws nothing.
type Circle struct {
	Center Point
	Radius int
}

// NewCircle creates a circle.
func NewCircle(center Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// RandomCircle creates a circle with a random center in [0, width) × [0, height)
// and a radius uniform in [5, min(width, height)).
//
// The circle may extend past the canvas edges. When min(width, height)
// is 5 or less the range is empty and the radius is 5.
func RandomCircle(src Source, width, height int) Circle {
	center := RandomPoint(src, width, height)
	radius := minRandomRadius
	if span := min(width, height) - minRandomRadius; span > 0 {
		radius += src.IntN(span)
	}
	return Circle{Center: center, Radius: radius}
}

// Pixels returns the pixels a draw of c writes, in emission order.
// The same pixel can appear more than once.
func (c Circle) Pixels() []Point {
	pts := make([]Point, 0, raster.CircleLen(c.Radius))
	raster.Circle(c.Center.X, c.Center.Y, c.Radius, func(x, y int) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}

// Draw rasterizes c onto dst in one fresh random color.
func (c Circle) Draw(dst Canvas, src Source) {
	c.DrawColor(dst, RandomColor(src))
}

// DrawColor rasterizes c onto dst in color col.
func (c Circle) DrawColor(dst Canvas, col Color) {
	n := 0
	raster.Circle(c.Center.X, c.Center.Y, c.Radius, func(x, y int) {
		dst.SetPixel(x, y, col)
		n++
	})
	Logger().Debug("shapes: draw circle",
		slog.Any("center", c.Center), slog.Int("radius", c.Radius), slog.Int("pixels", n))
}
