package shapes

// Triangle is the outline through A, B and C.
//
// Color is the triangle's default color. Draw does not use it and always
// picks a fresh random color; pass it to DrawColor to honor it.
type Triangle struct {
	A, B, C Point
	Color   Color
}

// NewTriangle creates a triangle with White as its default color.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c, Color: White}
}

// Edges returns the three edges in draw order: AB, BC, CA.
func (t Triangle) Edges() [3]Line {
	return [3]Line{
		{A: t.A, B: t.B},
		{A: t.B, B: t.C},
		{A: t.C, B: t.A},
	}
}

// Draw rasterizes the three edges onto dst in one fresh random color.
func (t Triangle) Draw(dst Canvas, src Source) {
	t.DrawColor(dst, RandomColor(src))
}

// DrawColor rasterizes the three edges onto dst in color c.
func (t Triangle) DrawColor(dst Canvas, c Color) {
	for _, e := range t.Edges() {
		drawLine(dst, e.A, e.B, c)
	}
}
