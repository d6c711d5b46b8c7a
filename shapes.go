package shapes

// Drawable is implemented by every shape.
//
// Draw rasterizes the shape onto dst in a color picked with [RandomColor]
// from src. Multi-pixel shapes pick one color per call and use it for
// every pixel they write.
type Drawable interface {
	Draw(dst Canvas, src Source)
}

// Compile-time interface checks.
var (
	_ Drawable = Point{}
	_ Drawable = Line{}
	_ Drawable = Triangle{}
	_ Drawable = Rectangle{}
	_ Drawable = Circle{}
)

// DrawAll draws each shape onto dst in order.
func DrawAll(dst Canvas, src Source, shapes ...Drawable) {
	for _, s := range shapes {
		s.Draw(dst, src)
	}
}
