// Package shapes draws simple geometric primitives onto pixel buffers.
//
// # Overview
//
// shapes converts points, lines, triangles, rectangles and circles into
// individual pixel writes. There is no anti-aliasing and no sub-pixel
// precision: every coordinate is an integer and every write is a single
// opaque color.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	src := shapes.NewSource(42)
//	pm := shapes.NewPixmap(1000, 1000)
//
//	shapes.NewRectangle(shapes.Pt(150, 150), shapes.Pt(50, 50)).Draw(pm, src)
//	shapes.RandomCircle(src, pm.Width(), pm.Height()).Draw(pm, src)
//
// # Canvas
//
// Shapes write through the [Canvas] interface, which has a single SetPixel
// method. [Pixmap] is the built-in implementation; [ImageCanvas] adapts any
// draw.Image. Shapes never clip: a circle near an edge writes coordinates
// outside the canvas, and the canvas decides what happens to them
// ([BoundsClip] or [BoundsWrap] for a Pixmap).
//
// # Randomness
//
// Random constructors and [Drawable.Draw] take an explicit [Source]. Seeding
// it with [NewSource] makes a drawing reproducible.
//
// # Algorithms
//
// Lines use a digital differential analyzer stepping one pixel along the
// dominant axis. Circles use the midpoint algorithm with eight-way symmetry.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package shapes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
