package shapes

import "image/draw"

// Canvas receives the pixels produced by drawing a shape.
//
// SetPixel writes (or overwrites) the pixel at (x, y). Shapes never check
// bounds before writing: coordinates outside the canvas are passed through
// and the implementation decides whether to clip, wrap or panic. Rasterizers
// may write the same pixel several times with the same color, so SetPixel
// must be idempotent.
//
// A Canvas is not safe for concurrent use unless the implementation says
// otherwise; callers serialize draws against one canvas.
type Canvas interface {
	SetPixel(x, y int, c Color)
}

// ImageCanvas adapts a draw.Image to Canvas.
// Out-of-bounds writes follow the image's Set behavior, which for the
// standard image types means they are ignored.
type ImageCanvas struct {
	Dst draw.Image
}

// SetPixel implements Canvas.
func (ic ImageCanvas) SetPixel(x, y int, c Color) {
	ic.Dst.Set(x, y, c)
}
