package shapes

import (
	"image"
	"image/color"
)

// Pixmap is an in-memory RGB pixel buffer implementing Canvas and image.Image.
type Pixmap struct {
	width  int
	height int
	bounds BoundsPolicy
	data   []uint8 // RGBA layout, alpha always 255
}

// NewPixmap creates a width × height pixmap.
// Non-positive dimensions produce an empty pixmap that drops every write.
func NewPixmap(width, height int, opts ...PixmapOption) *Pixmap {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width, height = max(width, 0), max(height, 0)
	p := &Pixmap{
		width:  width,
		height: height,
		bounds: o.bounds,
		data:   make([]uint8, width*height*4),
	}
	p.Clear(o.background)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// BoundsPolicy returns the policy applied to out-of-bounds writes.
func (p *Pixmap) BoundsPolicy() BoundsPolicy {
	return p.bounds
}

// SetPixel implements Canvas.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	x, y, ok := p.resolve(x, y)
	if !ok {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 0xff
}

// Pixel returns the color at (x, y), or Black outside the pixmap.
// The bounds policy does not apply to reads.
func (p *Pixmap) Pixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// resolve maps (x, y) to a pixel index according to the bounds policy.
func (p *Pixmap) resolve(x, y int) (int, int, bool) {
	if x >= 0 && x < p.width && y >= 0 && y < p.height {
		return x, y, true
	}
	if p.bounds != BoundsWrap || p.width == 0 || p.height == 0 {
		return 0, 0, false
	}
	return mod(x, p.width), mod(y, p.height), true
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 0xff
	}
}

// Count returns the number of pixels equal to c.
func (p *Pixmap) Count(c Color) int {
	n := 0
	for i := 0; i < len(p.data); i += 4 {
		if p.data[i] == c.R && p.data[i+1] == c.G && p.data[i+2] == c.B {
			n++
		}
	}
	return n
}

// Image copies the pixmap into a new image.RGBA.
func (p *Pixmap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image. Alpha is discarded.
func FromImage(img image.Image, opts ...PixmapOption) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy(), opts...)

	for y := range pm.height {
		for x := range pm.width {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.Pixel(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
