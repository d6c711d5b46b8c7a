package shapes

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its three channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// RandomColor returns a color whose channels are drawn independently and
// uniformly from [0, 255].
//
// All shapes share this policy, so it is a plain function rather than a
// method: it can be called before any shape exists.
func RandomColor(src Source) Color {
	//nolint:gosec // IntN(256) is in [0, 255]
	return Color{
		R: uint8(src.IntN(256)),
		G: uint8(src.IntN(256)),
		B: uint8(src.IntN(256)),
	}
}

// RGBA implements the color.Color interface. The alpha channel is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// FromColor converts a standard color.Color to Color, dropping alpha.
// Premultiplied channels are taken as they are.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Named looks up an SVG 1.1 color keyword such as "white" or "cornflowerblue".
// The lookup is case-insensitive.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B}, true
}
