// Package label draws short captions onto images using the basicfont face.
package label

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// face is the fixed 7x13 bitmap face used for every caption.
var face = basicfont.Face7x13

// cases.Caser is stateful, so Title builds a fresh one per call.
var titleTag = language.English

// Height is the line height of a caption in pixels.
const Height = 13

// Draw renders text onto dst with its baseline at (x, y).
func Draw(dst draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Width returns the advance of text in pixels.
func Width(text string) int {
	return font.MeasureString(face, text).Ceil()
}

// Title capitalizes a shape kind for display, e.g. "random circles" -> "Random Circles".
func Title(kind string) string {
	return cases.Title(titleTag).String(kind)
}
