// Package raster provides the integer rasterizers behind the shapes package.
// Both rasterizers report pixels through a plot callback and never clip:
// bounds handling is the job of whatever the callback writes to.
package raster

import "math"

// Line walks a digital differential analyzer from (x0, y0) towards (x1, y1)
// and calls plot once per step.
//
// The dominant axis advances by exactly one pixel per step while the other
// axis advances fractionally; positions are rounded half away from zero.
// The walk takes max(|dx|, |dy|) steps starting at (x0, y0), so the end
// pixel itself is not plotted. A degenerate line (equal endpoints) plots
// its single point once.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	step := math.Max(math.Abs(dx), math.Abs(dy))

	if step == 0 {
		plot(x0, y0)
		return
	}

	xInc := dx / step
	yInc := dy / step

	x := float64(x0)
	y := float64(y0)
	for range int(step) {
		plot(int(math.Round(x)), int(math.Round(y)))
		x += xInc
		y += yInc
	}
}

// LineLen returns the number of plot calls Line makes for the given endpoints.
func LineLen(x0, y0, x1, y1 int) int {
	n := max(abs(x1-x0), abs(y1-y0))
	if n == 0 {
		return 1
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
