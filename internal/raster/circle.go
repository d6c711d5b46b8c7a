package raster

// Circle rasterizes a circle of radius r around (cx, cy) with the midpoint
// algorithm, generating one octant and mirroring it into the other seven.
//
// Coincident points (on the axes and on the diagonals) are plotted more than
// once; plot must tolerate repeated writes. A radius of zero plots the
// center eight times, and a negative radius plots nothing.
func Circle(cx, cy, r int, plot func(x, y int)) {
	x, y := r, 0
	err := 0

	for x >= y {
		plot(cx+x, cy+y)
		plot(cx+y, cy+x)
		plot(cx-y, cy+x)
		plot(cx-x, cy+y)
		plot(cx-x, cy-y)
		plot(cx-y, cy-x)
		plot(cx+y, cy-x)
		plot(cx+x, cy-y)

		y++
		if err <= 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// CircleLen returns the number of plot calls Circle makes for radius r.
func CircleLen(r int) int {
	n := 0
	Circle(0, 0, r, func(int, int) { n++ })
	return n
}
