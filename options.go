package shapes

// BoundsPolicy decides what a Pixmap does with writes outside its bounds.
type BoundsPolicy int

const (
	// BoundsClip silently drops out-of-bounds writes.
	BoundsClip BoundsPolicy = iota
	// BoundsWrap reduces coordinates modulo the pixmap size, so shapes
	// leaving one edge reappear on the opposite edge.
	BoundsWrap
)

// String returns the policy name as accepted by ParseBoundsPolicy.
func (p BoundsPolicy) String() string {
	switch p {
	case BoundsClip:
		return "clip"
	case BoundsWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParseBoundsPolicy parses "clip" or "wrap".
func ParseBoundsPolicy(s string) (BoundsPolicy, bool) {
	switch s {
	case "clip":
		return BoundsClip, true
	case "wrap":
		return BoundsWrap, true
	default:
		return BoundsClip, false
	}
}

// PixmapOption configures a Pixmap during creation.
//
// Example:
//
//	pm := shapes.NewPixmap(800, 600,
//	    shapes.WithBackground(shapes.White),
//	    shapes.WithBoundsPolicy(shapes.BoundsWrap))
type PixmapOption func(*pixmapOptions)

// pixmapOptions holds optional configuration for Pixmap creation.
type pixmapOptions struct {
	background Color
	bounds     BoundsPolicy
}

// defaultOptions returns the default pixmap options.
func defaultOptions() pixmapOptions {
	return pixmapOptions{
		background: Black,
		bounds:     BoundsClip,
	}
}

// WithBackground sets the color the pixmap is initially filled with.
func WithBackground(c Color) PixmapOption {
	return func(o *pixmapOptions) {
		o.background = c
	}
}

// WithBoundsPolicy sets how the pixmap treats out-of-bounds writes.
func WithBoundsPolicy(p BoundsPolicy) PixmapOption {
	return func(o *pixmapOptions) {
		o.bounds = p
	}
}
