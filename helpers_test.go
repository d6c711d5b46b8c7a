package shapes

// recordingCanvas records every SetPixel call in order.
type recordingCanvas struct {
	pixels []Point
	colors []Color
}

func (r *recordingCanvas) SetPixel(x, y int, c Color) {
	r.pixels = append(r.pixels, Point{X: x, Y: y})
	r.colors = append(r.colors, c)
}

// set returns the distinct pixels written.
func (r *recordingCanvas) set() map[Point]bool {
	s := make(map[Point]bool, len(r.pixels))
	for _, p := range r.pixels {
		s[p] = true
	}
	return s
}

// uniformColor reports whether every write used the same color.
func (r *recordingCanvas) uniformColor() bool {
	for _, c := range r.colors {
		if c != r.colors[0] {
			return false
		}
	}
	return true
}

// seqSource replays a fixed sequence of values, cycling when exhausted.
type seqSource struct {
	vals  []uint32
	calls int
}

func (s *seqSource) next() uint32 {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v
}

func (s *seqSource) Uint32() uint32 { return s.next() }

func (s *seqSource) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}
	return int(s.next() % uint32(n))
}
