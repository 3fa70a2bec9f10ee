package ggline

import "math"

// Fan returns n segments radiating from center, each radius pixels long
// before truncation to integer coordinates. Segment i points at angle
// 2π·i/n, measured clockwise from +X in screen space.
//
// The fan covers every octant, which makes it the standard visual and
// timing pattern for line rasterizers.
func Fan(center Point, radius, n int) []Segment {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	r := float64(radius)

	segs := make([]Segment, n)
	for i := range segs {
		angle := step * float64(i)
		segs[i] = Segment{
			A: center,
			B: center.Add(Pt(int(r*math.Cos(angle)), int(r*math.Sin(angle)))),
		}
	}
	return segs
}
