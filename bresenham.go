package ggline

import "math"

// Bresenham rasterizes the segment from (x1, y1) to (x2, y2) with integer
// error accumulation, plotting every pixel with color c at opacity 1.
//
// The dominant axis is x when |dx| >= |dy| and y otherwise. Each step along
// it adds the minor-axis delta to an integer error term; once the error
// reaches half a pixel the minor axis steps by one and the error drops by a
// whole pixel. The loop contains no division and no floating point.
//
// Exactly max(|dx|, |dy|)+1 pixels are plotted, both endpoints included.
// Identical endpoints plot a single pixel. The segment is always walked
// from the endpoint with the smaller major-axis coordinate, so reversing
// the endpoints plots the same pixels. See WithTieBreak for exact ties.
//
// Coordinates must lie within ±MaxCoord; beyond that the deltas overflow.
func Bresenham(s Sink, x1, y1, x2, y2 int, c RGBA, opts ...Option) {
	o := applyOptions(opts)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	if dx >= dy {
		if x1 > x2 {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
		yStep := sign(y1, y2)
		y, err := y1, 0
		for x := x1; x != x2; x++ {
			s.Plot(x, y, c, 1)
			err += dy
			if o.crossed(err, dx) {
				y += yStep
				err -= dx
			}
		}
	} else {
		if y1 > y2 {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
		xStep := sign(x1, x2)
		x, err := x1, 0
		for y := y1; y != y2; y++ {
			s.Plot(x, y, c, 1)
			err += dx
			if o.crossed(err, dy) {
				x += xStep
				err -= dy
			}
		}
	}

	// The loops stop one short of the far endpoint.
	s.Plot(x2, y2, c, 1)
}

// MaxCoord bounds the coordinates Bresenham accepts, so that every delta
// and error term fits in an int.
const MaxCoord = math.MaxInt / 4

// crossed reports whether an error of err/major pixels has reached the
// midpoint between the current minor-axis pixel and the next one. The
// halves are compared directly so err is never doubled.
func (o options) crossed(err, major int) bool {
	if o.tie == TieHold {
		return err > major/2
	}
	return err >= major-major/2
}
