package ggline

import "math"

// Wu rasterizes the segment from (x0, y0) to (x1, y1) with Xiaolin Wu's
// anti-aliased line algorithm.
//
// For every column along the dominant axis two vertically adjacent pixels
// straddling the ideal line are plotted; their opacities are split by the
// fractional distance of the line from the upper pixel and always sum to
// one in interior columns. Each plotted color is c.Coverage(opacity).
// The endpoint columns are additionally weighted by the end cap (see
// WithEndCap); with the default cap integer endpoints receive full
// coverage.
//
// Lines steeper than 45° are walked along y and emitted with the axes
// swapped back. Endpoints are ordered before any arithmetic, so reversing
// them produces the same calls.
func Wu(s Sink, x0, y0, x1, y1 int, c RGBA, opts ...Option) {
	WuSubpixel(s, float64(x0), float64(y0), float64(x1), float64(y1), c, opts...)
}

// WuSubpixel is Wu with fractional endpoint coordinates. Pixel centers sit
// on integer coordinates, so a line starting at x=0.25 gives its first
// column proportionally less coverage.
func WuSubpixel(s Sink, x0, y0, x1, y1 float64, c RGBA, opts ...Option) {
	o := applyOptions(opts)

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	w := wuPlotter{s: s, c: c, steep: steep}

	// Endpoint columns.
	xend0 := math.Round(x0)
	yend0 := y0 + gradient*(xend0-x0)
	xpxl1 := int(xend0)
	if dx == 0 && dy == 0 {
		w.column(xpxl1, yend0, o.firstGap(x0, xend0))
		return
	}

	xend1 := math.Round(x1)
	xpxl2 := int(xend1)
	if xpxl2 == xpxl1 {
		// Both ends share one column, weighted by the span they cover.
		w.column(xpxl1, yend0, clamp01(dx))
		return
	}
	yend1 := y1 + gradient*(xend1-x1)
	w.column(xpxl1, yend0, o.firstGap(x0, xend0))
	w.column(xpxl2, yend1, o.lastGap(x1, xend1))

	intery := yend0 + gradient
	for x := xpxl1 + 1; x < xpxl2; x++ {
		w.column(x, intery, 1)
		intery += gradient
	}
}

// firstGap is the end-cap weight of the column containing the first
// endpoint x, rounded to xend.
func (o options) firstGap(x, xend float64) float64 {
	if o.endCap == EndCapHalf {
		return 1 - fpart(x+0.5)
	}
	return 1 - math.Abs(xend-x)
}

// lastGap is the end-cap weight of the column containing the last
// endpoint x, rounded to xend.
func (o options) lastGap(x, xend float64) float64 {
	if o.endCap == EndCapHalf {
		return fpart(x + 0.5)
	}
	return 1 - math.Abs(xend-x)
}

// fpart returns the fractional part of x, in [0, 1).
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

// wuPlotter emits pixels in normalized x-major space.
type wuPlotter struct {
	s     Sink
	c     RGBA
	steep bool
}

// column plots the two pixels of column x straddling y, scaled by weight.
func (w wuPlotter) column(x int, y, weight float64) {
	fy := math.Floor(y)
	f := y - fy
	iy := int(fy)
	w.plot(x, iy, (1-f)*weight)
	w.plot(x, iy+1, f*weight)
}

func (w wuPlotter) plot(a, b int, alpha float64) {
	if w.steep {
		a, b = b, a
	}
	w.s.Plot(a, b, w.c.Coverage(alpha), alpha)
}
