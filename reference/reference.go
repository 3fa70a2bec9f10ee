// Package reference registers a vector-filled line as the "reference"
// algorithm.
//
// The reference line is what a canvas library draws for a one-pixel-wide
// stroke: the segment between the two pixel centers is widened to a quad
// and filled with golang.org/x/image/vector, which computes exact area
// coverage. Comparing it with Bresenham and Wu shows what the cheaper
// algorithms approximate.
//
// Usage:
//
//	import _ "github.com/gogpu/ggline/reference" // enable "reference"
package reference

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggline"
)

// Name is the registry name of the reference algorithm.
const Name = "reference"

// strip is the length of one rasterized piece along the major axis.
const strip = 64

func init() {
	ggline.Register(Name, Line)
}

// Line rasterizes a one-pixel-wide butt-capped stroke from the center of
// pixel (x0, y0) to the center of pixel (x1, y1). Every pixel with
// non-zero coverage is plotted once with c.Coverage(coverage). Identical
// endpoints fill that single pixel.
//
// The stroke is filled in strips of 64 pixels along the dominant axis, each
// only as wide as the line within it, so memory stays bounded by the strip
// size rather than the line's bounding box.
func Line(s ggline.Sink, x0, y0, x1, y1 int, c ggline.RGBA) {
	q := newQuad(x0, y0, x1, y1)

	// One pixel of margin holds the half-width on every side.
	bounds := image.Rect(min(x0, x1)-1, min(y0, y1)-1, max(x0, x1)+2, max(y0, y1)+2)

	if abs(x1-x0) >= abs(y1-y0) {
		for lo := bounds.Min.X; lo < bounds.Max.X; lo += strip {
			hi := min(lo+strip, bounds.Max.X)
			ylo, yhi := minorSpan(x0, y0, x1, y1, lo, hi)
			q.fill(s, image.Rect(lo, ylo, hi, yhi).Intersect(bounds), c)
		}
		return
	}
	for lo := bounds.Min.Y; lo < bounds.Max.Y; lo += strip {
		hi := min(lo+strip, bounds.Max.Y)
		xlo, xhi := minorSpan(y0, x0, y1, x1, lo, hi)
		q.fill(s, image.Rect(xlo, lo, xhi, hi).Intersect(bounds), c)
	}
}

// minorSpan returns the minor-axis pixel range [lo, hi) that the stroke
// from (a0, b0) to (a1, b1) can touch while the major axis runs over
// [from, to). a is the major axis.
func minorSpan(a0, b0, a1, b1, from, to int) (int, int) {
	if a0 == a1 {
		return min(b0, b1) - 1, max(b0, b1) + 2
	}
	lo, hi := min(a0, a1), max(a0, a1)
	at := func(a int) float64 {
		a = max(lo, min(hi, a))
		return float64(b0) + float64(a-a0)*float64(b1-b0)/float64(a1-a0)
	}
	m, n := at(from), at(to)
	if m > n {
		m, n = n, m
	}
	return int(math.Floor(m)) - 1, int(math.Ceil(n)) + 2
}

// quad is the stroke outline in pixel space.
type quad [4][2]float32

func newQuad(x0, y0, x1, y1 int) quad {
	ax, ay := float32(x0)+0.5, float32(y0)+0.5
	bx, by := float32(x1)+0.5, float32(y1)+0.5

	dx, dy := bx-ax, by-ay
	if dx == 0 && dy == 0 {
		return quad{{ax - 0.5, ay - 0.5}, {ax + 0.5, ay - 0.5}, {ax + 0.5, ay + 0.5}, {ax - 0.5, ay + 0.5}}
	}
	l := float32(math.Hypot(float64(dx), float64(dy)))
	nx, ny := -dy/l*0.5, dx/l*0.5
	return quad{{ax + nx, ay + ny}, {bx + nx, by + ny}, {bx - nx, by - ny}, {ax - nx, ay - ny}}
}

// fill rasterizes the part of q inside r and plots its covered pixels.
func (q quad) fill(s ggline.Sink, r image.Rectangle, c ggline.RGBA) {
	if r.Empty() {
		return
	}
	w, h := r.Dx(), r.Dy()
	ox, oy := float32(r.Min.X), float32(r.Min.Y)

	z := vector.NewRasterizer(w, h)
	z.MoveTo(q[0][0]-ox, q[0][1]-oy)
	for _, p := range q[1:] {
		z.LineTo(p[0]-ox, p[1]-oy)
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := range h {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range row {
			if a == 0 {
				continue
			}
			alpha := float64(a) / 255
			s.Plot(x+r.Min.X, y+r.Min.Y, c.Coverage(alpha), alpha)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
