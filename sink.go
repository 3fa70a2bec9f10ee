package ggline

// Sink receives the pixel operations produced by a rasterizer.
//
// Plot asks the sink to put color c at (x, y) with the given opacity in
// [0, 1]. Bresenham always passes the caller's color with opacity 1. Wu
// passes the color scaled by coverage (RGBA.Coverage), whose alpha equals
// opacity. How the sink stores or displays the pixel is up to it.
//
// Rasterizers call Plot sequentially from the calling goroutine, in an
// order of their choosing, and may emit zero-opacity operations.
type Sink interface {
	Plot(x, y int, c RGBA, opacity float64)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(x, y int, c RGBA, opacity float64)

// Plot calls f(x, y, c, opacity).
func (f SinkFunc) Plot(x, y int, c RGBA, opacity float64) {
	f(x, y, c, opacity)
}

// Discard is a Sink that ignores every operation. Useful for timing the
// rasterizers alone.
var Discard Sink = discard{}

type discard struct{}

func (discard) Plot(int, int, RGBA, float64) {}

// Pixel is a single recorded sink operation.
type Pixel struct {
	X, Y    int
	C       RGBA
	Opacity float64
}

// Point returns the pixel coordinate.
func (p Pixel) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Recorder is a Sink that keeps every operation in call order.
// The zero value is ready to use.
type Recorder struct {
	Pixels []Pixel
}

// Plot implements Sink.
func (r *Recorder) Plot(x, y int, c RGBA, opacity float64) {
	r.Pixels = append(r.Pixels, Pixel{X: x, Y: y, C: c, Opacity: opacity})
}

// Reset discards the recorded operations, keeping the allocated storage.
func (r *Recorder) Reset() {
	r.Pixels = r.Pixels[:0]
}

// Points returns the distinct coordinates plotted, in first-seen order.
// Zero-opacity operations are included.
func (r *Recorder) Points() []Point {
	seen := make(map[Point]struct{}, len(r.Pixels))
	pts := make([]Point, 0, len(r.Pixels))
	for _, px := range r.Pixels {
		p := px.Point()
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}
	return pts
}

// Opacity returns the sum of opacities emitted for (x, y).
func (r *Recorder) Opacity(x, y int) float64 {
	var sum float64
	for _, px := range r.Pixels {
		if px.X == x && px.Y == y {
			sum += px.Opacity
		}
	}
	return sum
}

// Has reports whether (x, y) received any operation.
func (r *Recorder) Has(x, y int) bool {
	for _, px := range r.Pixels {
		if px.X == x && px.Y == y {
			return true
		}
	}
	return false
}
