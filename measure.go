package ggline

import (
	"errors"
	"fmt"
	"time"
)

// Errors returned by Measure.
var (
	// ErrNilAlgorithm is returned when Measure is given no algorithm.
	ErrNilAlgorithm = errors.New("ggline: nil algorithm")

	// ErrNoLines is returned when a Benchmark would draw nothing.
	ErrNoLines = errors.New("ggline: benchmark has no lines")
)

// Benchmark describes the radial fan drawn by Measure.
type Benchmark struct {
	Center Point
	Radius int
	Lines  int
	Color  RGBA
}

// DefaultBenchmark returns a 1000-line fan of radius 100 around (450, 150)
// in white, which is invisible on a white background.
func DefaultBenchmark() Benchmark {
	return Benchmark{
		Center: Pt(450, 150),
		Radius: 100,
		Lines:  1000,
		Color:  White,
	}
}

// Result is the outcome of one Measure run.
type Result struct {
	Name    string
	Lines   int
	Pixels  int // sink operations issued
	Elapsed time.Duration
}

// String formats the result as "<name> took: <elapsed> for <n> lines.".
func (r Result) String() string {
	return fmt.Sprintf("%s took: %v for %d lines.", r.Name, r.Elapsed, r.Lines)
}

// PerLine returns the mean time per line.
func (r Result) PerLine() time.Duration {
	if r.Lines == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Lines)
}

// Measure draws the benchmark fan with alg into s and reports how long it
// took. A nil sink draws into Discard.
func Measure(name string, alg Algorithm, s Sink, b Benchmark) (Result, error) {
	if alg == nil {
		return Result{}, fmt.Errorf("measure %q: %w", name, ErrNilAlgorithm)
	}
	if b.Lines <= 0 {
		return Result{}, fmt.Errorf("measure %q: %w", name, ErrNoLines)
	}
	if s == nil {
		s = Discard
	}

	log := Logger()
	log.Debug("ggline: benchmark start",
		"algorithm", name,
		"center", b.Center,
		"radius", b.Radius,
		"lines", b.Lines)

	segs := Fan(b.Center, b.Radius, b.Lines)
	counter := &countingSink{next: s}

	start := time.Now()
	for _, seg := range segs {
		seg.Draw(alg, counter, b.Color)
	}
	elapsed := time.Since(start)

	res := Result{Name: name, Lines: len(segs), Pixels: counter.n, Elapsed: elapsed}
	log.Info("ggline: line benchmark",
		"algorithm", name,
		"lines", res.Lines,
		"pixels", res.Pixels,
		"elapsed", res.Elapsed)
	return res, nil
}

// countingSink forwards to next and counts operations.
type countingSink struct {
	next Sink
	n    int
}

func (c *countingSink) Plot(x, y int, col RGBA, opacity float64) {
	c.n++
	c.next.Plot(x, y, col, opacity)
}
