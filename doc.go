// Package ggline rasterizes line segments into pixel operations.
//
// # Overview
//
// ggline converts a segment between two integer pixel coordinates into a
// sequence of calls against a [Sink], the one capability the caller has to
// provide. Two algorithms are available:
//
//   - [Bresenham]: integer error accumulation, one fully opaque pixel per
//     step along the dominant axis.
//   - [Wu]: Xiaolin Wu's anti-aliased line, splitting coverage between the
//     two pixels that straddle the ideal line in every column.
//
// # Quick Start
//
//	import "github.com/gogpu/ggline"
//
//	pm := ggline.NewPixmap(300, 300)
//	pm.Clear(ggline.White)
//
//	ggline.Bresenham(pm, 10, 10, 290, 120, ggline.Red)
//	ggline.Wu(pm, 10, 40, 290, 150, ggline.Purple)
//
//	_ = pm.SavePNG("lines.png")
//
// # Sinks
//
// A [Sink] receives a pixel coordinate, a color and an opacity. Bresenham
// always passes the caller's color with opacity 1. Wu passes the color
// scaled by coverage (see [RGBA.Coverage]) together with the coverage.
// [Pixmap] and [ImageSink] composite those colors as premultiplied sources;
// [Recorder] keeps every call for inspection.
//
// # Algorithms as values
//
// [Algorithm] is a plain function value so rasterizers can be passed to
// harnesses such as [Measure]. Algorithms are also registered by name:
// "bresenham" and "wu" are always available, and importing
// github.com/gogpu/ggline/reference adds "reference", a vector-filled
// one-pixel stroke built on golang.org/x/image/vector.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Pixels
// outside a sink's bounds are the sink's concern; the rasterizers emit
// every coordinate on the line.
package ggline

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
