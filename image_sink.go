package ggline

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageSink adapts any draw.Image to the Sink interface, so lines can be
// rasterized straight into an *image.RGBA, an *image.NRGBA, or a pixmap
// from another library.
type ImageSink struct {
	dst  draw.Image
	op   draw.Op
	unit image.Uniform
}

// NewImageSink returns a Sink writing into dst with the given blend mode.
// BlendOver maps to draw.Over and BlendReplace to draw.Src. Points outside
// dst.Bounds() are ignored.
func NewImageSink(dst draw.Image, mode BlendMode) *ImageSink {
	op := draw.Over
	if mode == BlendReplace {
		op = draw.Src
	}
	return &ImageSink{dst: dst, op: op}
}

// Image returns the destination image.
func (s *ImageSink) Image() draw.Image {
	return s.dst
}

// Plot implements Sink. c is treated as premultiplied.
func (s *ImageSink) Plot(x, y int, c RGBA, _ float64) {
	if !(image.Point{X: x, Y: y}).In(s.dst.Bounds()) {
		return
	}
	s.unit.C = c.Premul()
	draw.Draw(s.dst, image.Rect(x, y, x+1, y+1), &s.unit, image.Point{}, s.op)
}
