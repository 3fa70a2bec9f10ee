package ggline

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// BlendMode selects how a sink writes the colors it receives.
type BlendMode int

const (
	// BlendOver composites the incoming premultiplied color over the
	// stored pixel (Porter-Duff source-over). Anti-aliased lines look
	// correct on any background.
	BlendOver BlendMode = iota

	// BlendReplace stores the incoming color as-is. Wu's coverage-scaled
	// colors then darken toward black instead of blending with the
	// background.
	BlendReplace
)

// String returns the mode name as accepted by ParseBlendMode.
func (m BlendMode) String() string {
	switch m {
	case BlendOver:
		return "over"
	case BlendReplace:
		return "replace"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// ParseBlendMode parses "over" or "replace".
func ParseBlendMode(s string) (BlendMode, error) {
	switch s {
	case "over":
		return BlendOver, nil
	case "replace":
		return BlendReplace, nil
	default:
		return 0, fmt.Errorf("ggline: unknown blend mode %q", s)
	}
}

// Pixmap is a rectangular premultiplied RGBA pixel buffer. It implements
// Sink and image.Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
	mode   BlendMode
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Plot uses BlendOver until changed with SetBlendMode.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetBlendMode changes how Plot writes pixels.
func (p *Pixmap) SetBlendMode(m BlendMode) {
	p.mode = m
}

// BlendMode returns the current blend mode.
func (p *Pixmap) BlendMode() BlendMode {
	return p.mode
}

// offset returns the byte offset of (x, y), or -1 if it lies outside.
func (p *Pixmap) offset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return (y*p.width + x) * 4
}

// Plot implements Sink. c is treated as premultiplied; opacity is carried
// in c.A. Out-of-bounds coordinates are ignored.
func (p *Pixmap) Plot(x, y int, c RGBA, _ float64) {
	i := p.offset(x, y)
	if i < 0 {
		return
	}
	px := p.data[i : i+4 : i+4]

	if p.mode == BlendReplace {
		s := c.Premul()
		px[0], px[1], px[2], px[3] = s.R, s.G, s.B, s.A
		return
	}

	inv := 1 - clamp01(c.A)
	px[0] = to8(clamp01(c.R) + float64(px[0])/255*inv)
	px[1] = to8(clamp01(c.G) + float64(px[1])/255*inv)
	px[2] = to8(clamp01(c.B) + float64(px[2])/255*inv)
	px[3] = to8(clamp01(c.A) + float64(px[3])/255*inv)
}

// SetPixel sets a pixel to a straight-alpha color, ignoring the blend mode.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	i := p.offset(x, y)
	if i < 0 {
		return
	}
	s := c.Premultiply().Premul()
	p.data[i+0] = s.R
	p.data[i+1] = s.G
	p.data[i+2] = s.B
	p.data[i+3] = s.A
}

// GetPixel returns the straight-alpha color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	i := p.offset(x, y)
	if i < 0 || p.data[i+3] == 0 {
		return Transparent
	}
	a := float64(p.data[i+3])
	return RGBA{
		R: float64(p.data[i+0]) / a,
		G: float64(p.data[i+1]) / a,
		B: float64(p.data[i+2]) / a,
		A: a / 255,
	}
}

// Clear fills the entire pixmap with a straight-alpha color.
func (p *Pixmap) Clear(c RGBA) {
	s := c.Premultiply().Premul()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = s.R
		p.data[i+1] = s.G
		p.data[i+2] = s.B
		p.data[i+3] = s.A
	}
}

// ToImage copies the pixmap into a new image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("ggline: create %s: %w", path, err)
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("ggline: encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	i := p.offset(x, y)
	if i < 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
