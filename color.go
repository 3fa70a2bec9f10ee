package ggline

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
//
// Colors are values owned by the caller. The rasterizers never modify one;
// Wu derives scaled copies with Coverage.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to a straight-alpha color.NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Premul converts RGBA to color.RGBA, treating the components as already
// premultiplied. Sinks use this for the colors they receive from a
// rasterizer.
func (c RGBA) Premul() color.RGBA {
	return color.RGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint32
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			n, ok := parseHex(hex[i : i+1])
			if !ok {
				return Black
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			n, ok := parseHex(hex[i : i+2])
			if !ok {
				return Black
			}
			v[i/2] = n
		}
	default:
		return Black
	}

	return RGBA{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
		A: float64(v[3]) / 255,
	}
}

// parseHex parses one or two hex digits.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// Coverage returns the color scaled by a coverage value in [0, 1], with the
// coverage itself as alpha: {R*alpha, G*alpha, B*alpha, alpha}.
//
// The receiver's own alpha is not consulted. The result is a premultiplied
// color that is only correct when composited with source-over; written
// as-is onto a background it darkens toward black.
func (c RGBA) Coverage(alpha float64) RGBA {
	return RGBA{
		R: c.R * alpha,
		G: c.G * alpha,
		B: c.B * alpha,
		A: alpha,
	}
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// to8 converts a [0, 1] component to a rounded byte.
func to8(x float64) uint8 {
	return uint8(clamp255(x*255 + 0.5))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Purple      = Hex("#800080")
	Transparent = RGBA{}
)
