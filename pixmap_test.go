package ggline

import (
	"errors"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapPlotOver(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(White)

	pm.Plot(2, 2, Red, 1)
	if got := pm.At(2, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("opaque plot: got %v", got)
	}

	pm.Plot(3, 3, Black.Coverage(0.5), 0.5)
	got := pm.At(3, 3).(color.RGBA)
	if got.A != 255 || !near8(got.R, 128) || got.R != got.G || got.G != got.B {
		t.Errorf("half coverage over white: got %v, want gray ~128", got)
	}
}

func TestPixmapPlotReplace(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(White)
	pm.SetBlendMode(BlendReplace)
	if pm.BlendMode() != BlendReplace {
		t.Fatalf("BlendMode() = %v, want replace", pm.BlendMode())
	}

	pm.Plot(3, 3, Black.Coverage(0.5), 0.5)
	if got, want := pm.At(3, 3), (color.RGBA{0, 0, 0, 128}); got != want {
		t.Errorf("replace: got %v, want %v", got, want)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)
	original := append([]uint8(nil), pm.Data()...)

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {-100, 100}} {
		pm.Plot(p.X, p.Y, Red, 1)
		pm.SetPixel(p.X, p.Y, Red)
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("GetPixel out of bounds = %+v, want Transparent", got)
	}
	if got := pm.At(9, 9); got != (color.RGBA{}) {
		t.Errorf("At out of bounds = %v, want zero", got)
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(2, 2)
	c := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	pm.SetPixel(1, 0, c)

	if got := pm.GetPixel(1, 0); !rgbaNear(got, c, 2.0/255) {
		t.Errorf("GetPixel = %+v, want %+v", got, c)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("untouched pixel = %+v, want Transparent", got)
	}
	if pm.Width() != 2 || pm.Height() != 2 || pm.Bounds().Dx() != 2 {
		t.Error("unexpected dimensions")
	}
	if pm.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() should be RGBAModel")
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(White)
	Bresenham(pm, 0, 0, 15, 15, Red)

	path := filepath.Join(t.TempDir(), "line.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	r, g, b, _ := img.At(7, 7).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("decoded diagonal pixel = (%d, %d, %d), want red", r, g, b)
	}
}

func TestPixmapSavePNGError(t *testing.T) {
	pm := NewPixmap(1, 1)
	err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("SavePNG() = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestParseBlendMode(t *testing.T) {
	for _, m := range []BlendMode{BlendOver, BlendReplace} {
		got, err := ParseBlendMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseBlendMode("multiply"); err == nil {
		t.Error("ParseBlendMode(multiply) should fail")
	}
	if s := BlendMode(7).String(); s != "BlendMode(7)" {
		t.Errorf("String() = %q", s)
	}
}
