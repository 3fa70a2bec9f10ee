package main

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggline"
)

func TestRender(t *testing.T) {
	img, err := render(300, 100, 8, 30, ggline.BlendOver)
	if err != nil {
		t.Fatalf("render() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 100 {
		t.Fatalf("bounds = %v", b)
	}

	// The first spoke of each fan points right from its panel center.
	white := color.RGBA{255, 255, 255, 255}
	for i, want := range []color.RGBA{{0, 0, 0, 255}, {255, 0, 0, 255}, {128, 0, 128, 255}} {
		got := img.RGBAAt(100*i+50+15, 50)
		if got == white {
			t.Errorf("panel %d: spoke pixel is background", i)
		}
		if i > 0 && got != want {
			t.Errorf("panel %d: spoke pixel = %v, want %v", i, got, want)
		}
	}
	if got := img.RGBAAt(299, 99); got != white {
		t.Errorf("corner = %v, want white background", got)
	}
}

func TestSavePNG(t *testing.T) {
	img, err := render(90, 30, 4, 10, ggline.BlendReplace)
	if err != nil {
		t.Fatal(err)
	}
	if err := savePNG(filepath.Join(t.TempDir(), "out.png"), img); err != nil {
		t.Fatalf("savePNG() = %v", err)
	}
	if err := savePNG(filepath.Join(t.TempDir(), "no", "out.png"), img); err == nil {
		t.Error("savePNG() into a missing directory should fail")
	}
}

func TestRunBenchmarks(t *testing.T) {
	if err := runBenchmarks(16, 10); err != nil {
		t.Fatalf("runBenchmarks() = %v", err)
	}
}
