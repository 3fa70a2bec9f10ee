// Command linedemo renders radial line fans with every registered
// algorithm side by side and optionally times them.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ggline"
	_ "github.com/gogpu/ggline/reference"
)

// panel is one fan in the scene.
type panel struct {
	label     string
	algorithm string
	color     ggline.RGBA
}

var panels = []panel{
	{label: "Reference", algorithm: "reference", color: ggline.Black},
	{label: "Bresenham", algorithm: "bresenham", color: ggline.Red},
	{label: "Wu", algorithm: "wu", color: ggline.Purple},
}

func main() {
	var (
		width      = flag.Int("width", 900, "image width")
		height     = flag.Int("height", 300, "image height")
		output     = flag.String("output", "lines.png", "output file")
		lines      = flag.Int("lines", 20, "lines per fan")
		radius     = flag.Int("radius", 100, "fan radius in pixels")
		blend      = flag.String("blend", "over", "pixel blending: over or replace")
		bench      = flag.Bool("bench", false, "time every registered algorithm")
		benchLines = flag.Int("bench-lines", 1000, "lines per benchmark fan")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mode, err := ggline.ParseBlendMode(*blend)
	if err != nil {
		log.Fatalf("Invalid -blend: %v", err)
	}

	img, err := render(*width, *height, *lines, *radius, mode)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)

	if *bench {
		if err := runBenchmarks(*benchLines, *radius); err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	}
}

// render draws one fan per panel on a white background, each centered in
// its own column, and labels the panels.
func render(w, h, lines, radius int, mode ggline.BlendMode) (*image.RGBA, error) {
	pm := ggline.NewPixmap(w, h)
	pm.Clear(ggline.White)
	pm.SetBlendMode(mode)

	colW := w / len(panels)
	for i, p := range panels {
		alg, ok := ggline.Lookup(p.algorithm)
		if !ok {
			return nil, fmt.Errorf("algorithm %q not registered", p.algorithm)
		}
		center := ggline.Pt(colW*i+colW/2, h/2)
		for _, seg := range ggline.Fan(center, radius, lines) {
			seg.Draw(alg, pm, p.color)
		}
	}

	img := pm.ToImage()
	for i, p := range panels {
		drawLabel(img, colW*i+8, 16, p.label)
	}
	return img, nil
}

func drawLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// runBenchmarks times every registered algorithm on the same fan, drawing
// into an off-screen pixmap so sink cost is included.
func runBenchmarks(lines, radius int) error {
	b := ggline.DefaultBenchmark()
	b.Lines = lines
	b.Radius = radius

	p := message.NewPrinter(language.English)
	for _, name := range ggline.Algorithms() {
		alg, _ := ggline.Lookup(name)
		pm := ggline.NewPixmap(b.Center.X*2, b.Center.Y*2)
		res, err := ggline.Measure(name, alg, pm, b)
		if err != nil {
			return err
		}
		p.Printf("%s took: %d µs for %d lines.\n", res.Name, res.Elapsed.Microseconds(), res.Lines)
	}
	return nil
}
