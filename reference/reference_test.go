package reference

import (
	"math"
	"testing"

	"github.com/gogpu/ggline"
)

func TestRegistered(t *testing.T) {
	alg, ok := ggline.Lookup(Name)
	if !ok || alg == nil {
		t.Fatalf("Lookup(%q) = _, %v; want registered algorithm", Name, ok)
	}
}

func TestLineHorizontal(t *testing.T) {
	var rec ggline.Recorder
	Line(&rec, 0, 0, 4, 0, ggline.Black)

	// The stroke spans the pixel centers, so interior pixels are fully
	// covered and the two end pixels roughly half.
	for x := 1; x <= 3; x++ {
		if got := rec.Opacity(x, 0); got < 0.98 {
			t.Errorf("Opacity(%d, 0) = %v, want ~1", x, got)
		}
	}
	for _, x := range []int{0, 4} {
		got := rec.Opacity(x, 0)
		if got < 0.4 || got > 0.6 {
			t.Errorf("end Opacity(%d, 0) = %v, want ~0.5", x, got)
		}
	}
	for _, px := range rec.Pixels {
		if px.Y != 0 && px.Opacity > 0.02 {
			t.Errorf("unexpected coverage %v at (%d, %d)", px.Opacity, px.X, px.Y)
		}
		if px.X < 0 || px.X > 4 {
			t.Errorf("pixel (%d, %d) outside the segment", px.X, px.Y)
		}
	}
}

func TestLineSinglePixel(t *testing.T) {
	var rec ggline.Recorder
	Line(&rec, 7, -3, 7, -3, ggline.Red)

	if got := rec.Opacity(7, -3); got < 0.98 {
		t.Errorf("Opacity(7, -3) = %v, want ~1", got)
	}
	for _, px := range rec.Pixels {
		if (px.X != 7 || px.Y != -3) && px.Opacity > 0.02 {
			t.Errorf("unexpected coverage %v at (%d, %d)", px.Opacity, px.X, px.Y)
		}
	}
}

func TestLineCoversEndpointsInEveryOctant(t *testing.T) {
	for _, seg := range ggline.Fan(ggline.Pt(20, 20), 15, 16) {
		var rec ggline.Recorder
		seg.Draw(Line, &rec, ggline.Black)
		for _, p := range []ggline.Point{seg.A, seg.B} {
			if rec.Opacity(p.X, p.Y) <= 0 {
				t.Errorf("%v: endpoint %v not covered", seg, p)
			}
		}
		for _, px := range rec.Pixels {
			if want := ggline.Black.Coverage(px.Opacity); px.C != want {
				t.Errorf("%v: color %+v, want %+v", seg, px.C, want)
			}
		}
	}
}

func TestLineStripsJoin(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"shallow", 0, 0, 300, 100},
		{"steep", 0, 0, 100, 300},
		{"shallow reversed", 300, 100, 0, 0},
		{"negative", -150, 40, 150, -60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec ggline.Recorder
			Line(&rec, tt.x0, tt.y0, tt.x1, tt.y1, ggline.Black)

			if n := len(rec.Points()); n != len(rec.Pixels) {
				t.Fatalf("%d plots for %d pixels, want one plot per pixel", len(rec.Pixels), n)
			}

			// Away from the caps, each cross-section along the major axis
			// holds the stroke's width over the cosine of its angle.
			dx, dy := tt.x1-tt.x0, tt.y1-tt.y0
			steep := abs(dy) > abs(dx)
			lo, hi := min(tt.x0, tt.x1), max(tt.x0, tt.x1)
			if steep {
				lo, hi = min(tt.y0, tt.y1), max(tt.y0, tt.y1)
			}
			major, minor := float64(abs(dx)), float64(abs(dy))
			if steep {
				major, minor = minor, major
			}
			want := math.Hypot(major, minor) / major

			sums := make(map[int]float64)
			for _, px := range rec.Pixels {
				if steep {
					sums[px.Y] += px.Opacity
				} else {
					sums[px.X] += px.Opacity
				}
			}
			for m := lo + 1; m < hi; m++ {
				if got := sums[m]; math.Abs(got-want) > 0.02 {
					t.Errorf("cross-section %d covers %.4f, want %.4f", m, got, want)
				}
			}
		})
	}
}
