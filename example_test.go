package ggline_test

import (
	"fmt"

	"github.com/gogpu/ggline"
)

func ExampleBresenham() {
	var rec ggline.Recorder
	ggline.Bresenham(&rec, 0, 0, 4, 2, ggline.Red)
	fmt.Println(rec.Points())
	// Output: [{0 0} {1 1} {2 1} {3 2} {4 2}]
}

func ExampleWu() {
	var rec ggline.Recorder
	ggline.Wu(&rec, 0, 0, 4, 1, ggline.Black)
	for _, px := range rec.Pixels {
		if px.Opacity > 0 {
			fmt.Printf("(%d,%d) %.2f\n", px.X, px.Y, px.Opacity)
		}
	}
	// Output:
	// (0,0) 1.00
	// (4,1) 1.00
	// (1,0) 0.75
	// (1,1) 0.25
	// (2,0) 0.50
	// (2,1) 0.50
	// (3,0) 0.25
	// (3,1) 0.75
}

func ExamplePixmap() {
	pm := ggline.NewPixmap(8, 8)
	pm.Clear(ggline.White)
	ggline.Wu(pm, 0, 0, 7, 0, ggline.Black)
	fmt.Println(pm.At(3, 0), pm.At(3, 1))
	// Output: {0 0 0 255} {255 255 255 255}
}
