package layout_test

import (
	"fmt"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/layout"
)

func ExampleArrange() {
	items := []layout.Size{
		{W: 50, H: 20},
		{W: 60, H: 20},
		{W: 60, H: 20},
	}

	arr, err := layout.Arrange(items, layout.Options{MaxWidth: 100, Spacing: 10})
	if err != nil {
		panic(err)
	}

	for i, p := range arr.Positions {
		fmt.Printf("item %d at (%.0f,%.0f)\n", i, p.X, p.Y)
	}
	fmt.Printf("bounds %.0fx%.0f\n", arr.Width, arr.Height)
	// Output:
	// item 0 at (0,0)
	// item 1 at (0,30)
	// item 2 at (70,30)
	// bounds 130x50
}

func ExampleArrange_unbounded() {
	arr, err := layout.Arrange([]layout.Size{{W: 40, H: 15}}, layout.Options{
		MaxWidth: layout.Unbounded(),
		Spacing:  10,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0fx%.0f\n", arr.Width, arr.Height)
	// Output:
	// 40x15
}
