package lines_test

import (
	"fmt"

	"github.com/katalvlaran/linetex/lines"
)

// ExampleToLaTeX renders a full line identifier as a plot-ready label.
func ExampleToLaTeX() {
	label, err := lines.ToLaTeX("h2_v0_j2__v0_j0")
	if err != nil {
		return
	}
	fmt.Println(label)
	// Output:
	// $H_2$ $\nu=0$ ($J=2$ $\to$ $J=0$)
}

// ExampleFilter keeps only the lines of the requested species.
func ExampleFilter() {
	names := []string{"co_j1__j0", "h2_v0__v1", "co_j2__j1"}
	kept, _ := lines.Filter(names, "co")
	fmt.Println(kept)
	// Output:
	// [co_j1__j0 co_j2__j1]
}
