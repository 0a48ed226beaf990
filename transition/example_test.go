package transition_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linetex/transition"
)

// ExampleToLaTeX renders a descriptor with one constant vibrational level
// and one rotational transition.
func ExampleToLaTeX() {
	label, err := transition.ToLaTeX("v0_j1__v0_j0")
	if err != nil {
		// handle ErrBadFormat / ErrAsymmetry / ErrUnrecognized
		return
	}
	fmt.Println(label)
	// Output:
	// $\nu=0$ ($J=1$ $\to$ $J=0$)
}

// ExampleToLaTeX_errors shows the sentinel-based error branching.
func ExampleToLaTeX_errors() {
	_, err := transition.ToLaTeX("v0_j1__j0")
	fmt.Println(errors.Is(err, transition.ErrAsymmetry))
	// Output:
	// true
}
