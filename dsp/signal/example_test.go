package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-epicycle/dsp/signal"
)

func ExampleRegistry_Names() {
	r := signal.NewRegistry()
	for _, name := range r.Names() {
		e, _ := r.Lookup(name)
		fmt.Printf("%-8s %s\n", e.Name, e.Description)
	}

	// Output:
	// sawtooth t - floor(t)
	// sine     sin(t)
	// square   sign(sin(t))
	// triangle 1 - 4|frac(t) - 1/2|
}
