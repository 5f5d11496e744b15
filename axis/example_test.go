// SPDX-License-Identifier: MIT
package axis_test

import (
	"fmt"

	"github.com/katalvlaran/vesselmon/axis"
)

// ExampleCompute sizes an RPM axis so the samples fill 80% of it.
func ExampleCompute() {
	rpm := []float64{420, 610, 730, 505}
	r, err := axis.Compute(rpm, axis.TrendOccupancy, axis.WithNonNegative())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("min=%.1f max=%.1f\n", r.Min, r.Max)
	// Output:
	// min=381.2 max=768.8
}

// ExampleCompute_flat shows the zero-span fallback on an all-zero series.
func ExampleCompute_flat() {
	r, _ := axis.Compute([]float64{0, 0, 0}, axis.TrendOccupancy, axis.WithNonNegative())
	fmt.Printf("min=%g max=%g\n", r.Min, r.Max)
	// Output:
	// min=0 max=1
}
