// SPDX-License-Identifier: MIT
package efficiency_test

import (
	"fmt"

	"github.com/katalvlaran/vesselmon/efficiency"
)

func ExampleGrade() {
	for _, sfoc := range []float64{165, 170, 195, 220} {
		fmt.Println(sfoc, efficiency.Grade(sfoc))
	}
	// Output:
	// 165 Excellent
	// 170 Good
	// 195 Medium
	// 220 Poor
}
