// SPDX-License-Identifier: MIT
package series_test

import (
	"fmt"

	"github.com/katalvlaran/vesselmon/series"
)

// ExampleBuild shows palette fallback and marker placement.
func ExampleBuild() {
	out := series.Build(
		[]series.Group{
			{Label: "🟢 经济巡航", Color: "#52c41a", Data: [][]float64{{500, 4}}},
			{Label: "🔵 正常航行", Data: [][]float64{{700, 6}}},
		},
		series.Group{Label: "聚类中心", Data: [][]float64{{500, 4}, {700, 6}}},
	)
	for _, s := range out {
		fmt.Println(s.Name, s.Color, s.Z, len(s.Data))
	}
	// Output:
	// 🟢 经济巡航 #52c41a 2 1
	// 🔵 正常航行 #52c41a 2 1
	// 聚类中心 #722ed1 10 2
}
