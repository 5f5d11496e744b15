// SPDX-License-Identifier: MIT
package report_test

import (
	"fmt"

	"github.com/katalvlaran/vesselmon/report"
	"github.com/katalvlaran/vesselmon/telemetry"
)

// ExampleCluster composes a two-cluster report and prints the overall regime.
func ExampleCluster() {
	r, err := report.Cluster(report.ClusterInput{
		Result: report.ClusteringResult{
			Iterations: 8,
			Converged:  true,
			Centroids:  [][3]float64{{520, 4.1, 85}, {300, 1.5, 30}},
		},
		Clusters: []report.ClusterSummary{
			{ClusterID: 0, Mode: report.Mode{Status: "🟢 经济巡航"}, Data: [][2]float64{{520, 4.1}}, AvgRPM: 520, AvgPower: 4.1, Percentage: 70},
			{ClusterID: 1, Mode: report.Mode{Status: "⚪ 停机待命"}, Data: [][2]float64{{300, 1.5}}, AvgRPM: 300, AvgPower: 1.5, Percentage: 30},
		},
		Summary:     telemetry.Summary{AvgRPM: 520, AvgPower: 4.1, AvgFuelFlow: 85},
		TotalPoints: 2,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Assessment.Regime)
	fmt.Println(r.Sections[report.SectionOptimization])
	// Output:
	// Economic
	// • 经济巡航工况占比 70.0%，燃油经济性良好，建议继续保持当前航速与负荷策略。
}

// ExampleSfoc prints the statistics table of an SFOC report.
func ExampleSfoc() {
	r, err := report.Sfoc(report.SfocStatistics{
		ScatterData: [][2]float64{{480, 182}, {520, 178}},
		AvgSfoc:     180,
		MinSfoc:     176,
		MaxSfoc:     186,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Tier.Label())
	fmt.Println(r.Sections[report.SectionStatistics])
	// Output:
	// 良好
	// 平均转速：500.0 rpm
	// 平均SFOC：180.0 g/kWh
	// 最低SFOC：176.0 g/kWh
	// 最高SFOC：186.0 g/kWh
	// SFOC波动范围：10.0 g/kWh
}
