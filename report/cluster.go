// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vesselmon/axis"
	"github.com/katalvlaran/vesselmon/regime"
	"github.com/katalvlaran/vesselmon/series"
	"github.com/katalvlaran/vesselmon/telemetry"
)

// ClusterTitle is the title of cluster reports.
const ClusterTitle = "主机工况聚类分析 (K-means)"

// CenterLabel names the centroid marker series.
const CenterLabel = "聚类中心"

// Optimization thresholds, in percent of all points.
const (
	EconomicShareHigh = 50.0
	HighLoadShareHigh = 20.0
	NormalShareHigh   = 30.0
)

// Cluster composes the operating-condition clustering report.
func (c *Composer) Cluster(in ClusterInput) (*Report, error) {
	const op = "Cluster"

	if len(in.Clusters) == 0 && len(in.Result.Centroids) == 0 {
		return c.noData(KindCluster, ClusterTitle), nil
	}
	if err := c.validateCluster(op, in); err != nil {
		return nil, err
	}

	a := c.table.Assess(in.Summary, in.Result.Converged)
	if a.Provisional {
		c.logger.Warn("clustering did not converge, classification is provisional",
			"iterations", in.Result.Iterations,
			"regime", a.Regime.String(),
		)
	}

	r := newReport(KindCluster, ClusterTitle)
	r.Assessment = &a

	shares, unmapped := regimeShares(in.Clusters)

	r.addSection(SectionOverview, overviewText(a, in))
	r.addSection(SectionConvergence, convergenceText(a, in.Result))
	r.addSection(SectionDistribution, distributionText(shares, unmapped))
	r.addSection(SectionOptimization, optimizationText(shares))

	r.Stats = []Stat{
		{Label: "数据点数", Value: count(in.TotalPoints)},
		{Label: "聚类数", Value: count(len(in.Clusters))},
		{Label: "迭代次数", Value: count(in.Result.Iterations)},
		{Label: "平均转速", Value: fixed1(in.Summary.AvgRPM), Unit: unitOf(telemetry.MainEngineRPM)},
		{Label: "平均功率", Value: fixed1(in.Summary.AvgPower), Unit: unitOf(telemetry.MainEnginePower)},
		{Label: "平均油耗", Value: fixed1(in.Summary.AvgFuelFlow), Unit: unitOf(telemetry.MainEngineFuelFlow)},
	}
	r.addSection(SectionStatistics, statsText(r.Stats))

	scatter, centroids, err := c.clusterCharts(op, in)
	if err != nil {
		return nil, err
	}
	r.addChart(ChartClusters, scatter)
	r.addChart(ChartCentroids, centroids)

	return c.done(r), nil
}

func (c *Composer) validateCluster(op string, in ClusterInput) error {
	s := in.Summary
	for _, f := range []struct {
		name string
		v    float64
	}{{"avgRpm", s.AvgRPM}, {"avgPower", s.AvgPower}, {"avgFuelFlow", s.AvgFuelFlow}} {
		if !finite(f.v) {
			return invalid(op, f.name, "NaN or Inf")
		}
	}
	if in.TotalPoints < 0 {
		return invalid(op, "totalPoints", "negative")
	}
	if in.Result.Iterations < 0 {
		return invalid(op, "kmeans.iterations", "negative")
	}
	if len(in.Result.Centroids) != len(in.Clusters) {
		return invalid(op, "kmeans.centroids",
			fmt.Sprintf("%d centroids for %d clusters", len(in.Result.Centroids), len(in.Clusters)))
	}
	for i, ct := range in.Result.Centroids {
		for _, v := range ct {
			if !finite(v) {
				return invalid(op, indexed("kmeans.centroids", i), "NaN or Inf coordinate")
			}
		}
	}

	var sum float64
	for i, cl := range in.Clusters {
		field := indexed("clusterAnalysis", i)
		if err := checkPoints(op, field+".data", cl.Data); err != nil {
			return err
		}
		if !finite(cl.AvgRPM) || !finite(cl.AvgPower) {
			return invalid(op, field, "NaN or Inf average")
		}
		if !finite(cl.Percentage) || cl.Percentage < 0 || cl.Percentage > 100 {
			return invalid(op, field+".percentage", "must be within [0,100]")
		}
		sum += cl.Percentage
	}
	if math.Abs(sum-100) > c.tolerance {
		return invalid(op, "clusterAnalysis.percentage",
			fmt.Sprintf("shares sum to %s, want 100±%s", fixed1(sum), fixed1(c.tolerance)))
	}

	return nil
}

// share is an aggregated percentage for one status.
type share struct {
	status  string
	percent float64
}

// regimeShares sums cluster percentages per recognized regime; unrecognized
// statuses are kept in first-seen order.
func regimeShares(clusters []ClusterSummary) (map[regime.Regime]float64, []share) {
	shares := make(map[regime.Regime]float64)
	var unmapped []share
	pos := make(map[string]int)
	for _, cl := range clusters {
		if rg, ok := regime.ParseLabel(cl.Mode.Status); ok {
			shares[rg] += cl.Percentage
			continue
		}
		if i, ok := pos[cl.Mode.Status]; ok {
			unmapped[i].percent += cl.Percentage
			continue
		}
		pos[cl.Mode.Status] = len(unmapped)
		unmapped = append(unmapped, share{status: cl.Mode.Status, percent: cl.Percentage})
	}

	return shares, unmapped
}

func overviewText(a regime.Assessment, in ClusterInput) string {
	s := in.Summary
	text := fmt.Sprintf("整体工况：%s（平均转速 %s %s，平均功率 %s %s，平均油耗 %s %s；共 %d 个数据点，%d 个聚类）。",
		a.Regime.Label(),
		fixed1(s.AvgRPM), unitOf(telemetry.MainEngineRPM),
		fixed1(s.AvgPower), unitOf(telemetry.MainEnginePower),
		fixed1(s.AvgFuelFlow), unitOf(telemetry.MainEngineFuelFlow),
		in.TotalPoints, len(in.Clusters),
	)

	return text + "\n" + a.Regime.Recommendation()
}

func convergenceText(a regime.Assessment, res ClusteringResult) string {
	if a.Provisional {
		return fmt.Sprintf("⚠️ K-means 迭代 %d 次后仍未收敛。%s", res.Iterations, a.Caveat)
	}

	return fmt.Sprintf("K-means 经 %d 次迭代收敛，聚类结果稳定。", res.Iterations)
}

func distributionText(shares map[regime.Regime]float64, unmapped []share) string {
	var parts []string
	for _, rg := range regime.All {
		p, ok := shares[rg]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s：占比 %s%%。%s", rg.Label(), fixed1(p), rg.Recommendation()))
	}
	for _, u := range unmapped {
		name := u.status
		if name == "" {
			name = "—"
		}
		parts = append(parts, fmt.Sprintf("%s（%s）：占比 %s%%。", regime.Unknown.Label(), name, fixed1(u.percent)))
	}

	return lines(parts)
}

func optimizationText(shares map[regime.Regime]float64) string {
	var parts []string
	if p := shares[regime.Economic]; p > EconomicShareHigh {
		parts = append(parts, bullet("经济巡航工况占比 %s%%，燃油经济性良好，建议继续保持当前航速与负荷策略。", fixed1(p)))
	}
	if p := shares[regime.HighLoad]; p > HighLoadShareHigh {
		parts = append(parts, bullet("⚠️ 高负荷运行占比 %s%%，主机长期高负荷将加剧磨损与油耗，建议优化航速或调整负荷分配。", fixed1(p)))
	}
	if p := shares[regime.Normal]; p > NormalShareHigh {
		parts = append(parts, bullet("正常航行工况占比 %s%%，存在向经济巡航区间优化的空间，可适当降低转速以节省燃油。", fixed1(p)))
	}
	if len(parts) == 0 {
		return "当前工况分布均衡，暂无优化建议。"
	}

	return lines(parts)
}

func (c *Composer) clusterCharts(op string, in ClusterInput) (Chart, Chart, error) {
	var rpm, power []float64
	groups := make([]series.Group, len(in.Clusters))
	centers := make([][]float64, len(in.Clusters))
	for i, cl := range in.Clusters {
		rpm = append(rpm, xs(cl.Data)...)
		power = append(power, ys(cl.Data)...)
		groups[i] = series.Group{
			Label: clusterLabel(cl, i),
			Color: cl.Mode.Color,
			Data:  series.Pairs(cl.Data),
		}
		ct := in.Result.Centroids[i]
		centers[i] = []float64{ct[0], ct[1]}
		rpm = append(rpm, ct[0])
		power = append(power, ct[1])
	}

	xName, yName := axisName(telemetry.MainEngineRPM), axisName(telemetry.MainEnginePower)

	x, err := axis.Compute(rpm, axis.TrendOccupancy, axis.WithNonNegative())
	if err != nil {
		return Chart{}, Chart{}, reportErrorf(op, err)
	}
	y, err := axis.Compute(power, axis.TrendOccupancy, axis.WithNonNegative())
	if err != nil {
		return Chart{}, Chart{}, reportErrorf(op, err)
	}
	scatter := Chart{
		Title:  "工况聚类分布",
		X:      Axis{Name: xName, Type: AxisValue, Range: &x},
		Y:      Axis{Name: yName, Type: AxisValue, Range: &y},
		Series: c.assembler.Build(groups, series.Group{Label: CenterLabel, Data: centers}),
	}

	cx, err := axis.Compute(rpm, axis.ClusterOccupancy, axis.WithNonNegative())
	if err != nil {
		return Chart{}, Chart{}, reportErrorf(op, err)
	}
	cy, err := axis.Compute(power, axis.ClusterOccupancy, axis.WithNonNegative())
	if err != nil {
		return Chart{}, Chart{}, reportErrorf(op, err)
	}
	cgroups := make([]series.Group, len(in.Result.Centroids))
	for i, ct := range in.Result.Centroids {
		cgroups[i] = series.Group{
			Label:      fmt.Sprintf("%s %d", CenterLabel, i+1),
			Color:      in.Clusters[i].Mode.Color,
			Symbol:     series.MarkerSymbol,
			SymbolSize: series.MarkerSize,
			Data:       [][]float64{{ct[0], ct[1], ct[2]}},
		}
	}
	centroids := Chart{
		Title:  "聚类中心分布",
		X:      Axis{Name: xName, Type: AxisValue, Range: &cx},
		Y:      Axis{Name: yName, Type: AxisValue, Range: &cy},
		Series: c.assembler.Build(cgroups),
	}

	return scatter, centroids, nil
}

func clusterLabel(cl ClusterSummary, i int) string {
	if rg, ok := regime.ParseLabel(cl.Mode.Status); ok {
		return rg.Label()
	}
	if cl.Mode.Status != "" {
		return cl.Mode.Status
	}

	return fmt.Sprintf("聚类 %d", i+1)
}

func unitOf(key string) string {
	p, _ := telemetry.Lookup(key)

	return p.Unit
}

func axisName(key string) string {
	p, _ := telemetry.Lookup(key)

	return p.AxisName()
}
