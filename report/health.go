// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/vesselmon/axis"
	"github.com/katalvlaran/vesselmon/series"
)

// HealthTitle is the title of health reports.
const HealthTitle = "船舶健康指数监测"

// Health chart series colors.
const (
	HealthNormalColor    = "#52c41a"
	HealthAnomalyColor   = "#ff4d4f"
	HealthThresholdColor = "#faad14"
)

var healthRange = axis.Range{Min: 0, Max: 1}

// Health composes the vessel health index report.
func (c *Composer) Health(in HealthInput) (*Report, error) {
	const op = "Health"

	threshold := in.Threshold
	if threshold == 0 {
		threshold = DefaultHealthThreshold
	}
	if err := validateHealth(op, in, threshold); err != nil {
		return nil, err
	}
	if len(in.NormalData) == 0 && len(in.AnomalyData) == 0 {
		return c.noData(KindHealth, HealthTitle), nil
	}

	r := newReport(KindHealth, HealthTitle)
	r.addSection(SectionStatus, healthStatus(in.Stats.Avg, threshold))
	r.addSection(SectionAnomalies, anomalyText(in, threshold))
	r.Stats = []Stat{
		{Label: "平均健康指数", Value: fixed3(in.Stats.Avg)},
		{Label: "最低健康指数", Value: fixed3(in.Stats.Min)},
		{Label: "最高健康指数", Value: fixed3(in.Stats.Max)},
		{Label: "健康阈值", Value: fixed3(threshold)},
		{Label: "异常点数", Value: count(len(in.AnomalyData))},
	}
	r.addSection(SectionStatistics, statsText(r.Stats))

	y := healthRange
	groups := []series.Group{
		{Label: "正常状态", Color: HealthNormalColor, Kind: series.Line, Symbol: "none", Data: series.Pairs(in.NormalData)},
		series.ConstantLine("健康阈值", HealthThresholdColor, timestamps(in), threshold),
	}
	r.addChart(ChartHealth, Chart{
		Title: "健康指数趋势",
		X:     Axis{Name: "时间", Type: AxisTime},
		Y:     Axis{Name: "健康指数", Type: AxisValue, Range: &y},
		Series: c.assembler.Build(groups, series.Group{
			Label:      "异常点",
			Color:      HealthAnomalyColor,
			Symbol:     "circle",
			SymbolSize: series.PointSize,
			Data:       series.Pairs(in.AnomalyData),
		}),
	})

	if in.Stats.Avg < threshold {
		c.logger.Warn("health index below threshold", "avg", in.Stats.Avg, "threshold", threshold)
	}

	return c.done(r), nil
}

// timestamps returns the sorted, distinct timestamps of normal and anomaly points.
func timestamps(in HealthInput) []float64 {
	ts := axis.Union(xs(in.NormalData), xs(in.AnomalyData))
	slices.Sort(ts)

	return slices.Compact(ts)
}

func validateHealth(op string, in HealthInput, threshold float64) error {
	if !finite(threshold) || threshold <= 0 || threshold > 1 {
		return invalid(op, "threshold", "must be within (0,1]")
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"statistics.avgHealth", in.Stats.Avg}, {"statistics.minHealth", in.Stats.Min}, {"statistics.maxHealth", in.Stats.Max}} {
		if !finite(f.v) || f.v < 0 || f.v > 1 {
			return invalid(op, f.name, "must be within [0,1]")
		}
	}
	if in.Stats.Min > in.Stats.Max {
		return invalid(op, "statistics.minHealth", "greater than maxHealth")
	}
	for _, set := range []struct {
		name string
		pts  [][2]float64
	}{{"normalData", in.NormalData}, {"anomalyData", in.AnomalyData}} {
		if err := checkPoints(op, set.name, set.pts); err != nil {
			return err
		}
		for i, p := range set.pts {
			if p[1] < 0 || p[1] > 1 {
				return invalid(op, indexed(set.name, i), "health index must be within [0,1]")
			}
		}
	}

	return nil
}

func healthStatus(avg, threshold float64) string {
	if avg >= threshold {
		return fmt.Sprintf("船舶整体健康状况良好：平均健康指数 %s，不低于阈值 %s。", fixed3(avg), fixed3(threshold))
	}

	return fmt.Sprintf("⚠️ 平均健康指数 %s 低于阈值 %s，建议尽快安排设备检查与维护。", fixed3(avg), fixed3(threshold))
}

func anomalyText(in HealthInput, threshold float64) string {
	n := len(in.AnomalyData)
	if n == 0 {
		return "监测期内未发现异常点。"
	}
	total := n + len(in.NormalData)
	text := fmt.Sprintf("监测期内共发现 %d 个异常点，占全部监测点的 %s%%。", n, fixed1(float64(n)/float64(total)*100))

	var below int
	for _, p := range in.NormalData {
		if p[1] < threshold {
			below++
		}
	}
	if below > 0 {
		text += fmt.Sprintf("另有 %d 个正常监测点低于健康阈值。", below)
	}

	return text
}
