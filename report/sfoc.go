// SPDX-License-Identifier: MIT

package report

import (
	"github.com/katalvlaran/vesselmon/axis"
	"github.com/katalvlaran/vesselmon/series"
	"github.com/katalvlaran/vesselmon/telemetry"
)

// SfocTitle is the title of SFOC reports.
const SfocTitle = "燃油效率分析 (SFOC)"

// SFOC insight thresholds.
const (
	// SfocRangeHigh is the min-to-max spread above which variance is flagged.
	SfocRangeHigh = 50.0
	// SfocRangeLow is the spread below which operation is called stable.
	SfocRangeLow = 20.0
	// LowBandFactor bounds the low-RPM band: rpm < LowBandFactor·avgRpm.
	LowBandFactor = 0.8
	// HighBandFactor bounds the high-RPM band: rpm > HighBandFactor·avgRpm.
	HighBandFactor = 1.2
	// BandExcessFactor flags a band whose mean SFOC exceeds avgSfoc by this factor.
	BandExcessFactor = 1.1
)

// SFOC chart series colors.
const (
	SfocScatterColor = "#1890ff"
	SfocTrendColor   = "#ff4d4f"
)

const sfocUnit = "g/kWh"

// StableText is the insight emitted when no variance or band bullet triggers.
const StableText = "主机运行稳定，无异常。"

// Sfoc composes the fuel-efficiency report.
func (c *Composer) Sfoc(in SfocStatistics) (*Report, error) {
	const op = "Sfoc"

	if err := validateSfoc(op, in); err != nil {
		return nil, err
	}
	if len(in.ScatterData) == 0 {
		return c.noData(KindSfoc, SfocTitle), nil
	}

	rpm := xs(in.ScatterData)
	avgRPM := mean(rpm)
	spread := in.MaxSfoc - in.MinSfoc
	if !finite(spread) {
		return nil, invalid(op, "statistics", errOverflow)
	}
	// avgRpm·HighBandFactor is printed in the high band bullet.
	if !finite(avgRPM * HighBandFactor) {
		return nil, invalid(op, "scatterData", errOverflow)
	}
	low, high := bandMeans(in, avgRPM)
	if !finite(low) || !finite(high) {
		return nil, invalid(op, "scatterData", errOverflow)
	}
	tier := c.cutoffs.Grade(in.AvgSfoc)

	r := newReport(KindSfoc, SfocTitle)
	r.Tier = tier
	r.addSection(SectionEfficiency, tier.Sentence(in.AvgSfoc))
	r.addSection(SectionInsights, sfocInsights(in, avgRPM, spread, low, high))

	rpmUnit := unitOf(telemetry.MainEngineRPM)
	r.Stats = []Stat{
		{Label: "平均转速", Value: fixed1(avgRPM), Unit: rpmUnit},
		{Label: "平均SFOC", Value: fixed1(in.AvgSfoc), Unit: sfocUnit},
		{Label: "最低SFOC", Value: fixed1(in.MinSfoc), Unit: sfocUnit},
		{Label: "最高SFOC", Value: fixed1(in.MaxSfoc), Unit: sfocUnit},
		{Label: "SFOC波动范围", Value: fixed1(spread), Unit: sfocUnit},
	}
	r.addSection(SectionStatistics, statsText(r.Stats))

	x, err := axis.Compute(rpm, axis.TrendOccupancy, axis.WithNonNegative())
	if err != nil {
		return nil, reportErrorf(op, err)
	}
	y, err := axis.Compute(ys(in.ScatterData), axis.TrendOccupancy, axis.WithNonNegative())
	if err != nil {
		return nil, reportErrorf(op, err)
	}
	r.addChart(ChartSfoc, Chart{
		Title: "转速-SFOC 关系",
		X:     Axis{Name: axisName(telemetry.MainEngineRPM), Type: AxisValue, Range: &x},
		Y:     Axis{Name: "SFOC (" + sfocUnit + ")", Type: AxisValue, Range: &y},
		Series: c.assembler.Build([]series.Group{
			{Label: "实际数据", Color: SfocScatterColor, SymbolSize: 6, Data: series.Pairs(in.ScatterData)},
			{Label: "趋势线", Color: SfocTrendColor, Kind: series.Line, Symbol: "none", Smooth: true, Data: series.Pairs(in.LineData)},
		}),
	})

	c.logger.Debug("sfoc graded", "tier", tier.String(), "avgSfoc", in.AvgSfoc)

	return c.done(r), nil
}

func validateSfoc(op string, in SfocStatistics) error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"statistics.avgSfoc", in.AvgSfoc}, {"statistics.minSfoc", in.MinSfoc}, {"statistics.maxSfoc", in.MaxSfoc}} {
		if !finite(f.v) {
			return invalid(op, f.name, "NaN or Inf")
		}
	}
	if in.MinSfoc > in.MaxSfoc {
		return invalid(op, "statistics.minSfoc", "greater than maxSfoc")
	}
	if err := checkPoints(op, "scatterData", in.ScatterData); err != nil {
		return err
	}

	return checkPoints(op, "lineData", in.LineData)
}

func sfocInsights(in SfocStatistics, avgRPM, spread, low, high float64) string {
	var parts []string
	switch {
	case spread > SfocRangeHigh:
		parts = append(parts, bullet("SFOC波动范围较大（%s %s），建议检查负荷稳定性与燃油供给系统。", fixed1(spread), sfocUnit))
	case spread < SfocRangeLow:
		parts = append(parts, bullet("SFOC波动范围较小（%s %s），主机运行稳定。", fixed1(spread), sfocUnit))
	}

	limit := in.AvgSfoc * BandExcessFactor
	if low > limit {
		parts = append(parts, bullet("低转速区间（< %s rpm）平均SFOC为 %s %s，明显高于整体水平，建议检查喷油正时与主机-螺旋桨匹配。",
			fixed(avgRPM*LowBandFactor, 0), fixed1(low), sfocUnit))
	}
	if high > limit {
		parts = append(parts, bullet("高转速区间（> %s rpm）平均SFOC为 %s %s，明显高于整体水平，建议关注主机热负荷与超负荷运行风险。",
			fixed(avgRPM*HighBandFactor, 0), fixed1(high), sfocUnit))
	}
	if len(parts) == 0 {
		return StableText
	}

	return lines(parts)
}

// bandMeans returns the mean SFOC of the low and high RPM bands; an empty
// band yields the overall average.
func bandMeans(in SfocStatistics, avgRPM float64) (low, high float64) {
	var lows, highs []float64
	for _, p := range in.ScatterData {
		switch {
		case p[0] < avgRPM*LowBandFactor:
			lows = append(lows, p[1])
		case p[0] > avgRPM*HighBandFactor:
			highs = append(highs, p[1])
		}
	}
	low, high = in.AvgSfoc, in.AvgSfoc
	if len(lows) > 0 {
		low = mean(lows)
	}
	if len(highs) > 0 {
		high = mean(highs)
	}

	return low, high
}
