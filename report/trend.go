// SPDX-License-Identifier: MIT

package report

import (
	"github.com/katalvlaran/vesselmon/axis"
	"github.com/katalvlaran/vesselmon/series"
	"github.com/katalvlaran/vesselmon/telemetry"
)

// TrendTimeLayout formats category labels on the trend x axis.
const TrendTimeLayout = "2006-01-02 15:04:05"

// TrendColor is the trend line color.
const TrendColor = "#1890ff"

var trendMarks = []series.Mark{
	{Kind: series.MarkMax, Name: "最大值"},
	{Kind: series.MarkMin, Name: "最小值"},
	{Kind: series.MarkAverage, Name: "平均值"},
}

// Trend composes the history report of one telemetry property. Samples with
// non-finite values are dropped.
func (c *Composer) Trend(in TrendInput) (*Report, error) {
	const op = "Trend"

	prop, known := telemetry.Lookup(in.Property)
	if in.Property == "" {
		return nil, invalid(op, "property", "empty")
	}
	if !known {
		c.logger.Debug("property not in catalog", "property", in.Property)
	}

	var (
		labels []string
		values []float64
		data   [][]float64
	)
	for _, s := range in.Samples {
		if !s.Valid() {
			continue
		}
		data = append(data, []float64{float64(len(values)), s.Value})
		labels = append(labels, s.At.Format(TrendTimeLayout))
		values = append(values, s.Value)
	}
	dropped := len(in.Samples) - len(values)
	if dropped > 0 {
		c.logger.Debug("dropped non-finite samples", "property", in.Property, "dropped", dropped)
	}

	title := prop.Label + " 历史趋势"
	if len(values) == 0 {
		return c.noData(KindTrend, title+"(无数据)"), nil
	}

	avg := mean(values)
	if !finite(avg) {
		return nil, invalid(op, "samples", errOverflow)
	}

	var aopts []axis.Option
	if prop.NonNegative {
		aopts = append(aopts, axis.WithNonNegative())
	}
	y, err := axis.Compute(values, axis.TrendOccupancy, aopts...)
	if err != nil {
		return nil, reportErrorf(op, err)
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}

	r := newReport(KindTrend, title)
	r.Stats = []Stat{
		{Label: "最大值", Value: fixed1(hi), Unit: prop.Unit},
		{Label: "最小值", Value: fixed1(lo), Unit: prop.Unit},
		{Label: "平均值", Value: fixed1(avg), Unit: prop.Unit},
		{Label: "样本数", Value: count(len(values))},
	}
	if dropped > 0 {
		r.Stats = append(r.Stats, Stat{Label: "丢弃样本数", Value: count(dropped)})
	}
	r.addSection(SectionStatistics, statsText(r.Stats))

	r.addChart(ChartTrend, Chart{
		Title: title,
		X:     Axis{Name: "时间", Type: AxisCategory, Categories: labels},
		Y:     Axis{Name: prop.AxisName(), Type: AxisValue, Range: &y},
		Series: c.assembler.Build([]series.Group{{
			Label:  prop.Label,
			Color:  TrendColor,
			Kind:   series.Line,
			Symbol: "none",
			Smooth: true,
			Marks:  trendMarks,
			Data:   data,
		}}),
	})

	return c.done(r), nil
}
