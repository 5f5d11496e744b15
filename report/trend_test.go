// SPDX-License-Identifier: MIT
package report_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/vesselmon/report"
	"github.com/katalvlaran/vesselmon/series"
	"github.com/katalvlaran/vesselmon/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(values ...float64) []telemetry.Sample {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	out := make([]telemetry.Sample, len(values))
	for i, v := range values {
		out[i] = telemetry.Sample{At: start.Add(time.Duration(i) * time.Minute), Value: v}
	}

	return out
}

// TestTrend_Known builds a trend for a catalog property and drops NaN samples.
func TestTrend_Known(t *testing.T) {
	r, err := report.Trend(report.TrendInput{
		Property: telemetry.MainEngineRPM,
		Samples:  samples(500, math.NaN(), 520, 510),
	})
	require.NoError(t, err)

	assert.Equal(t, "主机轴转速 历史趋势", r.Title)
	assert.Equal(t, "520.0", statValue(t, r, "最大值"))
	assert.Equal(t, "500.0", statValue(t, r, "最小值"))
	assert.Equal(t, "510.0", statValue(t, r, "平均值"))
	assert.Equal(t, "3", statValue(t, r, "样本数"))
	assert.Equal(t, "1", statValue(t, r, "丢弃样本数"))

	ch := r.Charts[report.ChartTrend]
	assert.Equal(t, report.AxisCategory, ch.X.Type)
	assert.Equal(t, []string{"2024-03-01 08:00:00", "2024-03-01 08:02:00", "2024-03-01 08:03:00"}, ch.X.Categories)
	assert.Equal(t, "主机轴转速 (rpm)", ch.Y.Name)

	require.Len(t, ch.Series, 1)
	s := ch.Series[0]
	assert.Equal(t, series.Line, s.Kind)
	assert.Len(t, s.Marks, 3)
	assert.Equal(t, [][]float64{{0, 500}, {1, 520}, {2, 510}}, s.Data)
	for _, v := range []float64{500, 520, 510} {
		assert.True(t, ch.Y.Range.Contains(v))
	}
}

// TestTrend_NonNegativeClamp clamps the y axis for non-negative properties only.
func TestTrend_NonNegativeClamp(t *testing.T) {
	r, err := report.Trend(report.TrendInput{Property: telemetry.BoilerFlowRate, Samples: samples(1, 50)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Charts[report.ChartTrend].Y.Range.Min)

	r, err = report.Trend(report.TrendInput{Property: telemetry.MainEngineTorque, Samples: samples(1, 50)})
	require.NoError(t, err)
	assert.Less(t, r.Charts[report.ChartTrend].Y.Range.Min, 0.0)
}

// TestTrend_UnknownProperty falls back to the raw key.
func TestTrend_UnknownProperty(t *testing.T) {
	r, err := report.Trend(report.TrendInput{Property: "ballast_level", Samples: samples(3)})
	require.NoError(t, err)
	assert.Equal(t, "ballast_level 历史趋势", r.Title)
	assert.Equal(t, "ballast_level", r.Charts[report.ChartTrend].Y.Name)
}

// TestTrend_NoValidSamples returns a no-data report.
func TestTrend_NoValidSamples(t *testing.T) {
	r, err := report.Trend(report.TrendInput{
		Property: telemetry.BoilerPressure,
		Samples:  samples(math.NaN(), math.Inf(1)),
	})
	require.NoError(t, err)
	assert.True(t, r.Empty)
	assert.Equal(t, "锅炉蒸汽压力 历史趋势(无数据)", r.Title)
}

// TestTrend_EmptyProperty is a validation error.
func TestTrend_EmptyProperty(t *testing.T) {
	_, err := report.Trend(report.TrendInput{Samples: samples(1)})
	assert.ErrorIs(t, err, report.ErrValidation)
}

// TestTrend_MeanOverflow rejects samples whose average leaves the float64 range.
func TestTrend_MeanOverflow(t *testing.T) {
	_, err := report.Trend(report.TrendInput{Property: telemetry.MainEngineRPM, Samples: samples(1e308, 1e308)})
	require.ErrorIs(t, err, report.ErrValidation)

	var ve *report.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "samples", ve.Field)
}

// TestTrend_Idempotent composes the same input twice.
func TestTrend_Idempotent(t *testing.T) {
	in := report.TrendInput{Property: telemetry.MainEngineRPM, Samples: samples(500, math.NaN(), 520, 510)}
	a, err := report.Trend(in)
	require.NoError(t, err)
	b, err := report.Trend(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
