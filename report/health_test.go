// SPDX-License-Identifier: MIT
package report_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vesselmon/axis"
	"github.com/katalvlaran/vesselmon/report"
	"github.com/katalvlaran/vesselmon/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyInput() report.HealthInput {
	return report.HealthInput{
		NormalData:  [][2]float64{{1000, 0.9}, {2000, 0.85}},
		AnomalyData: [][2]float64{{1500, 0.4}},
		Stats:       report.HealthStatistics{Avg: 0.85, Min: 0.4, Max: 0.9},
	}
}

// TestHealth_Good reports a healthy vessel against the default threshold.
func TestHealth_Good(t *testing.T) {
	r, err := report.Health(healthyInput())
	require.NoError(t, err)

	assert.Contains(t, r.Sections[report.SectionStatus], "良好")
	assert.Contains(t, r.Sections[report.SectionStatus], "0.800")
	assert.Contains(t, r.Sections[report.SectionAnomalies], "1 个异常点")
	assert.Contains(t, r.Sections[report.SectionAnomalies], "33.3%")
	assert.Equal(t, "0.850", statValue(t, r, "平均健康指数"))
	assert.Equal(t, "1", statValue(t, r, "异常点数"))
}

// TestHealth_BelowThreshold warns when the average is under the threshold.
func TestHealth_BelowThreshold(t *testing.T) {
	in := healthyInput()
	in.Threshold = 0.9
	r, err := report.Health(in)
	require.NoError(t, err)

	assert.Contains(t, r.Sections[report.SectionStatus], "低于阈值 0.900")
	assert.Contains(t, r.Sections[report.SectionAnomalies], "1 个正常监测点低于健康阈值")
}

// TestHealth_NoAnomalies reports a clean window.
func TestHealth_NoAnomalies(t *testing.T) {
	in := healthyInput()
	in.AnomalyData = nil
	r, err := report.Health(in)
	require.NoError(t, err)
	assert.Equal(t, "监测期内未发现异常点。", r.Sections[report.SectionAnomalies])
}

// TestHealth_Chart checks the series stack and fixed y axis.
func TestHealth_Chart(t *testing.T) {
	r, err := report.Health(healthyInput())
	require.NoError(t, err)

	ch := r.Charts[report.ChartHealth]
	require.Len(t, ch.Series, 3)
	assert.Equal(t, "正常状态", ch.Series[0].Name)
	assert.Equal(t, series.Line, ch.Series[0].Kind)

	th := ch.Series[1]
	assert.Equal(t, "健康阈值", th.Name)
	assert.True(t, th.Dashed)
	assert.Equal(t, [][]float64{{1000, 0.8}, {1500, 0.8}, {2000, 0.8}}, th.Data)

	an := ch.Series[2]
	assert.Equal(t, "异常点", an.Name)
	assert.Equal(t, series.MarkerZ, an.Z)
	assert.Equal(t, [][]float64{{1500, 0.4}}, an.Data)

	require.NotNil(t, ch.Y.Range)
	assert.Equal(t, axis.Range{Min: 0, Max: 1}, *ch.Y.Range)
	assert.Equal(t, report.AxisTime, ch.X.Type)
	assert.Nil(t, ch.X.Range)
}

// TestHealth_AnomaliesOnly spans the threshold line over anomaly timestamps.
func TestHealth_AnomaliesOnly(t *testing.T) {
	r, err := report.Health(report.HealthInput{
		AnomalyData: [][2]float64{{3000, 0.3}, {1000, 0.5}, {3000, 0.35}},
		Stats:       report.HealthStatistics{Avg: 0.4, Min: 0.3, Max: 0.5},
	})
	require.NoError(t, err)

	th := r.Charts[report.ChartHealth].Series[1]
	assert.Equal(t, "健康阈值", th.Name)
	assert.Equal(t, [][]float64{{1000, 0.8}, {3000, 0.8}}, th.Data)
}

// TestHealth_Idempotent composes the same input twice.
func TestHealth_Idempotent(t *testing.T) {
	a, err := report.Health(healthyInput())
	require.NoError(t, err)
	b, err := report.Health(healthyInput())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestHealth_Empty returns a no-data report.
func TestHealth_Empty(t *testing.T) {
	r, err := report.Health(report.HealthInput{})
	require.NoError(t, err)
	assert.True(t, r.Empty)
	assert.Nil(t, r.Charts)
}

// TestHealth_Validation rejects indexes and thresholds outside their ranges.
func TestHealth_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*report.HealthInput)
	}{
		{"threshold above one", func(in *report.HealthInput) { in.Threshold = 1.5 }},
		{"negative threshold", func(in *report.HealthInput) { in.Threshold = -0.1 }},
		{"nan avg", func(in *report.HealthInput) { in.Stats.Avg = math.NaN() }},
		{"min above max", func(in *report.HealthInput) { in.Stats.Min = 0.95 }},
		{"index above one", func(in *report.HealthInput) { in.NormalData[0][1] = 1.2 }},
		{"negative anomaly", func(in *report.HealthInput) { in.AnomalyData[0][1] = -0.1 }},
		{"inf timestamp", func(in *report.HealthInput) { in.NormalData[1][0] = math.Inf(1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := healthyInput()
			tc.mutate(&in)
			_, err := report.Health(in)
			assert.ErrorIs(t, err, report.ErrValidation)
		})
	}
}
