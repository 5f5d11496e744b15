// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/vesselmon/efficiency"
	"github.com/katalvlaran/vesselmon/regime"
	"github.com/katalvlaran/vesselmon/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewComposer_BadConfig rejects invalid tables and cutoffs.
func TestNewComposer_BadConfig(t *testing.T) {
	_, err := report.NewComposer(report.WithCutoffs(efficiency.Cutoffs{Excellent: 200, Good: 190, Medium: 210}))
	assert.ErrorIs(t, err, report.ErrBadConfig)
	assert.ErrorIs(t, err, efficiency.ErrBadCutoffs)

	_, err = report.NewComposer(report.WithRegimeTable(regime.Table{Fallback: regime.HighLoad}))
	assert.ErrorIs(t, err, report.ErrBadConfig)
	assert.ErrorIs(t, err, regime.ErrEmptyTable)
}

// TestOptions_Panics verifies option constructors reject nonsensical values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { report.WithPalette() })
	assert.Panics(t, func() { report.WithPercentTolerance(-1) })
	assert.Panics(t, func() { report.WithPercentTolerance(math.NaN()) })
	assert.Panics(t, func() { report.WithLogger(nil) })
}

// TestComposer_Palette uses custom fallback colors for uncolored clusters.
func TestComposer_Palette(t *testing.T) {
	c, err := report.NewComposer(report.WithPalette("#000000", "#ffffff"))
	require.NoError(t, err)

	in := economicInput()
	for i := range in.Clusters {
		in.Clusters[i].Mode.Color = ""
	}
	r, err := c.Cluster(in)
	require.NoError(t, err)

	s := r.Charts[report.ChartClusters].Series
	assert.Equal(t, "#000000", s[0].Color)
	assert.Equal(t, "#ffffff", s[1].Color)
	assert.Equal(t, "#000000", s[2].Color)
}

// TestComposer_Logging emits a warning for provisional classifications.
func TestComposer_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := report.NewComposer(report.WithLogger(logger))
	require.NoError(t, err)

	in := economicInput()
	in.Result.Converged = false
	_, err = c.Cluster(in)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "regime=Economic")
	assert.Contains(t, out, "kind=cluster")
}

// TestReport_JSON encodes reports for the rendering collaborator.
func TestReport_JSON(t *testing.T) {
	r, err := report.Cluster(economicInput())
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "cluster", doc["kind"])
	assert.Equal(t, "Economic", doc["assessment"].(map[string]any)["regime"])
	assert.NotContains(t, doc, "tier")

	charts := doc["charts"].(map[string]any)
	clusters := charts["clusters"].(map[string]any)
	assert.Len(t, clusters["series"], 4)
}
