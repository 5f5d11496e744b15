// SPDX-License-Identifier: MIT

package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/katalvlaran/vesselmon/report"
	"github.com/katalvlaran/vesselmon/telemetry"
)

func decodeJSON(op string, r io.Reader, doc any) error {
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return decodeErrorf(op, err)
	}

	return check(op, doc)
}

// DecodeClustering reads a clustering document.
func DecodeClustering(r io.Reader) (report.ClusterInput, error) {
	const op = "DecodeClustering"

	var doc clusteringDoc
	if err := decodeJSON(op, r, &doc); err != nil {
		return report.ClusterInput{}, err
	}

	in := report.ClusterInput{
		Result: report.ClusteringResult{
			Iterations: *doc.KMeans.Iterations,
			Converged:  *doc.KMeans.Converged,
			Centroids:  make([][3]float64, len(doc.KMeans.Centroids)),
		},
		Clusters: make([]report.ClusterSummary, len(doc.ClusterAnalysis)),
		Summary: telemetry.Summary{
			AvgRPM:      *doc.AvgRPM,
			AvgPower:    *doc.AvgPower,
			AvgFuelFlow: *doc.AvgFuelFlow,
		},
		TotalPoints: *doc.TotalPoints,
	}
	for i, c := range doc.KMeans.Centroids {
		in.Result.Centroids[i] = [3]float64{c[0], c[1], c[2]}
	}
	for i, c := range doc.ClusterAnalysis {
		in.Clusters[i] = report.ClusterSummary{
			ClusterID:  *c.ClusterID,
			Mode:       report.Mode{Status: c.Mode.Status, Color: c.Mode.Color},
			Data:       pairs(c.Data),
			AvgRPM:     *c.AvgRPM,
			AvgPower:   *c.AvgPower,
			Percentage: *c.Percentage,
		}
	}

	return in, nil
}

// DecodeSfoc reads an SFOC document.
func DecodeSfoc(r io.Reader) (report.SfocStatistics, error) {
	const op = "DecodeSfoc"

	var doc sfocDoc
	if err := decodeJSON(op, r, &doc); err != nil {
		return report.SfocStatistics{}, err
	}

	return report.SfocStatistics{
		ScatterData: pairs(doc.ScatterData),
		LineData:    pairs(doc.LineData),
		AvgSfoc:     *doc.Statistics.AvgSfoc,
		MinSfoc:     *doc.Statistics.MinSfoc,
		MaxSfoc:     *doc.Statistics.MaxSfoc,
	}, nil
}

// DecodeHealth reads a health index document. A missing threshold is left
// zero so the composer applies its default.
func DecodeHealth(r io.Reader) (report.HealthInput, error) {
	const op = "DecodeHealth"

	var doc healthDoc
	if err := decodeJSON(op, r, &doc); err != nil {
		return report.HealthInput{}, err
	}

	in := report.HealthInput{
		NormalData:  pairs(doc.NormalData),
		AnomalyData: pairs(doc.AnomalyData),
		Stats: report.HealthStatistics{
			Avg: *doc.Statistics.AvgHealth,
			Min: *doc.Statistics.MinHealth,
			Max: *doc.Statistics.MaxHealth,
		},
	}
	if doc.Threshold != nil {
		in.Threshold = *doc.Threshold
	}

	return in, nil
}

// DecodeHistory reads a history document. property overrides the document's
// own property key when non-empty. Records whose payload lacks a numeric
// value for the property become NaN samples, which the trend composer drops.
func DecodeHistory(r io.Reader, property string) (report.TrendInput, error) {
	const op = "DecodeHistory"

	var doc historyDoc
	if err := decodeJSON(op, r, &doc); err != nil {
		return report.TrendInput{}, err
	}
	if property == "" {
		property = doc.Property
	}
	if property == "" {
		return report.TrendInput{}, payloadErrorf(op, &ValidationError{
			Errors: map[string]string{"property": "property is required"},
		})
	}

	in := report.TrendInput{Property: property, Samples: make([]telemetry.Sample, len(doc.OtData))}
	for i, rec := range doc.OtData {
		v, err := recordValue(rec.Payload, property)
		if err != nil {
			return report.TrendInput{}, decodeErrorf(op, fmt.Errorf("otData[%d].payload: %w", i, err))
		}
		in.Samples[i] = telemetry.Sample{
			At:    time.UnixMilli(int64(*rec.Timestamp)).UTC(),
			Value: v,
		}
	}

	return in, nil
}

// recordValue extracts property from a JSON object string.
func recordValue(payload, property string) (float64, error) {
	if payload == "" {
		return math.NaN(), nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return 0, err
	}
	raw, ok := fields[property]
	if !ok {
		return math.NaN(), nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f, nil
		}
	}

	return math.NaN(), nil
}

func pairs(pts [][]float64) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p[0], p[1]}
	}

	return out
}
