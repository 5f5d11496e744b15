// SPDX-License-Identifier: MIT

package report

import (
	"github.com/katalvlaran/vesselmon/axis"
	"github.com/katalvlaran/vesselmon/efficiency"
	"github.com/katalvlaran/vesselmon/regime"
	"github.com/katalvlaran/vesselmon/series"
	"github.com/katalvlaran/vesselmon/telemetry"
)

// Kind identifies the composer that built a report.
type Kind string

const (
	KindCluster Kind = "cluster"
	KindSfoc    Kind = "sfoc"
	KindHealth  Kind = "health"
	KindTrend   Kind = "trend"
)

// Section names.
const (
	SectionNoData       = "no_data"
	SectionOverview     = "overview"
	SectionConvergence  = "convergence"
	SectionDistribution = "distribution"
	SectionOptimization = "optimization"
	SectionEfficiency   = "efficiency"
	SectionInsights     = "insights"
	SectionStatus       = "status"
	SectionAnomalies    = "anomalies"
	SectionStatistics   = "statistics"
)

// Chart names.
const (
	ChartClusters  = "clusters"
	ChartCentroids = "centroids"
	ChartSfoc      = "sfoc"
	ChartHealth    = "health"
	ChartTrend     = "trend"
)

// NoDataText is the narrative of an empty report.
const NoDataText = "暂无数据"

// AxisType is the scale of a chart axis.
type AxisType string

const (
	AxisValue    AxisType = "value"
	AxisTime     AxisType = "time"
	AxisCategory AxisType = "category"
)

// Axis describes one chart axis. Range is nil when the renderer should
// size the axis itself (time axes); Categories is set for category axes.
type Axis struct {
	Name       string      `json:"name"`
	Type       AxisType    `json:"type"`
	Range      *axis.Range `json:"range,omitempty"`
	Categories []string    `json:"categories,omitempty"`
}

// Chart is a chart-ready payload for the rendering collaborator.
type Chart struct {
	Title  string          `json:"title"`
	X      Axis            `json:"xAxis"`
	Y      Axis            `json:"yAxis"`
	Series []series.Series `json:"series"`
}

// Stat is one row of a report's statistics table.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// Report is the composed, ephemeral output of one analytics response.
type Report struct {
	Kind     Kind              `json:"kind"`
	Title    string            `json:"title"`
	Empty    bool              `json:"empty"`
	Order    []string          `json:"order"`
	Sections map[string]string `json:"sections"`
	Stats    []Stat            `json:"stats,omitempty"`
	Charts   map[string]Chart  `json:"charts,omitempty"`

	Assessment *regime.Assessment `json:"assessment,omitempty"`
	Tier       efficiency.Tier    `json:"tier,omitempty"`
}

func newReport(kind Kind, title string) *Report {
	return &Report{Kind: kind, Title: title, Sections: make(map[string]string)}
}

// addSection appends a named narrative section, keeping insertion order.
func (r *Report) addSection(name, text string) {
	if _, ok := r.Sections[name]; !ok {
		r.Order = append(r.Order, name)
	}
	r.Sections[name] = text
}

func (r *Report) addChart(name string, c Chart) {
	if r.Charts == nil {
		r.Charts = make(map[string]Chart)
	}
	r.Charts[name] = c
}

// Section returns the text of a section and whether it exists.
func (r *Report) Section(name string) (string, bool) {
	s, ok := r.Sections[name]

	return s, ok
}

// ClusteringResult is the K-means run output; centroid i identifies cluster i.
type ClusteringResult struct {
	Iterations int
	Converged  bool
	Centroids  [][3]float64 // [rpm, power, fuelFlow]
}

// Mode is the status label and display color assigned to a cluster upstream.
type Mode struct {
	Status string
	Color  string
}

// ClusterSummary describes one discovered cluster.
type ClusterSummary struct {
	ClusterID  int
	Mode       Mode
	Data       [][2]float64 // [rpm, power]
	AvgRPM     float64
	AvgPower   float64
	Percentage float64 // share of all points, 0..100
}

// ClusterInput is everything the cluster composer needs.
type ClusterInput struct {
	Result      ClusteringResult
	Clusters    []ClusterSummary
	Summary     telemetry.Summary // aggregate over all points
	TotalPoints int
}

// SfocStatistics is the SFOC analysis output.
type SfocStatistics struct {
	ScatterData [][2]float64 // [rpm, sfoc]
	LineData    [][2]float64 // fitted trend [rpm, sfoc]
	AvgSfoc     float64
	MinSfoc     float64
	MaxSfoc     float64
}

// HealthStatistics summarizes the health index over the window.
type HealthStatistics struct {
	Avg float64
	Min float64
	Max float64
}

// HealthInput is the vessel health index analysis output. Points are
// [unix milliseconds, index] with index in [0,1].
type HealthInput struct {
	NormalData  [][2]float64
	AnomalyData [][2]float64
	Threshold   float64 // 0 selects DefaultHealthThreshold
	Stats       HealthStatistics
}

// TrendInput is the raw history of one telemetry property.
type TrendInput struct {
	Property string
	Samples  []telemetry.Sample
}
