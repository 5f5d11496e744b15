// SPDX-License-Identifier: MIT

package series

// Kind is the chart primitive a series is drawn with.
type Kind string

const (
	// Scatter draws unconnected points.
	Scatter Kind = "scatter"
	// Line draws a polyline through the points in order.
	Line Kind = "line"
)

// Z-order and marker styling defaults.
const (
	// BaseZ is the z of ordinary series.
	BaseZ = 2
	// MarkerZ is the z of marker series; above every ordinary series.
	MarkerZ = 10
	// MarkerSymbol is the default marker glyph.
	MarkerSymbol = "diamond"
	// MarkerSize is the default marker symbol size.
	MarkerSize = 15
	// PointSize is the default scatter symbol size.
	PointSize = 8
	// CenterColor is the fallback color of marker groups.
	CenterColor = "#722ed1"
)

// DefaultPalette is the fallback color cycle for ordinary groups.
var DefaultPalette = []string{"#1890ff", "#52c41a", "#ff4d4f", "#faad14", "#13c2c2", "#eb2f96"}

// MarkKind names a statistic annotation drawn on a series.
type MarkKind string

const (
	// MarkMax pins the maximum point.
	MarkMax MarkKind = "max"
	// MarkMin pins the minimum point.
	MarkMin MarkKind = "min"
	// MarkAverage draws a horizontal average line.
	MarkAverage MarkKind = "average"
)

// Mark is one annotation with its display name.
type Mark struct {
	Kind MarkKind `json:"kind"`
	Name string   `json:"name"`
}

// Group is an input point set. Each point is [x, y] or [x, y, size].
type Group struct {
	Label      string
	Color      string
	Kind       Kind // Scatter when empty
	Symbol     string
	SymbolSize int
	Smooth     bool
	Dashed     bool
	Marks      []Mark
	Data       [][]float64
}

// Series is one chart-ready output entry.
type Series struct {
	Name       string      `json:"name"`
	Kind       Kind        `json:"type"`
	Color      string      `json:"color"`
	Symbol     string      `json:"symbol,omitempty"`
	SymbolSize int         `json:"symbolSize,omitempty"`
	Z          int         `json:"z"`
	Smooth     bool        `json:"smooth,omitempty"`
	Dashed     bool        `json:"dashed,omitempty"`
	Marks      []Mark      `json:"marks,omitempty"`
	Data       [][]float64 `json:"data"`
}
