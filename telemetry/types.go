// SPDX-License-Identifier: MIT

package telemetry

import (
	"math"
	"time"
)

// Summary is the mean operating point of a vessel's main engine over an
// analysis window.
type Summary struct {
	AvgRPM      float64 `json:"avgRpm" yaml:"avgRpm"`
	AvgPower    float64 `json:"avgPower" yaml:"avgPower"`
	AvgFuelFlow float64 `json:"avgFuelFlow" yaml:"avgFuelFlow"`
}

// Finite reports whether all three averages are finite numbers.
func (s Summary) Finite() bool {
	return isFinite(s.AvgRPM) && isFinite(s.AvgPower) && isFinite(s.AvgFuelFlow)
}

// Sample is one reading of a single property.
type Sample struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}

// Valid reports whether the sample value is usable for plotting.
func (s Sample) Valid() bool { return isFinite(s.Value) }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
