// SPDX-License-Identifier: MIT

package axis

import "math"

const (
	opCompute = "Compute"
)

// Compute returns the padded axis range for values at the given occupancy.
//
// Implementation:
//   - Stage 1: validate occupancy and samples (non-empty, finite).
//   - Stage 2: lo/hi scan; padding = span×(1−f)/2/f, or the flat rule when span == 0.
//   - Stage 3: apply the non-negative floor when requested and lo ≥ 0, then
//     reject bounds that overflowed to ±Inf.
//
// Errors:
//   - ErrBadOccupancy, ErrNoValues, ErrNaNInf, ErrOverflow (wrapped with "Compute").
//
// Complexity:
//   - Time O(n), Space O(1).
func Compute(values []float64, occupancy float64, opts ...Option) (Range, error) {
	if math.IsNaN(occupancy) || occupancy <= 0 || occupancy > 1 {
		return Range{}, axisErrorf(opCompute, ErrBadOccupancy)
	}
	if len(values) == 0 {
		return Range{}, axisErrorf(opCompute, ErrNoValues)
	}
	o := gatherOptions(opts...)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Range{}, axisErrorf(opCompute, ErrNaNInf)
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	var pad float64
	if span == 0 {
		pad = math.Max(math.Abs(lo)*o.flatRatio, o.flatMinPad)
	} else {
		pad = span * Padding(occupancy)
	}

	r := Range{Min: lo - pad, Max: hi + pad}
	// The floor must not cut off a sample, so negative data keeps its padding.
	if o.nonNegative && lo >= 0 {
		r.Min = math.Max(0, r.Min)
	}
	if math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return Range{}, axisErrorf(opCompute, ErrOverflow)
	}

	return r, nil
}

// Padding returns the per-side padding as a fraction of the data span for
// the given occupancy: (1 − f) / 2 / f. Occupancy 1 yields 0.
func Padding(occupancy float64) float64 {
	return (1 - occupancy) / 2 / occupancy
}

// Finite returns a copy of values with NaN and ±Inf samples removed.
// A nil result means no finite sample was present.
func Finite(values []float64) []float64 {
	var out []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}

	return out
}

// Union concatenates sample sets into one freshly allocated slice.
func Union(sets ...[]float64) []float64 {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make([]float64, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}

	return out
}
