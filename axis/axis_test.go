// SPDX-License-Identifier: MIT
package axis_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vesselmon/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_Errors verifies the sentinel returned for each invalid input class.
func TestCompute_Errors(t *testing.T) {
	cases := []struct {
		name      string
		values    []float64
		occupancy float64
		want      error
	}{
		{"empty", nil, 0.8, axis.ErrNoValues},
		{"nan sample", []float64{1, math.NaN()}, 0.8, axis.ErrNaNInf},
		{"inf sample", []float64{math.Inf(1)}, 0.8, axis.ErrNaNInf},
		{"zero occupancy", []float64{1}, 0, axis.ErrBadOccupancy},
		{"occupancy above one", []float64{1}, 1.2, axis.ErrBadOccupancy},
		{"nan occupancy", []float64{1}, math.NaN(), axis.ErrBadOccupancy},
		{"padding past max float", []float64{0, 1.7e308}, 0.8, axis.ErrOverflow},
		{"span past max float", []float64{-1.7e308, 1.7e308}, 0.8, axis.ErrOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := axis.Compute(tc.values, tc.occupancy)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCompute_EightyPercent checks that 80% occupancy pads each side by 0.125×span.
func TestCompute_EightyPercent(t *testing.T) {
	r, err := axis.Compute([]float64{100, 500, 300}, axis.TrendOccupancy)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, r.Min, 1e-9)
	assert.InDelta(t, 550.0, r.Max, 1e-9)
	assert.InDelta(t, 0.8, 400/r.Span(), 1e-9, "data must fill 80% of the axis")
}

// TestCompute_SeventyFivePercent checks the cluster-center occupancy.
func TestCompute_SeventyFivePercent(t *testing.T) {
	r, err := axis.Compute([]float64{0, 300}, axis.ClusterOccupancy)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, 300/r.Span(), 1e-9)
	assert.InDelta(t, -50.0, r.Min, 1e-9)
	assert.InDelta(t, 350.0, r.Max, 1e-9)
}

// TestCompute_Degenerate covers the zero-span fallback, including all zeros.
func TestCompute_Degenerate(t *testing.T) {
	r, err := axis.Compute([]float64{0}, axis.TrendOccupancy, axis.WithNonNegative())
	require.NoError(t, err)
	assert.Equal(t, axis.Range{Min: 0, Max: 1}, r)

	r, err = axis.Compute([]float64{5}, axis.TrendOccupancy, axis.WithNonNegative())
	require.NoError(t, err)
	assert.Equal(t, axis.Range{Min: 4, Max: 6}, r)
	assert.Less(t, r.Min, r.Max)

	r, err = axis.Compute([]float64{200, 200, 200}, axis.TrendOccupancy)
	require.NoError(t, err)
	assert.InDelta(t, 180.0, r.Min, 1e-9)
	assert.InDelta(t, 220.0, r.Max, 1e-9)
}

// TestCompute_NonNegativeFloor verifies the floor clamps padding but never samples.
func TestCompute_NonNegativeFloor(t *testing.T) {
	r, err := axis.Compute([]float64{1, 9}, axis.TrendOccupancy, axis.WithNonNegative())
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Min)
	assert.InDelta(t, 10.0, r.Max, 1e-9)

	unclamped, err := axis.Compute([]float64{1, 9}, axis.TrendOccupancy)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, unclamped.Min, 1e-9)

	r, err = axis.Compute([]float64{-4, 4}, axis.TrendOccupancy, axis.WithNonNegative())
	require.NoError(t, err)
	assert.True(t, r.Contains(-4), "negative samples stay inside the axis")
}

// TestCompute_ContainsSamples checks min ≤ sample ≤ max over a spread of inputs.
func TestCompute_ContainsSamples(t *testing.T) {
	sets := [][]float64{
		{0.001, 0.002},
		{-1e6, 1e6},
		{720, 735.5, 701.2, 699},
		{3},
		{-7, -7},
	}
	for _, occ := range []float64{0.5, axis.ClusterOccupancy, axis.TrendOccupancy, 1} {
		for _, vals := range sets {
			r, err := axis.Compute(vals, occ, axis.WithNonNegative())
			require.NoError(t, err)
			assert.Less(t, r.Min, r.Max)
			for _, v := range vals {
				assert.True(t, r.Contains(v), "occ=%v sample %v outside %+v", occ, v, r)
			}
		}
	}
}

// TestCompute_FlatPaddingOption overrides the zero-span rule.
func TestCompute_FlatPaddingOption(t *testing.T) {
	r, err := axis.Compute([]float64{10}, 0.8, axis.WithFlatPadding(0.5, 2))
	require.NoError(t, err)
	assert.Equal(t, axis.Range{Min: 5, Max: 15}, r)

	assert.Panics(t, func() { axis.WithFlatPadding(0, 1) })
	assert.Panics(t, func() { axis.WithFlatPadding(0.1, math.NaN()) })
}

// TestFiniteAndUnion covers the sample helpers.
func TestFiniteAndUnion(t *testing.T) {
	assert.Equal(t, []float64{1, 3}, axis.Finite([]float64{1, math.NaN(), 3, math.Inf(-1)}))
	assert.Nil(t, axis.Finite([]float64{math.NaN()}))
	assert.Equal(t, []float64{1, 2, 3}, axis.Union([]float64{1}, nil, []float64{2, 3}))
	assert.Empty(t, axis.Union())
	assert.InDelta(t, 0.125, axis.Padding(0.8), 1e-12)
	assert.Equal(t, 0.0, axis.Padding(1))
}
