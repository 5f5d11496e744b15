// SPDX-License-Identifier: MIT

// Package axis sizes chart axes so that plotted samples occupy a stable
// proportion of the visible span, regardless of the magnitude of the data.
//
// What it does:
//
//	Given a set of samples and a target occupancy fraction f ∈ (0,1],
//	Compute returns [min, max] such that the samples fill f of the axis
//	and the remaining (1−f) is split evenly as padding above and below.
//
//	  padding = span × (1 − f) / 2 / f
//
//	For f = 0.8 each side pads by 0.125 × span; for f = 0.75 by 0.1667 × span.
//
// Degenerate data:
//   - span == 0 (all samples identical, including all zeros) pads each side
//     by max(|lo| × 0.1, 1) so the axis never collapses to zero width.
//   - WithNonNegative floors the lower bound at 0 for quantities that cannot
//     go below zero (RPM, power, SFOC). The floor never cuts off a sample.
//
// Guarantees:
//   - min ≤ every sample ≤ max, and min < max.
//   - NaN/±Inf samples are rejected (ErrNaNInf); use Finite to drop them first.
//   - Pure and deterministic; no allocation beyond the returned value.
//
// Usage:
//
//	r, err := axis.Compute(rpms, axis.TrendOccupancy, axis.WithNonNegative())
//	if err != nil {
//		// ErrNoValues, ErrNaNInf or ErrBadOccupancy
//	}
//	fmt.Println(r.Min, r.Max)
package axis
