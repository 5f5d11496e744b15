// SPDX-License-Identifier: MIT

package axis

import "math"

// Defaults for the degenerate (zero-span) case.
const (
	// DefaultFlatRatio is the fraction of |lo| used to pad a zero-span axis.
	DefaultFlatRatio = 0.1

	// DefaultFlatMinPad is the smallest padding applied to a zero-span axis.
	DefaultFlatMinPad = 1.0
)

const (
	panicFlatRatioInvalid  = "axis: WithFlatPadding: ratio must be finite and > 0"
	panicFlatMinPadInvalid = "axis: WithFlatPadding: minPad must be finite and > 0"
)

// Option mutates the resolved options of a Compute call.
type Option func(*options)

type options struct {
	nonNegative bool
	flatRatio   float64
	flatMinPad  float64
}

// WithNonNegative floors the lower bound at zero for physically
// non-negative quantities (RPM, power, SFOC).
func WithNonNegative() Option {
	return func(o *options) { o.nonNegative = true }
}

// WithFlatPadding overrides the zero-span padding rule max(|lo|×ratio, minPad).
// Panics if either argument is non-finite or not strictly positive.
func WithFlatPadding(ratio, minPad float64) Option {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		panic(panicFlatRatioInvalid)
	}
	if math.IsNaN(minPad) || math.IsInf(minPad, 0) || minPad <= 0 {
		panic(panicFlatMinPadInvalid)
	}

	return func(o *options) {
		o.flatRatio = ratio
		o.flatMinPad = minPad
	}
}

// gatherOptions applies opts in order over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		flatRatio:  DefaultFlatRatio,
		flatMinPad: DefaultFlatMinPad,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
