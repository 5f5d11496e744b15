// SPDX-License-Identifier: MIT

package report

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/vesselmon/efficiency"
	"github.com/katalvlaran/vesselmon/regime"
)

const (
	// DefaultPercentTolerance is the allowed deviation of the summed cluster
	// percentages from 100.
	DefaultPercentTolerance = 1.0

	// DefaultHealthThreshold is the health index below which a point is
	// considered degraded when the input carries no threshold.
	DefaultHealthThreshold = 0.8
)

// Option configures a Composer.
type Option func(*options)

type options struct {
	table     regime.Table
	cutoffs   efficiency.Cutoffs
	palette   []string
	tolerance float64
	logger    *slog.Logger
}

// WithRegimeTable replaces the default regime thresholds. The table is
// validated by NewComposer.
func WithRegimeTable(t regime.Table) Option {
	return func(o *options) { o.table = t }
}

// WithCutoffs replaces the default SFOC tier cutoffs. The cutoffs are
// validated by NewComposer.
func WithCutoffs(c efficiency.Cutoffs) Option {
	return func(o *options) { o.cutoffs = c }
}

// WithPalette sets the fallback series colors. Panics when empty.
func WithPalette(colors ...string) Option {
	if len(colors) == 0 {
		panic("report: WithPalette requires at least one color")
	}

	return func(o *options) { o.palette = append([]string(nil), colors...) }
}

// WithPercentTolerance sets the allowed deviation of summed cluster
// percentages from 100. Panics on negative or non-finite values.
func WithPercentTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("report: WithPercentTolerance requires a finite non-negative value")
	}

	return func(o *options) { o.tolerance = tol }
}

// WithLogger sets the composer's logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("report: WithLogger requires a non-nil logger")
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	o := options{
		table:     regime.DefaultTable(),
		cutoffs:   efficiency.DefaultCutoffs(),
		tolerance: DefaultPercentTolerance,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
