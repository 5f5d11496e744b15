// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/vesselmon/efficiency"
	"github.com/katalvlaran/vesselmon/regime"
	"github.com/katalvlaran/vesselmon/series"
)

// Composer builds reports. It holds only immutable configuration.
type Composer struct {
	table     regime.Table
	cutoffs   efficiency.Cutoffs
	assembler *series.Assembler
	tolerance float64
	logger    *slog.Logger
}

// NewComposer validates the options and returns a ready Composer.
func NewComposer(opts ...Option) (*Composer, error) {
	const op = "NewComposer"

	o := gatherOptions(opts...)
	if err := o.table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadConfig, err)
	}
	if err := o.cutoffs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadConfig, err)
	}

	var sopts []series.Option
	if len(o.palette) > 0 {
		sopts = append(sopts, series.WithPalette(o.palette...))
	}

	return &Composer{
		table:     o.table,
		cutoffs:   o.cutoffs,
		assembler: series.NewAssembler(sopts...),
		tolerance: o.tolerance,
		logger:    o.logger,
	}, nil
}

// Table returns the regime table in use.
func (c *Composer) Table() regime.Table { return c.table }

// Cutoffs returns the SFOC tier cutoffs in use.
func (c *Composer) Cutoffs() efficiency.Cutoffs { return c.cutoffs }

var defaultComposer, _ = NewComposer()

// Cluster composes a cluster report with the default configuration.
func Cluster(in ClusterInput) (*Report, error) { return defaultComposer.Cluster(in) }

// Sfoc composes an SFOC report with the default configuration.
func Sfoc(in SfocStatistics) (*Report, error) { return defaultComposer.Sfoc(in) }

// Health composes a health report with the default configuration.
func Health(in HealthInput) (*Report, error) { return defaultComposer.Health(in) }

// Trend composes a trend report with the default configuration.
func Trend(in TrendInput) (*Report, error) { return defaultComposer.Trend(in) }

func (c *Composer) noData(kind Kind, title string) *Report {
	r := newReport(kind, title)
	r.Empty = true
	r.addSection(SectionNoData, NoDataText)
	c.logger.Debug("report composed", "kind", string(kind), "empty", true)

	return r
}

func (c *Composer) done(r *Report) *Report {
	c.logger.Debug("report composed",
		"kind", string(r.Kind),
		"sections", len(r.Order),
		"charts", len(r.Charts),
	)

	return r
}
