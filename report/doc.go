// SPDX-License-Identifier: MIT

// Package report composes classified telemetry analytics into structured,
// multi-section reports: narrative text, a statistics table and chart-ready
// series with padded axes.
//
// Composers:
//
//	Cluster  K-means operating-condition clustering → overall regime,
//	         convergence caveat, regime distribution, optimization bullets,
//	         cluster scatter + centroid charts.
//	Sfoc     SFOC statistics → efficiency tier, variance and RPM-band
//	         insights, statistics table, scatter + trend chart.
//	Health   vessel health index → status vs threshold, anomaly summary,
//	         statistics table, index/anomaly/threshold chart.
//	Trend    single-property history → statistics table, line chart with
//	         max/min/average marks.
//
// Behavior:
//   - Every composer is pure: the same input yields a deeply equal Report.
//   - Invalid numbers (NaN, ±Inf, out-of-range shares, mismatched lengths)
//     fail fast with an error matching ErrValidation; errors.As exposes the
//     offending field through *ValidationError.
//   - Empty input is not an error: the report has Empty == true, a single
//     "暂无数据" section and no charts.
//
// A Composer is immutable after NewComposer and safe for concurrent use.
//
//	c, err := report.NewComposer(report.WithLogger(logger))
//	rep, err := c.Cluster(in)
//	fmt.Println(rep.Sections[report.SectionOverview])
package report
