// SPDX-License-Identifier: MIT

// Package vesselmon turns vessel machinery analytics into operating-regime
// verdicts, fuel-efficiency grades and chart-ready report payloads.
//
// 🚢 What is vesselmon?
//
//	A deterministic, side-effect-free report engine that brings together:
//		• Regime classification: Standby / Economic / Normal / HighLoad from mean RPM, power, fuel flow
//		• Efficiency grading: SFOC tiers Excellent / Good / Medium / Poor
//		• Axis normalization: padded chart ranges at a chosen occupancy
//		• Series assembly: labeled point groups → colored, z-ordered chart series
//		• Report composition: clustering, SFOC, health index and property trend reports
//
// ✨ Why vesselmon?
//
//   - Explicit thresholds: regime rules and SFOC cutoffs are swappable tables, loadable from YAML
//   - Fail fast: NaN, Inf and inconsistent inputs surface as typed validation errors
//   - Pure Go: every composer is idempotent and safe for concurrent use
//
// Packages:
//
//	axis/             Compute, Padding, Union: padded min/max for chart axes
//	regime/           Table, Classify, Assess, LoadTable: operating-regime rules
//	efficiency/       Cutoffs, Grade, Tier.Sentence: SFOC grading
//	series/           Assembler, Build, ConstantLine: chart series assembly
//	telemetry/        Summary, Sample and the property catalog (labels, units)
//	report/           Composer with Cluster, Sfoc, Health and Trend reports
//	payload/          JSON decoding and validation of analytics documents
//	cmd/vesselreport  CLI that composes reports from files, in batch or one by one
//
// Quick example:
//
//	r, err := report.Sfoc(report.SfocStatistics{
//		ScatterData: [][2]float64{{490, 225}, {500, 220}, {510, 215}},
//		AvgSfoc: 220, MinSfoc: 200, MaxSfoc: 260,
//	})
//	// r.Tier == efficiency.Poor, r.Sections[report.SectionInsights] flags the 60 g/kWh spread
//
//	go install github.com/katalvlaran/vesselmon/cmd/vesselreport@latest
package vesselmon
