// SPDX-License-Identifier: MIT

// Package regime classifies a main-engine operating point into one of four
// named operating regimes using an explicit, ordered threshold table.
//
// Regimes (closed set):
//
//	Standby   ⚪ 停机待命   engine idle or barely turning
//	Economic  🟢 经济巡航   efficient cruising band
//	Normal    🔵 正常航行   ordinary service speed
//	HighLoad  🔴 高负荷运行 anything outside the three bands above
//
// Rule evaluation:
//
//	Rules are tried in table order and the first rule whose three conditions
//	all hold wins:
//
//	  rpm ∈ [RPM.Min, RPM.Max) ∧ power ∈ [Power.Min, Power.Max) ∧ fuel < FuelCeiling
//
//	When no rule matches the table's Fallback regime is returned. With the
//	default table the fallback is HighLoad, so a single out-of-band dimension
//	(for example a low RPM with a high fuel flow) lands in HighLoad even if the
//	other two dimensions are modest: AND inside each rule, an implicit OR
//	across the fallback. Whether HighLoad should instead require every
//	dimension to be out of band is still open; the catch-all stays.
//
// Tables are plain values: build one in code, start from DefaultTable, or load
// one from YAML with LoadTable. Labels (Regime.Label) are display attributes
// only; classification never depends on them.
package regime
