// SPDX-License-Identifier: MIT

package regime

import (
	"math"

	"github.com/katalvlaran/vesselmon/telemetry"
)

const (
	opValidate = "Validate"
	opClassify = "Classify"
)

// Band is a half-open interval [Min, Max). Use math.Inf(-1) / math.Inf(1)
// (".inf" / "-.inf" in YAML) for an open side.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether Min ≤ v < Max.
func (b Band) Contains(v float64) bool { return v >= b.Min && v < b.Max }

func (b Band) valid() bool {
	return !math.IsNaN(b.Min) && !math.IsNaN(b.Max) && b.Min < b.Max
}

// Rule is one row of the threshold table: all three conditions must hold.
type Rule struct {
	Regime      Regime  `yaml:"regime"`
	RPM         Band    `yaml:"rpm"`
	Power       Band    `yaml:"power"`
	FuelCeiling float64 `yaml:"fuelCeiling"`
}

// Matches reports whether s satisfies every condition of the rule.
func (r Rule) Matches(s telemetry.Summary) bool {
	return r.RPM.Contains(s.AvgRPM) && r.Power.Contains(s.AvgPower) && s.AvgFuelFlow < r.FuelCeiling
}

// Table is an ordered rule list plus the regime returned when nothing matches.
//
// Contract: rules are evaluated in order, first match wins, and no overlap
// check is performed between rules. Fallback is an OR catch-all: any summary
// that fails at least one condition of every rule receives it.
type Table struct {
	Rules    []Rule `yaml:"rules"`
	Fallback Regime `yaml:"fallback"`
}

// DefaultTable returns the standard main-engine thresholds:
//
//	Standby   rpm < 400          power < 3        fuel < 50
//	Economic  400 ≤ rpm < 650    3 ≤ power < 5    fuel < 100
//	Normal    650 ≤ rpm < 800    5 ≤ power < 7    fuel < 180
//	HighLoad  fallback
//
// A fresh copy is returned on every call.
func DefaultTable() Table {
	inf := math.Inf(1)
	return Table{
		Rules: []Rule{
			{Regime: Standby, RPM: Band{-inf, 400}, Power: Band{-inf, 3}, FuelCeiling: 50},
			{Regime: Economic, RPM: Band{400, 650}, Power: Band{3, 5}, FuelCeiling: 100},
			{Regime: Normal, RPM: Band{650, 800}, Power: Band{5, 7}, FuelCeiling: 180},
		},
		Fallback: HighLoad,
	}
}

// Validate checks the table structure.
//
// Errors (wrapped with "Validate"):
//   - ErrEmptyTable when there are no rules.
//   - ErrUnknownRegime for an invalid rule regime or fallback.
//   - ErrDuplicateRule when a regime has two rules.
//   - ErrBadBand / ErrBadCeiling for NaN, inverted or empty limits.
func (t Table) Validate() error {
	if len(t.Rules) == 0 {
		return regimeErrorf(opValidate, ErrEmptyTable)
	}
	if !t.Fallback.Valid() {
		return regimeErrorf(opValidate, ErrUnknownRegime)
	}
	seen := make(map[Regime]bool, len(t.Rules))
	for _, r := range t.Rules {
		if !r.Regime.Valid() {
			return regimeErrorf(opValidate, ErrUnknownRegime)
		}
		if seen[r.Regime] {
			return regimeErrorf(opValidate+" "+r.Regime.String(), ErrDuplicateRule)
		}
		seen[r.Regime] = true
		if !r.RPM.valid() || !r.Power.valid() {
			return regimeErrorf(opValidate+" "+r.Regime.String(), ErrBadBand)
		}
		if math.IsNaN(r.FuelCeiling) || r.FuelCeiling <= 0 {
			return regimeErrorf(opValidate+" "+r.Regime.String(), ErrBadCeiling)
		}
	}

	return nil
}

// Classify returns the regime of the first matching rule, or Fallback.
// The result depends only on s and the table.
func (t Table) Classify(s telemetry.Summary) Regime {
	for _, r := range t.Rules {
		if r.Matches(s) {
			return r.Regime
		}
	}

	return t.Fallback
}

// Classify classifies s against DefaultTable.
func Classify(avgRPM, avgPower, avgFuelFlow float64) Regime {
	return defaultTable.Classify(telemetry.Summary{AvgRPM: avgRPM, AvgPower: avgPower, AvgFuelFlow: avgFuelFlow})
}

var defaultTable = DefaultTable()

// Assessment is a classification plus the clustering quality caveat.
type Assessment struct {
	Regime      Regime `json:"regime"`
	Provisional bool   `json:"provisional"`
	Caveat      string `json:"caveat,omitempty"`
}

// ProvisionalCaveat is attached to assessments built from non-converged clustering.
const ProvisionalCaveat = "聚类算法未收敛，工况分类结果为临时结论，建议增加迭代次数后重新分析。"

// Assess classifies s and flags the result as provisional when the
// clustering run that produced it did not converge.
func (t Table) Assess(s telemetry.Summary, converged bool) Assessment {
	a := Assessment{Regime: t.Classify(s)}
	if !converged {
		a.Provisional = true
		a.Caveat = ProvisionalCaveat
	}

	return a
}
