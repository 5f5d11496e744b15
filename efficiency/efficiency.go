// SPDX-License-Identifier: MIT

package efficiency

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadCutoffs indicates non-finite or non-increasing tier boundaries.
var ErrBadCutoffs = errors.New("efficiency: cutoffs must be finite and strictly increasing")

// Tier is an SFOC efficiency grade.
type Tier int

const (
	// Excellent: SFOC below the Excellent cutoff.
	Excellent Tier = iota + 1
	// Good: between the Excellent and Good cutoffs.
	Good
	// Medium: between the Good and Medium cutoffs.
	Medium
	// Poor: at or above the Medium cutoff.
	Poor
)

var tierNames = map[Tier][2]string{
	Excellent: {"Excellent", "优秀"},
	Good:      {"Good", "良好"},
	Medium:    {"Medium", "中等"},
	Poor:      {"Poor", "较差"},
}

// String returns the English tier name.
func (t Tier) String() string {
	if n, ok := tierNames[t]; ok {
		return n[0]
	}

	return "Unknown"
}

// Label returns the localized tier name.
func (t Tier) Label() string {
	if n, ok := tierNames[t]; ok {
		return n[1]
	}

	return "未知"
}

// MarshalText encodes the English tier name.
func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Sentence returns the fixed report sentence for t, quoting avgSfoc to one decimal.
func (t Tier) Sentence(avgSfoc float64) string {
	switch t {
	case Excellent:
		return fmt.Sprintf("燃油效率优秀：平均SFOC为 %.1f g/kWh，主机运行在高效区间。", avgSfoc)
	case Good:
		return fmt.Sprintf("燃油效率良好：平均SFOC为 %.1f g/kWh，整体运行经济。", avgSfoc)
	case Medium:
		return fmt.Sprintf("燃油效率中等：平均SFOC为 %.1f g/kWh，建议检查主机负荷匹配与燃油品质。", avgSfoc)
	default:
		return fmt.Sprintf("燃油效率较差：平均SFOC为 %.1f g/kWh，建议尽快检查喷油系统、增压器及主机工况。", avgSfoc)
	}
}

// Cutoffs are the lower bounds of the Good, Medium and Poor tiers, named
// after the tier they close: values below Excellent grade Excellent, and so on.
type Cutoffs struct {
	Excellent float64 `mapstructure:"excellent" yaml:"excellent"`
	Good      float64 `mapstructure:"good" yaml:"good"`
	Medium    float64 `mapstructure:"medium" yaml:"medium"`
}

// DefaultCutoffs returns {170, 190, 210}.
func DefaultCutoffs() Cutoffs {
	return Cutoffs{Excellent: 170, Good: 190, Medium: 210}
}

// Validate checks that the cutoffs are finite and strictly increasing.
func (c Cutoffs) Validate() error {
	for _, v := range []float64{c.Excellent, c.Good, c.Medium} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadCutoffs
		}
	}
	if !(c.Excellent < c.Good && c.Good < c.Medium) {
		return ErrBadCutoffs
	}

	return nil
}

// Grade maps avgSfoc to a tier. NaN grades Poor.
func (c Cutoffs) Grade(avgSfoc float64) Tier {
	switch {
	case avgSfoc < c.Excellent:
		return Excellent
	case avgSfoc < c.Good:
		return Good
	case avgSfoc < c.Medium:
		return Medium
	default:
		return Poor
	}
}

// Grade grades avgSfoc with DefaultCutoffs.
func Grade(avgSfoc float64) Tier {
	return DefaultCutoffs().Grade(avgSfoc)
}
