// SPDX-License-Identifier: MIT

package regime

import (
	"fmt"
	"strings"
	"unicode"
)

// Regime is a named operating state of the main engine.
type Regime int

const (
	// Unknown is the zero value; it is never produced by classification.
	Unknown Regime = iota
	// Standby: engine idle or barely turning.
	Standby
	// Economic: efficient cruising band.
	Economic
	// Normal: ordinary service speed.
	Normal
	// HighLoad: fallback for everything outside the bands above.
	HighLoad
)

// All lists the classifiable regimes in canonical reporting order.
var All = []Regime{Standby, Economic, Normal, HighLoad}

type regimeInfo struct {
	name           string
	label          string
	recommendation string
}

var infos = map[Regime]regimeInfo{
	Standby: {
		name:           "Standby",
		label:          "⚪ 停机待命",
		recommendation: "主机处于停机待命状态，建议排查不必要的辅机能耗并缩短待机时间。",
	},
	Economic: {
		name:           "Economic",
		label:          "🟢 经济巡航",
		recommendation: "燃油经济性最佳的运行区间，推荐保持当前航速与负荷。",
	},
	Normal: {
		name:           "Normal",
		label:          "🔵 正常航行",
		recommendation: "常规航行工况，可在航次允许时适当降低转速以进入经济巡航区间。",
	},
	HighLoad: {
		name:           "HighLoad",
		label:          "🔴 高负荷运行",
		recommendation: "主机负荷偏高，注意监控缸温与排温，避免长时间持续高负荷运行。",
	},
}

// Valid reports whether r is one of the four classifiable regimes.
func (r Regime) Valid() bool {
	_, ok := infos[r]

	return ok
}

// String returns the stable English name ("Economic"), or "Unknown".
func (r Regime) String() string {
	if info, ok := infos[r]; ok {
		return info.name
	}

	return "Unknown"
}

// Label returns the localized display label ("🟢 经济巡航").
func (r Regime) Label() string {
	if info, ok := infos[r]; ok {
		return info.label
	}

	return "未识别工况"
}

// Recommendation returns the fixed operating advice for r.
func (r Regime) Recommendation() string {
	return infos[r].recommendation
}

// MarshalText encodes r by its English name.
func (r Regime) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("MarshalText: %w", ErrUnknownRegime)
	}

	return []byte(r.String()), nil
}

// UnmarshalText accepts any spelling understood by ParseLabel.
func (r *Regime) UnmarshalText(text []byte) error {
	v, ok := ParseLabel(string(text))
	if !ok {
		return fmt.Errorf("UnmarshalText %q: %w", text, ErrUnknownRegime)
	}
	*r = v

	return nil
}

// aliases maps bare localized names and legacy dashboard cluster names.
var aliases = map[string]Regime{
	"停机待命":  Standby,
	"待机":    Standby,
	"停机":    Standby,
	"经济巡航":  Economic,
	"低负荷工况": Economic,
	"正常航行":  Normal,
	"中负荷工况": Normal,
	"高负荷运行": HighLoad,
	"高负荷工况": HighLoad,
}

// ParseLabel maps a cluster status string to a Regime. It accepts the full
// display label ("🟢 经济巡航"), the label without its leading marker
// ("经济巡航"), legacy cluster names ("高负荷工况") and English names in any
// case ("highload", "High_Load"). ok is false for anything else.
func ParseLabel(s string) (Regime, bool) {
	s = strings.TrimSpace(s)
	for _, r := range All {
		if s == infos[r].label {
			return r, true
		}
	}

	bare := strings.TrimLeftFunc(s, func(c rune) bool { return !unicode.IsLetter(c) })
	if r, ok := aliases[bare]; ok {
		return r, true
	}

	folded := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(bare))
	for _, r := range All {
		if folded == strings.ToLower(infos[r].name) {
			return r, true
		}
	}

	return Unknown, false
}
