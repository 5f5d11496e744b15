// SPDX-License-Identifier: MIT
package regime_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/vesselmon/regime"
	"github.com/katalvlaran/vesselmon/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableYAML = `
fallback: HighLoad
rules:
  - regime: Standby
    rpm:   {min: -.inf, max: 350}
    power: {min: -.inf, max: 2}
    fuelCeiling: 40
  - regime: 经济巡航
    rpm:   {min: 350, max: 600}
    power: {min: 2, max: 4.5}
    fuelCeiling: 90
`

func TestLoadTable(t *testing.T) {
	tbl, err := regime.LoadTable(strings.NewReader(tableYAML))
	require.NoError(t, err)
	require.Len(t, tbl.Rules, 2)
	assert.True(t, math.IsInf(tbl.Rules[0].RPM.Min, -1))
	assert.Equal(t, regime.Economic, tbl.Rules[1].Regime)
	assert.Equal(t, regime.Economic, tbl.Classify(telemetry.Summary{AvgRPM: 380, AvgPower: 3, AvgFuelFlow: 60}))
	assert.Equal(t, regime.HighLoad, tbl.Classify(telemetry.Summary{AvgRPM: 700, AvgPower: 6, AvgFuelFlow: 150}))
}

func TestLoadTable_DefaultFallback(t *testing.T) {
	doc := `
rules:
  - regime: Normal
    rpm:   {min: 0, max: 800}
    power: {min: 0, max: 7}
    fuelCeiling: 180
`
	tbl, err := regime.LoadTable(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, regime.HighLoad, tbl.Fallback)
}

func TestLoadTable_Errors(t *testing.T) {
	_, err := regime.LoadTable(strings.NewReader("rules: [\n"))
	assert.ErrorIs(t, err, regime.ErrDecode)

	_, err = regime.LoadTable(strings.NewReader("rules: []\nextra: 1\n"))
	assert.ErrorIs(t, err, regime.ErrDecode, "unknown keys are rejected")

	_, err = regime.LoadTable(strings.NewReader("rules: []\n"))
	assert.ErrorIs(t, err, regime.ErrEmptyTable)

	_, err = regime.LoadTable(strings.NewReader("rules:\n  - regime: Cruise\n"))
	assert.ErrorIs(t, err, regime.ErrUnknownRegime)

	_, err = regime.LoadTable(strings.NewReader("rules:\n  - regime: Normal\n    rpm: {min: 0, max: 800}\n    power: {max: 7}\n"))
	assert.ErrorIs(t, err, regime.ErrBadCeiling)
}

func TestMarshalTable_RoundTrip(t *testing.T) {
	out, err := regime.MarshalTable(regime.DefaultTable())
	require.NoError(t, err)
	assert.Contains(t, string(out), "-.inf")

	back, err := regime.LoadTable(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, regime.DefaultTable(), back)
}
