// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vesselmon/efficiency"
	"github.com/katalvlaran/vesselmon/internal/config"
	"github.com/katalvlaran/vesselmon/regime"
	"github.com/katalvlaran/vesselmon/report"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoad_Defaults uses built-in values when no file exists.
func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, efficiency.DefaultCutoffs(), cfg.Sfoc.Cutoffs)
}

// TestLoad_File reads nested keys from YAML.
func TestLoad_File(t *testing.T) {
	path := writeFile(t, "vr.yaml", `
sfoc:
  cutoffs:
    excellent: 175
    good: 195
    medium: 215
cluster:
  percent_tolerance: 2.5
batch:
  workers: 8
logging:
  level: debug
output:
  colors: false
  format: json
`)
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, efficiency.Cutoffs{Excellent: 175, Good: 195, Medium: 215}, cfg.Sfoc.Cutoffs)
	assert.Equal(t, 2.5, cfg.Cluster.PercentTolerance)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Output.Colors)
	assert.Equal(t, "json", cfg.Output.Format)
}

// TestLoad_EnvAndFlags checks precedence: flag over env over file.
func TestLoad_EnvAndFlags(t *testing.T) {
	path := writeFile(t, "vr.yaml", "batch:\n  workers: 2\noutput:\n  format: text\n")
	t.Setenv("VESSELREPORT_BATCH_WORKERS", "6")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Batch.Workers)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "text", "")
	flags.Int("workers", 1, "")
	require.NoError(t, flags.Parse([]string{"--workers", "3", "--format", "json"}))

	cfg, err = config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Batch.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
}

// TestLoad_UnchangedFlagKeepsFile leaves file values alone when a flag is not set.
func TestLoad_UnchangedFlagKeepsFile(t *testing.T) {
	path := writeFile(t, "vr.yaml", "output:\n  format: json\n")
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "text", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
}

// TestLoad_Invalid rejects bad values and missing explicit files.
func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":     "logging:\n  level: loud\n",
		"format":    "output:\n  format: xml\n",
		"workers":   "batch:\n  workers: 0\n",
		"tolerance": "cluster:\n  percent_tolerance: -1\n",
		"cutoffs":   "sfoc:\n  cutoffs:\n    excellent: 200\n    good: 190\n    medium: 210\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "vr.yaml", body), nil)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

// TestConfig_Table loads the rules file when set.
func TestConfig_Table(t *testing.T) {
	cfg := config.Default()
	tbl, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, regime.DefaultTable(), tbl)

	cfg.Rules.File = writeFile(t, "rules.yaml", `
rules:
  - regime: Economic
    rpm:   {min: 0, max: 1000}
    power: {min: 0, max: 10}
    fuelCeiling: 500
`)
	tbl, err = cfg.Table()
	require.NoError(t, err)
	require.Len(t, tbl.Rules, 1)
	assert.Equal(t, regime.Economic, tbl.Rules[0].Regime)

	cfg.Rules.File = writeFile(t, "bad.yaml", "rules: []\n")
	_, err = cfg.Table()
	assert.ErrorIs(t, err, regime.ErrEmptyTable)
}

// TestConfig_ComposerOptions builds a working composer.
func TestConfig_ComposerOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Sfoc.Cutoffs = efficiency.Cutoffs{Excellent: 230, Good: 240, Medium: 250}

	opts, err := cfg.ComposerOptions()
	require.NoError(t, err)
	c, err := report.NewComposer(opts...)
	require.NoError(t, err)
	assert.Equal(t, cfg.Sfoc.Cutoffs, c.Cutoffs())
}
