// SPDX-License-Identifier: MIT

// Package config provides Viper-based configuration for vesselreport.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/vesselmon/efficiency"
	"github.com/katalvlaran/vesselmon/regime"
	"github.com/katalvlaran/vesselmon/report"
)

// EnvPrefix prefixes environment overrides, e.g. VESSELREPORT_OUTPUT_FORMAT.
const EnvPrefix = "VESSELREPORT"

// ErrInvalid is matched by every configuration validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete vesselreport configuration.
type Config struct {
	Rules   RulesConfig   `mapstructure:"rules"`
	Sfoc    SfocConfig    `mapstructure:"sfoc"`
	Cluster ClusterConfig `mapstructure:"cluster"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// RulesConfig points at an optional regime table file.
type RulesConfig struct {
	File string `mapstructure:"file"`
}

// SfocConfig holds the efficiency tier cutoffs.
type SfocConfig struct {
	Cutoffs efficiency.Cutoffs `mapstructure:"cutoffs"`
}

// ClusterConfig holds cluster report settings.
type ClusterConfig struct {
	PercentTolerance float64 `mapstructure:"percent_tolerance"`
}

// BatchConfig holds batch composition settings.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Colors bool   `mapstructure:"colors"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"rules":   "rules.file",
	"format":  "output.format",
	"workers": "batch.workers",
}

// Load reads configuration from cfgFile (or .vesselreport.yaml in the usual
// places), the environment and the given flags, in increasing precedence.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".vesselreport")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vesselreport")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file, env or flag is set.
func Default() *Config {
	c := efficiency.DefaultCutoffs()

	return &Config{
		Sfoc:    SfocConfig{Cutoffs: c},
		Cluster: ClusterConfig{PercentTolerance: report.DefaultPercentTolerance},
		Batch:   BatchConfig{Workers: 4},
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Colors: true, Format: "text"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("rules.file", d.Rules.File)

	v.SetDefault("sfoc.cutoffs.excellent", d.Sfoc.Cutoffs.Excellent)
	v.SetDefault("sfoc.cutoffs.good", d.Sfoc.Cutoffs.Good)
	v.SetDefault("sfoc.cutoffs.medium", d.Sfoc.Cutoffs.Medium)

	v.SetDefault("cluster.percent_tolerance", d.Cluster.PercentTolerance)
	v.SetDefault("batch.workers", d.Batch.Workers)

	v.SetDefault("logging.level", d.Logging.Level)

	v.SetDefault("output.colors", d.Output.Colors)
	v.SetDefault("output.format", d.Output.Format)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: logging level %q (must be debug, info, warn, or error)", ErrInvalid, c.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("%w: output format %q (must be text or json)", ErrInvalid, c.Output.Format)
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch workers %d (must be at least 1)", ErrInvalid, c.Batch.Workers)
	}
	if c.Cluster.PercentTolerance < 0 {
		return fmt.Errorf("%w: cluster percent tolerance %v (must not be negative)", ErrInvalid, c.Cluster.PercentTolerance)
	}
	if err := c.Sfoc.Cutoffs.Validate(); err != nil {
		return fmt.Errorf("%w: sfoc cutoffs: %w", ErrInvalid, err)
	}

	return nil
}

// Table returns the regime table named by rules.file, or the default table.
func (c *Config) Table() (regime.Table, error) {
	if c.Rules.File == "" {
		return regime.DefaultTable(), nil
	}
	f, err := os.Open(c.Rules.File)
	if err != nil {
		return regime.Table{}, fmt.Errorf("opening rules: %w", err)
	}
	defer f.Close()

	t, err := regime.LoadTable(f)
	if err != nil {
		return regime.Table{}, fmt.Errorf("loading rules %s: %w", c.Rules.File, err)
	}

	return t, nil
}

// ComposerOptions translates the configuration into report options.
func (c *Config) ComposerOptions() ([]report.Option, error) {
	t, err := c.Table()
	if err != nil {
		return nil, err
	}

	return []report.Option{
		report.WithRegimeTable(t),
		report.WithCutoffs(c.Sfoc.Cutoffs),
		report.WithPercentTolerance(c.Cluster.PercentTolerance),
	}, nil
}
