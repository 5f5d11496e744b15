// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vesselmon/internal/config"
	"github.com/katalvlaran/vesselmon/internal/output"
	"github.com/katalvlaran/vesselmon/report"
)

var (
	cfgFile   string
	verbose   bool
	colorFlag string
	cfg       *config.Config
	logger    *slog.Logger
	composer  *report.Composer
)

var rootCmd = &cobra.Command{
	Use:   "vesselreport",
	Short: "Vessel operating-regime and fuel-efficiency report engine",
	Long: `vesselreport turns analytics-service JSON documents into structured reports.

Example usage:
  vesselreport cluster kmeans.json          # Operating-regime clustering report
  vesselreport sfoc sfoc.json --format json # SFOC report as JSON
  vesselreport trend history.json -p mainEngine_rpm
  vesselreport batch results/*.json         # Compose many documents concurrently
  vesselreport rules                        # Print the effective regime table`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .vesselreport.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().String("format", "text", "output format: text or json")
	rootCmd.PersistentFlags().String("rules", "", "regime table YAML file")
}

// initConfig loads configuration, then builds the logger and the composer.
func initConfig(cmd *cobra.Command) error {
	var err error

	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return fmt.Errorf("logging level: %w", err)
	}
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	opts, err := cfg.ComposerOptions()
	if err != nil {
		return err
	}
	composer, err = report.NewComposer(append(opts, report.WithLogger(logger))...)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		"rules", cfg.Rules.File,
		"format", cfg.Output.Format,
		"workers", cfg.Batch.Workers,
	)

	return nil
}

func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return nil, err
	}

	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg.Output.Colors,
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
	}), nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(args[0])
}
