// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vesselmon/internal/output"
	"github.com/katalvlaran/vesselmon/payload"
	"github.com/katalvlaran/vesselmon/report"
)

var property string

func newComposeCmd(kind payload.Kind, use, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, kind, args)
		},
	}
}

var (
	clusterCmd = newComposeCmd(payload.KindClustering, "cluster",
		"Compose an operating-regime clustering report",
		`Classify the overall operating regime, summarize the regime distribution
and emit optimization advice from a K-means clustering document.

Examples:
  vesselreport cluster kmeans.json
  cat kmeans.json | vesselreport cluster -`)

	sfocCmd = newComposeCmd(payload.KindSfoc, "sfoc",
		"Compose a fuel-efficiency (SFOC) report",
		`Grade fuel efficiency and derive variance and RPM-band insights
from an SFOC analysis document.

Examples:
  vesselreport sfoc sfoc.json
  vesselreport sfoc sfoc.json --format json`)

	healthCmd = newComposeCmd(payload.KindHealth, "health",
		"Compose a vessel health index report",
		`Compare the health index with its threshold and summarize anomalies.

Examples:
  vesselreport health health.json`)

	trendCmd = newComposeCmd(payload.KindHistory, "trend",
		"Compose a single-property history trend report",
		`Plot one telemetry property over time with max/min/average marks.

Examples:
  vesselreport trend history.json
  vesselreport trend history.json --property boiler_pressure`)

	autoCmd = newComposeCmd("", "report",
		"Compose a report, detecting the document kind",
		`Detect the document kind from its top-level keys and compose the matching report.

Examples:
  vesselreport report result.json`)
)

func init() {
	trendCmd.Flags().StringVarP(&property, "property", "p", "", "telemetry property key (default: the document's property)")

	for _, c := range []*cobra.Command{clusterCmd, sfocCmd, healthCmd, trendCmd, autoCmd} {
		rootCmd.AddCommand(c)
	}
}

func runCompose(cmd *cobra.Command, kind payload.Kind, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	r, err := payload.Compose(composer, kind, data, property)
	if err != nil {
		return err
	}

	return render(cmd, r)
}

func render(cmd *cobra.Command, r *report.Report) error {
	if cfg.Output.Format == "json" {
		return output.WriteJSON(cmd.OutOrStdout(), r)
	}
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.Report(r)

	return nil
}
