// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vesselmon/regime"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective regime table as YAML",
	Long: `Print the regime classification table in effect, either the built-in
table or the one loaded from --rules / rules.file.

Examples:
  vesselreport rules > rules.yaml
  vesselreport rules --rules custom.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := regime.MarshalTable(composer.Table())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "vesselreport "+version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}
