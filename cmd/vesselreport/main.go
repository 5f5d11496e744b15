// SPDX-License-Identifier: MIT

// Command vesselreport composes operating-regime, fuel-efficiency, health and
// trend reports from analytics-service JSON documents.
package main

import (
	"os"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	if err := Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
