// SPDX-License-Identifier: MIT

// Package series turns labeled point groups into chart-ready series.
//
// The mapping is deterministic and 1:1: group i becomes series i. A group
// without a color takes Palette[i % len(Palette)]. Marker groups (cluster
// centers, anomalies) are appended after every ordinary group and carry a
// higher z so they render on top. All point data is copied; the returned
// series never alias the caller's slices.
package series
