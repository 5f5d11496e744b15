// SPDX-License-Identifier: MIT

// Package telemetry holds the value types shared by the classifier and the
// report composers: the mean operating point of a main engine over an
// analysis window (Summary), single timestamped readings (Sample), and the
// catalog of machinery properties with their display labels and units.
package telemetry
