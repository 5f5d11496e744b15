// SPDX-License-Identifier: MIT

// Package payload decodes analytics-service JSON documents into report inputs.
//
// Four documents are understood:
//
//	Clustering  { kmeans:{iterations,converged,centroids}, avgRpm, avgPower, avgFuelFlow,
//	              totalPoints, clusterAnalysis:[{clusterId, mode:{status,color}, data,
//	              avgRpm, avgPower, percentage}] }
//	Sfoc        { scatterData, lineData, statistics:{avgSfoc,minSfoc,maxSfoc} }
//	Health      { normalData, anomalyData, threshold, statistics:{avgHealth,minHealth,maxHealth} }
//	History     { property, otData:[{timestamp, payload}] }
//
// Required fields are checked with go-playground/validator; failures are
// reported as *ValidationError keyed by JSON path and match report.ErrValidation.
// Sniff inspects a document's top-level keys to pick its Kind, and Compose
// runs the matching decoder and report composer in one call.
package payload
