// SPDX-License-Identifier: MIT

package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Numbers are pointers so that a missing key is distinguishable from zero.

type clusteringDoc struct {
	KMeans          *kmeansDoc   `json:"kmeans" validate:"required"`
	AvgRPM          *float64     `json:"avgRpm" validate:"required,finite"`
	AvgPower        *float64     `json:"avgPower" validate:"required,finite"`
	AvgFuelFlow     *float64     `json:"avgFuelFlow" validate:"required,finite"`
	TotalPoints     *int         `json:"totalPoints" validate:"required,min=0"`
	ClusterAnalysis []clusterDoc `json:"clusterAnalysis" validate:"required,dive"`
}

type kmeansDoc struct {
	Iterations *int        `json:"iterations" validate:"required,min=0"`
	Converged  *bool       `json:"converged" validate:"required"`
	Centroids  [][]float64 `json:"centroids" validate:"required,dive,len=3,dive,finite"`
}

type clusterDoc struct {
	ClusterID  *int        `json:"clusterId" validate:"required,min=0"`
	Mode       *modeDoc    `json:"mode" validate:"required"`
	Data       [][]float64 `json:"data" validate:"required,dive,len=2,dive,finite"`
	AvgRPM     *float64    `json:"avgRpm" validate:"required,finite"`
	AvgPower   *float64    `json:"avgPower" validate:"required,finite"`
	Percentage *float64    `json:"percentage" validate:"required,finite,gte=0,lte=100"`
}

type modeDoc struct {
	Status string `json:"status" validate:"required"`
	Color  string `json:"color"`
}

type sfocDoc struct {
	ScatterData [][]float64   `json:"scatterData" validate:"required,dive,len=2,dive,finite"`
	LineData    [][]float64   `json:"lineData" validate:"omitempty,dive,len=2,dive,finite"`
	Statistics  *sfocStatsDoc `json:"statistics" validate:"required"`
}

type sfocStatsDoc struct {
	AvgSfoc *float64 `json:"avgSfoc" validate:"required,finite"`
	MinSfoc *float64 `json:"minSfoc" validate:"required,finite"`
	MaxSfoc *float64 `json:"maxSfoc" validate:"required,finite"`
}

type healthDoc struct {
	NormalData  [][]float64     `json:"normalData" validate:"omitempty,dive,len=2,dive,finite"`
	AnomalyData [][]float64     `json:"anomalyData" validate:"omitempty,dive,len=2,dive,finite"`
	Threshold   *float64        `json:"threshold" validate:"omitempty,finite,gt=0,lte=1"`
	Statistics  *healthStatsDoc `json:"statistics" validate:"required"`
}

type healthStatsDoc struct {
	AvgHealth *float64 `json:"avgHealth" validate:"required,finite,gte=0,lte=1"`
	MinHealth *float64 `json:"minHealth" validate:"required,finite,gte=0,lte=1"`
	MaxHealth *float64 `json:"maxHealth" validate:"required,finite,gte=0,lte=1"`
}

type historyDoc struct {
	Property string      `json:"property"`
	OtData   []recordDoc `json:"otData" validate:"required,dive"`
}

type recordDoc struct {
	Timestamp *Millis `json:"timestamp" validate:"required"`
	Payload   string  `json:"payload"`
}

// Millis is a Unix timestamp in milliseconds that decodes from a JSON
// number or a numeric string.
type Millis int64

// UnmarshalJSON implements json.Unmarshaler.
func (m *Millis) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("timestamp %s: %w", b, err)
	}
	*m = Millis(v)

	return nil
}
