// SPDX-License-Identifier: MIT

package payload

import (
	"encoding/json"
)

// Kind identifies an analytics document.
type Kind string

const (
	KindClustering Kind = "clustering"
	KindSfoc       Kind = "sfoc"
	KindHealth     Kind = "health"
	KindHistory    Kind = "history"
)

// Kinds lists the recognized kinds in sniffing order.
var Kinds = []Kind{KindClustering, KindSfoc, KindHealth, KindHistory}

// signature keys; a document matching any key of a kind is that kind.
var signatures = map[Kind][]string{
	KindClustering: {"kmeans", "clusterAnalysis"},
	KindSfoc:       {"scatterData"},
	KindHealth:     {"normalData", "anomalyData"},
	KindHistory:    {"otData"},
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}

	return "", false
}

// Sniff reports the kind of a JSON document from its top-level keys.
func Sniff(data []byte) (Kind, error) {
	const op = "Sniff"

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return "", decodeErrorf(op, err)
	}
	for _, k := range Kinds {
		for _, key := range signatures[k] {
			if _, ok := top[key]; ok {
				return k, nil
			}
		}
	}

	return "", payloadErrorf(op, ErrUnknownKind)
}
