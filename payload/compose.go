// SPDX-License-Identifier: MIT

package payload

import (
	"bytes"

	"github.com/katalvlaran/vesselmon/report"
)

// Compose decodes data as kind and builds its report with c. An empty kind
// is sniffed from the document. property is only used for history documents.
func Compose(c *report.Composer, kind Kind, data []byte, property string) (*report.Report, error) {
	const op = "Compose"

	if kind == "" {
		k, err := Sniff(data)
		if err != nil {
			return nil, payloadErrorf(op, err)
		}
		kind = k
	}

	r := bytes.NewReader(data)
	switch kind {
	case KindClustering:
		in, err := DecodeClustering(r)
		if err != nil {
			return nil, payloadErrorf(op, err)
		}
		return c.Cluster(in)
	case KindSfoc:
		in, err := DecodeSfoc(r)
		if err != nil {
			return nil, payloadErrorf(op, err)
		}
		return c.Sfoc(in)
	case KindHealth:
		in, err := DecodeHealth(r)
		if err != nil {
			return nil, payloadErrorf(op, err)
		}
		return c.Health(in)
	case KindHistory:
		in, err := DecodeHistory(r, property)
		if err != nil {
			return nil, payloadErrorf(op, err)
		}
		return c.Trend(in)
	default:
		return nil, payloadErrorf(op, ErrUnknownKind)
	}
}
