// SPDX-License-Identifier: MIT

package regime

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const opLoadTable = "LoadTable"

// LoadTable decodes and validates a YAML threshold table:
//
//	fallback: HighLoad
//	rules:
//	  - regime: Standby
//	    rpm:   {min: -.inf, max: 400}
//	    power: {min: -.inf, max: 3}
//	    fuelCeiling: 50
//	  - regime: Economic
//	    rpm:   {min: 400, max: 650}
//	    power: {min: 3, max: 5}
//	    fuelCeiling: 100
//
// An omitted fallback defaults to HighLoad. Unknown keys are rejected.
// An omitted band limit decodes as 0, so open lower bounds must be written
// as -.inf explicitly.
func LoadTable(r io.Reader) (Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, ErrUnknownRegime) {
			return Table{}, regimeErrorf(opLoadTable, err)
		}

		return Table{}, fmt.Errorf("%s: %w: %v", opLoadTable, ErrDecode, err)
	}
	if t.Fallback == Unknown {
		t.Fallback = HighLoad
	}
	if err := t.Validate(); err != nil {
		return Table{}, regimeErrorf(opLoadTable, err)
	}

	return t, nil
}

// MarshalTable encodes t as YAML in the format accepted by LoadTable.
func MarshalTable(t Table) ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("MarshalTable: %w", err)
	}

	return out, nil
}
