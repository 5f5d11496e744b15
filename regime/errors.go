// SPDX-License-Identifier: MIT

package regime

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable indicates a table without rules.
	ErrEmptyTable = errors.New("regime: table has no rules")

	// ErrBadBand indicates a band with NaN limits or Min ≥ Max.
	ErrBadBand = errors.New("regime: invalid band")

	// ErrBadCeiling indicates a NaN or non-positive fuel ceiling.
	ErrBadCeiling = errors.New("regime: invalid fuel ceiling")

	// ErrDuplicateRule indicates two rules for the same regime.
	ErrDuplicateRule = errors.New("regime: duplicate rule")

	// ErrUnknownRegime indicates a regime name or value outside the closed set.
	ErrUnknownRegime = errors.New("regime: unknown regime")

	// ErrDecode indicates a malformed YAML table document.
	ErrDecode = errors.New("regime: cannot decode table")
)

func regimeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
