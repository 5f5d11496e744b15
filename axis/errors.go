// SPDX-License-Identifier: MIT

package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValues is returned when no samples are supplied.
	ErrNoValues = errors.New("axis: no sample values")

	// ErrNaNInf is returned when a sample is NaN or ±Inf.
	ErrNaNInf = errors.New("axis: NaN or Inf sample")

	// ErrBadOccupancy is returned when the occupancy fraction is outside (0,1].
	ErrBadOccupancy = errors.New("axis: occupancy must be in (0,1]")

	// ErrOverflow is returned when padding pushes a bound past the float64 range.
	ErrOverflow = errors.New("axis: padded range overflows float64")
)

// axisErrorf prefixes err with the operation name, keeping the sentinel for errors.Is.
func axisErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
