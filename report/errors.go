// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every input validation failure.
	ErrValidation = errors.New("report: invalid input")

	// ErrBadConfig indicates an invalid regime table or SFOC cutoffs given to NewComposer.
	ErrBadConfig = errors.New("report: invalid composer configuration")
)

// ValidationError names the offending input field. It unwraps to ErrValidation.
type ValidationError struct {
	Field  string // JSON-style path, e.g. "clusterAnalysis[1].percentage"
	Reason string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("report: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(op, field, reason string) error {
	return reportErrorf(op, &ValidationError{Field: field, Reason: reason})
}

func reportErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
