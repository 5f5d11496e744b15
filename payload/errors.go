// SPDX-License-Identifier: MIT

package payload

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/vesselmon/report"
)

var (
	// ErrDecode indicates malformed JSON or a value of the wrong JSON type.
	ErrDecode = errors.New("payload: malformed document")

	// ErrUnknownKind indicates a document whose top-level keys match no known payload.
	ErrUnknownKind = errors.New("payload: unknown document kind")
)

// ValidationError maps JSON field paths to human-readable problems.
// It unwraps to report.ErrValidation.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error lists the problems ordered by field path.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = e.Errors[f]
	}

	return "payload: validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap returns report.ErrValidation.
func (e *ValidationError) Unwrap() error { return report.ErrValidation }

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fieldPath(fe.Namespace())
		switch fe.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", field)
		case "len":
			out[field] = fmt.Sprintf("%s must have %s elements", field, fe.Param())
		case "min", "gte":
			out[field] = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "max", "lte":
			out[field] = fmt.Sprintf("%s must be at most %s", field, fe.Param())
		case "gt":
			out[field] = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case tagFinite:
			out[field] = fmt.Sprintf("%s must be a finite number", field)
		default:
			out[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: out}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func payloadErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func decodeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrDecode, err)
}
