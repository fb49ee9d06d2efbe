// Package apperr defines the failure kinds shared by the services layer.
// Callers match with errors.Is; none of these are retried internally since
// each one reflects a business-rule violation, not a transient fault.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrChefUnavailable    = errors.New("chef unavailable")
	ErrNoAvailableStaff   = errors.New("no available staff")
	ErrItemUnavailable    = errors.New("item unavailable")
	ErrInvalidTransition  = errors.New("invalid transition")
)

// Wrap attaches context to a kind while keeping it matchable with errors.Is.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
