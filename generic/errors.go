/*
errors.go - Centralized error types for the generic repository

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages should wrap these errors with additional context.

ERROR CATEGORIES:
  1. Validation errors - Entity field invariant violations
  2. Repository errors - Duplicate keys, corrupt snapshots

NOT ERRORS:
  Absent keys are NOT errors. Get reports absence via its ok result,
  Update and Delete via their bool result. Only rule violations and
  storage failures surface as errors.

USAGE:
  Callers can branch on error kind:

    if errors.Is(err, generic.ErrDuplicateKey) {
        // key collision, nothing was written
    }

SEE ALSO:
  - repository.go: Raises these errors
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is returned when an entity field violates its invariant.
	// Raised at construction time, before any persistence attempt.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateKey is returned by Create when an entity with the same
	// key already exists in the snapshot. No write occurs.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCorruptSnapshot is returned when the stored snapshot cannot be
	// decoded. The snapshot is left untouched for inspection.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError identifies which field failed which rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DuplicateKeyError reports the colliding business key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("entity with key %q already exists", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than a storage failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicateKey)
}
