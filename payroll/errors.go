/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Every failure is a validation failure raised at construction or at the
  point of an invalid call; nothing here is retryable.

ERROR CATEGORIES:
  1. Range errors     - start after end, value outside its domain
  2. Coverage errors  - bands/plans leave part of the day/week uncovered
  3. Overlap errors   - two bands, plans or worked intervals share a moment
  4. Duplicate errors - an employee registered twice on one ledger

USAGE:
  if errors.Is(err, payroll.ErrCoverage) {
      var cov *payroll.CoverageError
      errors.As(err, &cov) // cov.From / cov.To name the missing span
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when a range has start after end or a value
	// lies outside its domain (weekday, time of day, negative rate).
	ErrInvalidRange = errors.New("invalid range")

	// ErrCoverage is returned when bands do not cover the whole day or plans
	// do not cover the whole week.
	ErrCoverage = errors.New("incomplete coverage")

	// ErrOverlap is returned when two bands, plans or worked intervals claim
	// the same moment.
	ErrOverlap = errors.New("overlap")

	// ErrDuplicateEmployee is returned when a name is registered twice.
	ErrDuplicateEmployee = errors.New("duplicate employee")

	// ErrInvalidName is returned for an empty employee name.
	ErrInvalidName = errors.New("invalid employee name")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RangeError names the offending field and its raw value.
type RangeError struct {
	Field string
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: %s %q", e.Field, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// CoverageError names the span left uncovered, e.g. "hours" 09:01-09:59
// or "weekdays" WE-TH.
type CoverageError struct {
	Domain string
	From   string
	To     string
}

func (e *CoverageError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("incomplete coverage: %s %s not covered", e.Domain, e.From)
	}
	return fmt.Sprintf("incomplete coverage: %s %s-%s not covered", e.Domain, e.From, e.To)
}

func (e *CoverageError) Unwrap() error { return ErrCoverage }

// OverlapError names both members of the conflicting pair.
type OverlapError struct {
	Kind   string // "wage bands", "rate plans", "worked intervals"
	First  string
	Second string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping %s: %s and %s", e.Kind, e.First, e.Second)
}

func (e *OverlapError) Unwrap() error { return ErrOverlap }

type DuplicateEmployeeError struct {
	Name string
}

func (e *DuplicateEmployeeError) Error() string {
	return fmt.Sprintf("employee %q already registered", e.Name)
}

func (e *DuplicateEmployeeError) Unwrap() error { return ErrDuplicateEmployee }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid input data.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrCoverage) ||
		errors.Is(err, ErrOverlap) ||
		errors.Is(err, ErrInvalidName)
}

// IsConflict returns true if the error reports an already-registered entity.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateEmployee)
}
