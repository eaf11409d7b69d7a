/*
errors.go - Centralized error types for the ledger engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages wrap these with additional context.

ERROR PHILOSOPHY:
  Arithmetic invariant violations (an unbalanced event, a non-converging
  solve) are reported inside output structures so one bad event cannot abort
  a multi-period run. Go errors are reserved for programmer mistakes:
  referencing an account the chart does not define, registering the same
  code twice, parsing a malformed period.

USAGE:
    if errors.Is(err, ledger.ErrUnknownAccount) { ... }
*/
package ledger

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownAccount is returned when a posted entry references an
	// account code the registry does not define.
	ErrUnknownAccount = errors.New("unknown account code")

	// ErrDuplicateAccount is returned when a chart defines the same account
	// code twice.
	ErrDuplicateAccount = errors.New("duplicate account code")

	// ErrEmptyChart is returned when a registry is built with no accounts.
	ErrEmptyChart = errors.New("chart of accounts is empty")

	// ErrInvalidSide is returned for a normal side other than DEBIT/CREDIT.
	ErrInvalidSide = errors.New("invalid normal side")

	// ErrInvalidClassification is returned for an unrecognized statement
	// classification.
	ErrInvalidClassification = errors.New("invalid classification")

	// ErrInvalidPeriod is returned when a period string is malformed.
	ErrInvalidPeriod = errors.New("invalid period")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownAccountError reports which account and event tripped the lookup.
type UnknownAccountError struct {
	Account string
	EventID string
}

func (e *UnknownAccountError) Error() string {
	if e.EventID == "" {
		return fmt.Sprintf("unknown account code %q", e.Account)
	}
	return fmt.Sprintf("unknown account code %q (event %s)", e.Account, e.EventID)
}

func (e *UnknownAccountError) Unwrap() error { return ErrUnknownAccount }
