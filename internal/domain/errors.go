package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or out-of-range input, reported before
	// any store access.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidAmount is raised for zero or negative amounts.
	ErrInvalidAmount = fmt.Errorf("amount must be positive: %w", ErrValidation)

	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrConcurrencyConflict is returned after bounded internal retries on a
	// version conflict; the whole operation is safe to retry.
	ErrConcurrencyConflict = errors.New("concurrent balance update conflict")
	// ErrInvalidStateTransition signals a stale or duplicate approve/reject.
	ErrInvalidStateTransition = errors.New("invalid request state transition")
	// ErrInvariantViolation signals an internal bug, e.g. releasing more than
	// is locked. The operation is aborted with state unchanged.
	ErrInvariantViolation = errors.New("balance invariant violation")

	ErrAccountNotFound = errors.New("account not found")
	ErrRequestNotFound = errors.New("request not found")
)
