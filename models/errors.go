package models

import "errors"

// Ledger error taxonomy. Validation errors are returned before any write;
// ErrDuplicateOrderNumber is retryable with a fresh number; the rest are
// surfaced to the caller as-is.
var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
	ErrNotFound             = errors.New("not found")
	ErrInvalidTransition    = errors.New("invalid check status transition")
	ErrOrderNotFound        = errors.New("order not found")
)
