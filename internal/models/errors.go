package models

import "errors"

// Failure taxonomy shared by services and handlers. Services wrap these with
// %w so handlers can map them to a status code with errors.Is.
var (
	// ErrUnauthenticated is returned when an operation requires an active
	// session and none is present. Callers should redirect to login.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrNotCancellable is returned when a cancellation is attempted on a
	// booking whose date is not strictly in the future.
	ErrNotCancellable = errors.New("booking can no longer be cancelled")

	// ErrNotFound is returned when a referenced room or booking does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable is returned when a read or write against the
	// document store fails. State is left unchanged; retry is manual.
	ErrStoreUnavailable = errors.New("document store unavailable")
)
