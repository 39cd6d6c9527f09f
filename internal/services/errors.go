// internal/services/errors.go
package services

import "errors"

// Error taxonomy. Handlers map these classes to HTTP status codes with
// errors.Is; everything else is treated as an internal error.
var (
	// ErrInvalidInput covers missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound covers absent referenced entities (order, artisan,
	// catalog item).
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor is not a party to the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState means the requested transition is not legal from
	// the current order status.
	ErrInvalidState = errors.New("invalid state")
)
