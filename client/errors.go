package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps network-level failures (timeout, unreachable host).
	ErrTransport = errors.New("glowbook client: transport error")

	// ErrUnauthorized is returned on a 401; the session has been invalidated.
	ErrUnauthorized = errors.New("glowbook client: unauthorized")

	// ErrNotFound is returned on a 404.
	ErrNotFound = errors.New("glowbook client: not found")

	// ErrInvalidResponse is returned when the backend reply cannot be decoded.
	ErrInvalidResponse = errors.New("glowbook client: invalid response")

	// ErrInternal covers client-side request construction failures.
	ErrInternal = errors.New("glowbook client: internal error")
)

// APIError is a structured rejection from the backend (4xx/5xx other than
// 401/404).
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("glowbook api: %d %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("glowbook api: %d %s", e.Status, e.Message)
}
