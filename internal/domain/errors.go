package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEventFull indicates a registration was rejected because the event
	// reached its attendee capacity. Recoverable; no state is mutated.
	ErrEventFull = errors.New("event is full")

	// ErrInvalidInput indicates the caller supplied a value the domain rejects.
	ErrInvalidInput = errors.New("invalid input")
)
