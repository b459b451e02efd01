package rop

import "github.com/google/uuid"

// Reporter is the read-only view adapters (response envelopes, loggers)
// need from a Result or an Outcome.
type Reporter interface {
	Id() uuid.UUID
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Errors returns the ordered failures, empty on success
	Errors() ValidationErrors
}

// ValueReporter extends Reporter with the success value.
type ValueReporter[T any] interface {
	Reporter
	// Value returns the success value; it panics on failure
	Value() T
}

var (
	_ Reporter           = Outcome{}
	_ ValueReporter[int] = Result[int]{}
)
