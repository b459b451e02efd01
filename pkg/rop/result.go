package rop

import (
	"github.com/google/uuid"
)

// Result is either a success carrying a value or a failure carrying one or
// more ValidationErrors. It is immutable once built. The zero Result is a
// success holding the zero T with a nil Id.
type Result[T any] struct {
	id     uuid.UUID
	value  T
	errors ValidationErrors
}

func Success[T any](value T) Result[T] {
	return Result[T]{
		id:    uuid.New(),
		value: value,
	}
}

// Failure builds a failed Result. It panics with ErrEmptyFailure when no
// errors are given and with ErrNilArgument when an error has no message,
// including errors written as struct literals.
func Failure[T any](errs ...ValidationError) Result[T] {
	MustHaveMessages(errs, "Failure")
	return Result[T]{
		id:     uuid.New(),
		errors: ValidationErrors(errs).clone(),
	}
}

// FailureOf is Failure for an existing collection.
func FailureOf[T any](errs ValidationErrors) Result[T] {
	return Failure[T](errs...)
}

// Fail builds a single-error failure from a message and optional property.
func Fail[T any](message, property string) Result[T] {
	return Failure[T](NewValidationError(message, property))
}

// FailFrom carries the errors of a failed Result into another value type.
// It panics with ErrInvalidState when from succeeded.
func FailFrom[Out, In any](from Result[In]) Result[Out] {
	if from.IsSuccess() {
		panic(newContractError(ErrInvalidState, "FailFrom", "source succeeded"))
	}
	return Result[Out]{
		id:     uuid.New(),
		errors: from.errors,
	}
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) IsSuccess() bool {
	return len(r.errors) == 0
}

func (r Result[T]) IsFailure() bool {
	return len(r.errors) > 0
}

// Value returns the success value. Reading it from a failure is a contract
// violation and panics with ErrInvalidState.
func (r Result[T]) Value() T {
	if r.IsFailure() {
		panic(newContractError(ErrInvalidState, "Value", "result is a failure"))
	}
	return r.value
}

// Errors returns a copy of the failure's errors; nil on success.
func (r Result[T]) Errors() ValidationErrors {
	return r.errors.clone()
}

// Err combines the errors into a single error, nil on success.
func (r Result[T]) Err() error {
	return combine(r.errors)
}

// Unwrap converts the Result into the usual (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// Tap runs f with the value on success. The same Result is returned.
func (r Result[T]) Tap(f func(T)) Result[T] {
	MustNotBeNil(f, "Tap", "f")
	if r.IsSuccess() {
		f(r.value)
	}
	return r
}

// TapError runs f with the errors on failure. The same Result is returned.
func (r Result[T]) TapError(f func(ValidationErrors)) Result[T] {
	MustNotBeNil(f, "TapError", "f")
	if r.IsFailure() {
		f(r.Errors())
	}
	return r
}

// Match invokes exactly one branch and returns the same Result.
// Use solo.MatchTo to produce a value instead.
func (r Result[T]) Match(onSuccess func(T), onFailure func(ValidationErrors)) Result[T] {
	MustNotBeNil(onSuccess, "Match", "onSuccess")
	MustNotBeNil(onFailure, "Match", "onFailure")
	if r.IsSuccess() {
		onSuccess(r.value)
	} else {
		onFailure(r.Errors())
	}
	return r
}

// ValueOrDefault returns the value, or def on failure.
func (r Result[T]) ValueOrDefault(def T) T {
	if r.IsFailure() {
		return def
	}
	return r.value
}

// ValueOr returns the value, or f(errors) on failure. f runs only on failure.
func (r Result[T]) ValueOr(f func(ValidationErrors) T) T {
	MustNotBeNil(f, "ValueOr", "f")
	if r.IsFailure() {
		return f(r.Errors())
	}
	return r.value
}

// ToOutcome drops the value and keeps the state and errors.
func (r Result[T]) ToOutcome() Outcome {
	return Outcome{
		id:     uuid.New(),
		errors: r.errors,
	}
}
