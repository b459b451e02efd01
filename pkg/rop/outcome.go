package rop

import (
	"github.com/google/uuid"
)

// Outcome is the value-less Result: success, or a failure with errors.
type Outcome struct {
	id     uuid.UUID
	errors ValidationErrors
}

func Ok() Outcome {
	return Outcome{id: uuid.New()}
}

// FailureOutcome panics with ErrEmptyFailure when no errors are given and
// with ErrNilArgument when an error has no message.
func FailureOutcome(errs ...ValidationError) Outcome {
	MustHaveMessages(errs, "FailureOutcome")
	return Outcome{
		id:     uuid.New(),
		errors: ValidationErrors(errs).clone(),
	}
}

func FailOutcome(message, property string) Outcome {
	return FailureOutcome(NewValidationError(message, property))
}

// WithValue lifts o into a Result carrying value when o succeeded, or the
// same errors when it failed.
func WithValue[T any](o Outcome, value T) Result[T] {
	if o.IsFailure() {
		return Result[T]{id: uuid.New(), errors: o.errors}
	}
	return Success(value)
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}

func (o Outcome) IsSuccess() bool {
	return len(o.errors) == 0
}

func (o Outcome) IsFailure() bool {
	return len(o.errors) > 0
}

func (o Outcome) Errors() ValidationErrors {
	return o.errors.clone()
}

func (o Outcome) Err() error {
	return combine(o.errors)
}

// Bind runs f only when o succeeded.
func (o Outcome) Bind(f func() Outcome) Outcome {
	MustNotBeNil(f, "Outcome.Bind", "f")
	if o.IsFailure() {
		return Outcome{id: uuid.New(), errors: o.errors}
	}
	return f()
}

func (o Outcome) Tap(f func()) Outcome {
	MustNotBeNil(f, "Outcome.Tap", "f")
	if o.IsSuccess() {
		f()
	}
	return o
}

func (o Outcome) TapError(f func(ValidationErrors)) Outcome {
	MustNotBeNil(f, "Outcome.TapError", "f")
	if o.IsFailure() {
		f(o.Errors())
	}
	return o
}

func (o Outcome) Match(onSuccess func(), onFailure func(ValidationErrors)) Outcome {
	MustNotBeNil(onSuccess, "Outcome.Match", "onSuccess")
	MustNotBeNil(onFailure, "Outcome.Match", "onFailure")
	if o.IsSuccess() {
		onSuccess()
	} else {
		onFailure(o.Errors())
	}
	return o
}
