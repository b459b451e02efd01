package solo

import (
	"fmt"

	"github.com/ib-77/ropval/pkg/rop"
)

// Map transforms the success value. A failure keeps its errors and f is
// never called.
func Map[In, Out any](input rop.Result[In], f func(In) Out) rop.Result[Out] {
	rop.MustNotBeNil(f, "Map", "f")
	if input.IsFailure() {
		return rop.FailFrom[Out](input)
	}
	return rop.Success(f(input.Value()))
}

// Bind continues with f on success; a failure is carried through untouched.
func Bind[In, Out any](input rop.Result[In], f func(In) rop.Result[Out]) rop.Result[Out] {
	rop.MustNotBeNil(f, "Bind", "f")
	if input.IsFailure() {
		return rop.FailFrom[Out](input)
	}
	return f(input.Value())
}

// BindOutcome continues a Result with a value-less step.
func BindOutcome[In any](input rop.Result[In], f func(In) rop.Outcome) rop.Outcome {
	rop.MustNotBeNil(f, "BindOutcome", "f")
	if input.IsFailure() {
		return input.ToOutcome()
	}
	return f(input.Value())
}

// MatchTo invokes one branch and returns what it produced.
func MatchTo[In, Out any](input rop.Result[In],
	onSuccess func(In) Out,
	onFailure func(rop.ValidationErrors) Out) Out {

	rop.MustNotBeNil(onSuccess, "MatchTo", "onSuccess")
	rop.MustNotBeNil(onFailure, "MatchTo", "onFailure")
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Errors())
}

// MatchOutcome is MatchTo for an Outcome.
func MatchOutcome[Out any](input rop.Outcome,
	onSuccess func() Out,
	onFailure func(rop.ValidationErrors) Out) Out {

	rop.MustNotBeNil(onSuccess, "MatchOutcome", "onSuccess")
	rop.MustNotBeNil(onFailure, "MatchOutcome", "onFailure")
	if input.IsSuccess() {
		return onSuccess()
	}
	return onFailure(input.Errors())
}

// MapErrors rewrites every error of a failure. Successes pass through. f
// must keep a message on every error, otherwise MapErrors panics with
// rop.ErrNilArgument.
func MapErrors[T any](input rop.Result[T], f func(rop.ValidationError) rop.ValidationError) rop.Result[T] {
	rop.MustNotBeNil(f, "MapErrors", "f")
	if input.IsSuccess() {
		return input
	}
	errs := input.Errors()
	for i := range errs {
		errs[i] = f(errs[i])
	}
	return rop.FailureOf[T](errs)
}

// FilterErrors keeps only the errors accepted by keep. When nothing is left
// the caller-provided fallback becomes the success value.
func FilterErrors[T any](input rop.Result[T], keep func(rop.ValidationError) bool, fallback T) rop.Result[T] {
	rop.MustNotBeNil(keep, "FilterErrors", "keep")
	if input.IsSuccess() {
		return input
	}
	var kept rop.ValidationErrors
	for _, e := range input.Errors() {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return rop.Success(fallback)
	}
	return rop.FailureOf[T](kept)
}

// Switch lifts a total function; the lifted function always succeeds.
func Switch[In, Out any](f func(In) Out) func(In) rop.Result[Out] {
	rop.MustNotBeNil(f, "Switch", "f")
	return func(in In) rop.Result[Out] {
		return rop.Success(f(in))
	}
}

// Try lifts a function that may return an error or panic. Either way the
// problem is turned into a single-error failure through errorMapper and the
// lifted function itself never panics on f's behalf.
func Try[In, Out any](f func(In) (Out, error),
	errorMapper func(error) rop.ValidationError) func(In) rop.Result[Out] {

	rop.MustNotBeNil(f, "Try", "f")
	rop.MustNotBeNil(errorMapper, "Try", "errorMapper")
	return func(in In) rop.Result[Out] {
		out, err := attempt(f, in)
		if err != nil {
			return rop.Failure[Out](errorMapper(err))
		}
		return rop.Success(out)
	}
}

func attempt[In, Out any](f func(In) (Out, error), in In) (out Out, err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return f(in)
}

// Compose chains two Result-returning steps. g never runs when f fails.
func Compose[A, B, C any](f func(A) rop.Result[B], g func(B) rop.Result[C]) func(A) rop.Result[C] {
	rop.MustNotBeNil(f, "Compose", "f")
	rop.MustNotBeNil(g, "Compose", "g")
	return func(a A) rop.Result[C] {
		return Bind(f(a), g)
	}
}

// Apply applies a wrapped function to a wrapped value. Unlike Bind it
// accumulates: errors of rf come first, then errors of rx.
func Apply[In, Out any](rf rop.Result[func(In) Out], rx rop.Result[In]) rop.Result[Out] {
	if rf.IsFailure() || rx.IsFailure() {
		return rop.FailureOf[Out](rop.Concat(rf.Errors(), rx.Errors()))
	}
	f := rf.Value()
	rop.MustNotBeNil(f, "Apply", "rf")
	return rop.Success(f(rx.Value()))
}

// Lift2 calls f with both values when both succeed, otherwise collects
// errors in argument order.
func Lift2[A, B, Out any](f func(A, B) Out, ra rop.Result[A], rb rop.Result[B]) rop.Result[Out] {
	rop.MustNotBeNil(f, "Lift2", "f")
	if ra.IsFailure() || rb.IsFailure() {
		return rop.FailureOf[Out](rop.Concat(ra.Errors(), rb.Errors()))
	}
	return rop.Success(f(ra.Value(), rb.Value()))
}

func Lift3[A, B, C, Out any](f func(A, B, C) Out,
	ra rop.Result[A], rb rop.Result[B], rc rop.Result[C]) rop.Result[Out] {

	rop.MustNotBeNil(f, "Lift3", "f")
	if ra.IsFailure() || rb.IsFailure() || rc.IsFailure() {
		return rop.FailureOf[Out](rop.Concat(ra.Errors(), rb.Errors(), rc.Errors()))
	}
	return rop.Success(f(ra.Value(), rb.Value(), rc.Value()))
}
