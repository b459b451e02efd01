package combine

import (
	"github.com/ib-77/ropval/pkg/rop"
)

// T2 holds the values of two successful Results in argument order.
type T2[A, B any] struct {
	V1 A
	V2 B
}

type T3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

type T4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

type T5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Results scans every input. The first success is kept as the candidate
// value, but any failure anywhere voids it and all errors are returned in
// input order. An empty input panics with rop.ErrEmptyFailure.
func Results[T any](results ...rop.Result[T]) rop.Result[T] {
	if len(results) == 0 {
		rop.PanicEmptyFailure("combine.Results")
	}

	var (
		candidate T
		found     bool
		errs      rop.ValidationErrors
	)
	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Errors()...)
			continue
		}
		if !found {
			candidate = r.Value()
			found = true
		}
	}

	if len(errs) > 0 {
		return rop.FailureOf[T](errs)
	}
	return rop.Success(candidate)
}

// Outcomes succeeds iff none of the inputs failed.
func Outcomes(outcomes ...rop.Outcome) rop.Outcome {
	var errs rop.ValidationErrors
	for _, o := range outcomes {
		errs = append(errs, o.Errors()...)
	}
	if len(errs) > 0 {
		return rop.FailureOutcome(errs...)
	}
	return rop.Ok()
}

// Two requires both inputs to succeed.
func Two[A, B any](ra rop.Result[A], rb rop.Result[B]) rop.Result[T2[A, B]] {
	if errs := collect(ra, rb); len(errs) > 0 {
		return rop.FailureOf[T2[A, B]](errs)
	}
	return rop.Success(T2[A, B]{V1: ra.Value(), V2: rb.Value()})
}

func Three[A, B, C any](ra rop.Result[A], rb rop.Result[B], rc rop.Result[C]) rop.Result[T3[A, B, C]] {
	if errs := collect(ra, rb, rc); len(errs) > 0 {
		return rop.FailureOf[T3[A, B, C]](errs)
	}
	return rop.Success(T3[A, B, C]{V1: ra.Value(), V2: rb.Value(), V3: rc.Value()})
}

func Four[A, B, C, D any](ra rop.Result[A], rb rop.Result[B], rc rop.Result[C],
	rd rop.Result[D]) rop.Result[T4[A, B, C, D]] {

	if errs := collect(ra, rb, rc, rd); len(errs) > 0 {
		return rop.FailureOf[T4[A, B, C, D]](errs)
	}
	return rop.Success(T4[A, B, C, D]{V1: ra.Value(), V2: rb.Value(), V3: rc.Value(), V4: rd.Value()})
}

func Five[A, B, C, D, E any](ra rop.Result[A], rb rop.Result[B], rc rop.Result[C],
	rd rop.Result[D], re rop.Result[E]) rop.Result[T5[A, B, C, D, E]] {

	if errs := collect(ra, rb, rc, rd, re); len(errs) > 0 {
		return rop.FailureOf[T5[A, B, C, D, E]](errs)
	}
	return rop.Success(T5[A, B, C, D, E]{
		V1: ra.Value(), V2: rb.Value(), V3: rc.Value(), V4: rd.Value(), V5: re.Value(),
	})
}

func collect(reporters ...rop.Reporter) rop.ValidationErrors {
	var errs rop.ValidationErrors
	for _, r := range reporters {
		errs = append(errs, r.Errors()...)
	}
	return errs
}
