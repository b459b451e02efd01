package validation

import (
	"strconv"

	"github.com/ib-77/ropval/pkg/rop"
)

// IndexPath is the property name given to the i-th item of a collection.
func IndexPath(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// ValidateValue succeeds with value iff spec accepts it.
func ValidateValue[T any](spec Specification[T], value T, message, property string) rop.Result[T] {
	rop.MustNotBeNil(spec, "ValidateValue", "spec")
	if spec.IsSatisfiedBy(value) {
		return rop.Success(value)
	}
	return rop.Fail[T](message, property)
}

// ValidateMany returns one Result per value, in input order, each failure
// named by its index path.
func ValidateMany[T any](spec Specification[T], values []T, message string) []rop.Result[T] {
	rop.MustNotBeNil(spec, "ValidateMany", "spec")
	out := make([]rop.Result[T], 0, len(values))
	for i, v := range values {
		out = append(out, ValidateValue(spec, v, message, IndexPath(i)))
	}
	return out
}

// ValidateAll succeeds with every value only if no item fails; otherwise it
// reports the errors of every failing item in item order.
func ValidateAll[T any](spec Specification[T], values []T, message string) rop.Result[[]T] {
	var errs rop.ValidationErrors
	for _, r := range ValidateMany(spec, values, message) {
		errs = append(errs, r.Errors()...)
	}
	if len(errs) > 0 {
		return rop.FailureOf[[]T](errs)
	}
	out := make([]T, len(values))
	copy(out, values)
	return rop.Success(out)
}

// ValidateWith extends r with another check. A failed r is returned as is
// and spec is not consulted.
func ValidateWith[T any](r rop.Result[T], spec Specification[T], message, property string) rop.Result[T] {
	rop.MustNotBeNil(spec, "ValidateWith", "spec")
	if r.IsFailure() || spec.IsSatisfiedBy(r.Value()) {
		return r
	}
	return rop.FailureOf[T](rop.Concat(r.Errors(), rop.ValidationErrors{rop.NewValidationError(message, property)}))
}

// ValidateWithFunc is ValidateWith for a bare predicate.
func ValidateWithFunc[T any](r rop.Result[T], predicate func(T) bool, message, property string) rop.Result[T] {
	rop.MustNotBeNil(predicate, "ValidateWithFunc", "predicate")
	return ValidateWith[T](r, SpecFunc[T](predicate), message, property)
}

// ValidateAndMap runs validator on the value of a successful r. Errors of r
// come before the validator's own.
func ValidateAndMap[T, U any](r rop.Result[T], validator func(T) rop.Result[U]) rop.Result[U] {
	rop.MustNotBeNil(validator, "ValidateAndMap", "validator")
	if r.IsFailure() {
		return rop.FailFrom[U](r)
	}
	next := validator(r.Value())
	if next.IsSuccess() {
		return next
	}
	return rop.FailureOf[U](rop.Concat(r.Errors(), next.Errors()))
}
