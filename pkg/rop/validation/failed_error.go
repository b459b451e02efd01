package validation

import (
	"fmt"

	"github.com/ib-77/ropval/pkg/rop"
)

// FailedError is returned when a failed Result is converted back into a
// plain Go error.
type FailedError struct {
	Errors rop.ValidationErrors
}

func NewFailedError(errs rop.ValidationErrors) *FailedError {
	return &FailedError{Errors: errs}
}

func (e *FailedError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].String()
	}
	return fmt.Sprintf("Validation failed with %d errors: %s", len(e.Errors), e.Errors.Join("; "))
}

// Unwrap exposes each ValidationError to errors.Is and errors.As.
func (e *FailedError) Unwrap() []error {
	out := make([]error, 0, len(e.Errors))
	for _, ve := range e.Errors {
		out = append(out, ve)
	}
	return out
}

// Unwrap returns the value of a successful r. On failure it returns the
// error built by factory, or a *FailedError when factory is nil or builds
// a nil error. A failure never yields a nil error.
func Unwrap[T any](r rop.Result[T], factory func(rop.ValidationErrors) error) (T, error) {
	if r.IsSuccess() {
		return r.Value(), nil
	}
	var zero T
	if factory != nil {
		if err := factory(r.Errors()); err != nil {
			return zero, err
		}
	}
	return zero, NewFailedError(r.Errors())
}

// MustUnwrap is Unwrap that panics with the error instead of returning it.
func MustUnwrap[T any](r rop.Result[T], factory func(rop.ValidationErrors) error) T {
	v, err := Unwrap(r, factory)
	if err != nil {
		panic(err)
	}
	return v
}
