package rop

import (
	"reflect"

	"go.uber.org/multierr"
)

// IsNil reports whether i is nil, including typed nils held in an interface
// (pointers, funcs, maps, slices, chans, interfaces).
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ErrorsOf splits a combined error back into its parts.
func ErrorsOf(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	return multierr.Errors(err)
}

// ValidationErrorsOf recovers the ValidationError parts of err. Parts that
// are not ValidationErrors are converted with their Error text as message.
func ValidationErrorsOf(err error) ValidationErrors {
	parts := ErrorsOf(err)
	if len(parts) == 0 {
		return nil
	}
	out := make(ValidationErrors, 0, len(parts))
	for _, p := range parts {
		switch e := p.(type) {
		case ValidationError:
			out = append(out, e)
		case ValidationErrors:
			out = append(out, e...)
		default:
			out = append(out, ValidationError{Message: p.Error()})
		}
	}
	return out
}

func combine(errs ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	parts := make([]error, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e)
	}
	return multierr.Combine(parts...)
}
