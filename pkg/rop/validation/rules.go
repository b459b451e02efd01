package validation

import (
	"cmp"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/ropval/pkg/rop"
)

// Rule is one deferred check with the error it reports when Check is false.
// Constructors build the error eagerly, so an empty message panics with
// rop.ErrNilArgument at construction time.
type Rule struct {
	Check func() bool
	Error rop.ValidationError
}

func newRule(check func() bool, message, property string) Rule {
	return Rule{Check: check, Error: rop.NewValidationError(message, property)}
}

// Apply evaluates every rule and collects the failing ones in order.
func Apply(rules ...Rule) rop.Outcome {
	var errs rop.ValidationErrors
	for _, r := range rules {
		rop.MustNotBeNil(r.Check, "validation.Apply", "Rule.Check")
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) > 0 {
		return rop.FailureOutcome(errs...)
	}
	return rop.Ok()
}

// Condition wraps a precomputed boolean.
func Condition(valid bool, message, property string) Rule {
	return newRule(func() bool { return valid }, message, property)
}

func Predicate(check func() bool, message, property string) Rule {
	rop.MustNotBeNil(check, "validation.Predicate", "check")
	return newRule(check, message, property)
}

// Satisfies checks value against spec. A nil spec panics with
// rop.ErrNilArgument.
func Satisfies[T any](spec Specification[T], value T, message, property string) Rule {
	rop.MustNotBeNil(spec, "validation.Satisfies", "spec")
	return newRule(func() bool { return spec.IsSatisfiedBy(value) }, message, property)
}

func NotNil(value any, message, property string) Rule {
	return newRule(func() bool { return !rop.IsNil(value) }, message, property)
}

func NotEmpty(value, message, property string) Rule {
	return newRule(func() bool { return value != "" }, message, property)
}

func NotBlank(value, message, property string) Rule {
	return newRule(func() bool { return strings.TrimSpace(value) != "" }, message, property)
}

// InRange is inclusive on both bounds.
func InRange[T cmp.Ordered](value, min, max T, message, property string) Rule {
	return newRule(func() bool {
		return cmp.Compare(value, min) >= 0 && cmp.Compare(value, max) <= 0
	}, message, property)
}

// Length checks the rune count of value against [min, max] inclusive. The
// empty string always fails.
func Length(value string, min, max int, message, property string) Rule {
	return newRule(func() bool {
		if value == "" {
			return false
		}
		n := utf8.RuneCountInString(value)
		return n >= min && n <= max
	}, message, property)
}

func NotEmptySlice[E any](value []E, message, property string) Rule {
	return newRule(func() bool { return len(value) > 0 }, message, property)
}

func NotEmptyMap[K comparable, V any](value map[K]V, message, property string) Rule {
	return newRule(func() bool { return len(value) > 0 }, message, property)
}
