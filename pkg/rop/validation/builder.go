package validation

import (
	"cmp"

	"github.com/ib-77/ropval/pkg/rop"
)

// Builder accumulates validation errors for one subject of type T and turns
// them into a Result on Build. Every check runs; none short-circuits another
// and each failing check adds exactly one error.
//
// Messages are checked when a check is registered, not when it fails: an
// empty message panics with rop.ErrNilArgument even if the check passes.
//
// A Builder is not safe for concurrent use. Build does not reset it, so a
// later Build sees everything recorded so far.
type Builder[T any] struct {
	cfg    config
	errors rop.ValidationErrors
}

func NewBuilder[T any](opts ...Option) *Builder[T] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder[T]{
		cfg:    cfg,
		errors: make(rop.ValidationErrors, 0, cfg.capacity),
	}
}

// Validate evaluates rules in order and records each failure.
func (b *Builder[T]) Validate(rules ...Rule) *Builder[T] {
	for _, r := range rules {
		rop.MustNotBeNil(r.Check, "Builder.Validate", "Rule.Check")
		if !r.Check() {
			b.add(r.Error)
		}
	}
	return b
}

func (b *Builder[T]) ValidateCustom(valid bool, message, property string) *Builder[T] {
	return b.Validate(Condition(valid, message, property))
}

func (b *Builder[T]) ValidateFunc(check func() bool, message, property string) *Builder[T] {
	return b.Validate(Predicate(check, message, property))
}

func (b *Builder[T]) ValidateNotNil(value any, message, property string) *Builder[T] {
	return b.Validate(NotNil(value, message, property))
}

func (b *Builder[T]) ValidateNotEmpty(value, message, property string) *Builder[T] {
	return b.Validate(NotEmpty(value, message, property))
}

func (b *Builder[T]) ValidateNotBlank(value, message, property string) *Builder[T] {
	return b.Validate(NotBlank(value, message, property))
}

func (b *Builder[T]) ValidateStringLength(value string, min, max int, message, property string) *Builder[T] {
	return b.Validate(Length(value, min, max, message, property))
}

// ValidateSpec records a failure when spec rejects value. Go methods cannot
// take their own type parameters, hence the function form.
func ValidateSpec[T, V any](b *Builder[T], spec Specification[V], value V, message, property string) *Builder[T] {
	return b.Validate(Satisfies(spec, value, message, property))
}

func ValidateRange[T any, V cmp.Ordered](b *Builder[T], value, min, max V, message, property string) *Builder[T] {
	return b.Validate(InRange(value, min, max, message, property))
}

func ValidateNotEmptySlice[T, E any](b *Builder[T], value []E, message, property string) *Builder[T] {
	return b.Validate(NotEmptySlice(value, message, property))
}

// HasErrors reports whether any check failed so far.
func (b *Builder[T]) HasErrors() bool {
	return len(b.errors) > 0
}

// Errors returns a snapshot of the errors recorded so far.
func (b *Builder[T]) Errors() rop.ValidationErrors {
	out := make(rop.ValidationErrors, len(b.errors))
	copy(out, b.errors)
	return out
}

// Build returns the recorded errors as a failure, or value as a success.
func (b *Builder[T]) Build(value T) rop.Result[T] {
	if b.HasErrors() {
		return rop.FailureOf[T](b.errors)
	}
	return rop.Success(value)
}

// BuildWith is Build with a lazily produced value; factory runs only when
// nothing failed.
func (b *Builder[T]) BuildWith(factory func() T) rop.Result[T] {
	return BuildAs(b, factory)
}

// BuildOutcome drops the subject and reports only success or errors.
func (b *Builder[T]) BuildOutcome() rop.Outcome {
	if b.HasErrors() {
		return rop.FailureOutcome(b.errors...)
	}
	return rop.Ok()
}

// BuildAs finishes b with a value of another type. factory runs only when
// nothing failed.
func BuildAs[T, U any](b *Builder[T], factory func() U) rop.Result[U] {
	rop.MustNotBeNil(factory, "BuildAs", "factory")
	if b.HasErrors() {
		return rop.FailureOf[U](b.errors)
	}
	return rop.Success(factory())
}

func (b *Builder[T]) add(err rop.ValidationError) {
	err.Property = b.cfg.qualify(err.Property)
	b.errors = append(b.errors, err)
}
