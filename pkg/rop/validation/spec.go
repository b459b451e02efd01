package validation

// Specification is the only capability validation needs from a
// specification object.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// SpecFunc adapts a plain predicate to Specification.
type SpecFunc[T any] func(candidate T) bool

func (f SpecFunc[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}
