package chain

import (
	"github.com/ib-77/ropval/pkg/rop"
	"github.com/ib-77/ropval/pkg/rop/solo"
	"github.com/ib-77/ropval/pkg/rop/validation"
)

// Chain wraps a rop.Result to enable fluent, short-circuiting chaining
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: rop.Success(value)}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.Bind(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error); the error becomes a
// single ValidationError built by errorMapper
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error),
	errorMapper func(error) rop.ValidationError) *Chain[U] {
	return Then(c, solo.Try(tryOnSuccess, errorMapper))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Check fails the chain when predicate rejects the current value
func (c *Chain[T]) Check(predicate func(T) bool, message, property string) *Chain[T] {
	return &Chain[T]{result: validation.ValidateWithFunc(c.result, predicate, message, property)}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: c.result.Tap(onSuccess)}
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T]) OnFailure(onFailure func(rop.ValidationErrors)) *Chain[T] {
	return &Chain[T]{result: c.result.TapError(onFailure)}
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(rop.ValidationErrors) U) U {
	return solo.MatchTo(c.result, onSuccess, onFailure)
}
