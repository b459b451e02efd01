// Package rop defines the Result types used across the module.
//
// Result[T] is either a success carrying a value or a failure carrying one or
// more ValidationErrors; Outcome is the same without a value. Both are
// immutable: every transformation returns a new instance (with a new Id),
// while pass-through operations such as Tap return the receiver.
//
// Domain failures travel inside Results. Programmer mistakes (nil callbacks,
// reading the value of a failure, building an empty failure) panic with a
// *ContractError that wraps ErrNilArgument, ErrInvalidState or
// ErrEmptyFailure.
package rop
