// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Every step short-circuits: once the chain has failed, later steps are
// skipped and the first errors are kept.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Check: fail when a predicate rejects the value
// - Ensure/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
