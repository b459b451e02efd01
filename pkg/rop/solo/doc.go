// Package solo contains single-value, synchronous operations over
// rop.Result[T] that change the carried type, plus the helpers that lift plain
// functions into the Result world.
//
// Two propagation disciplines live side by side:
// - Map/Bind/Compose/MatchTo short-circuit: the first failure wins and later
//   steps never run
// - Apply/Lift2/Lift3 accumulate: every input is inspected and all errors are
//   reported in argument order
//
// Switch and Try lift total and fallible functions respectively; Try turns a
// returned error or a panic into a single ValidationError.
package solo
