// Package combine joins independent Results while accumulating failures.
//
// Two shapes with deliberately different rules:
// - Two..Five require every input to succeed and return a tuple (T2..T5);
//   otherwise every failing argument contributes its errors, in order
// - Results needs at least one success, but a failure anywhere in the
//   sequence still wins and all errors seen are reported
//
// Outcomes is the value-less variant: success iff nothing failed.
package combine
