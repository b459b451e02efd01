// Package validation collects validation failures into rop Results.
//
// Builder runs a sequence of checks against values belonging to one subject
// and keeps every failure, in registration order, until Build turns them into
// a single rop.Result. Rules are small deferred checks (InRange, Length,
// Satisfies, ...) that can be fed to a Builder or evaluated with Apply.
//
// The bridge functions connect any Specification (an object exposing
// IsSatisfiedBy) to Results:
// - ValidateValue/ValidateMany/ValidateAll: check one value or a collection,
//   naming collection items by index path ("[0]", "[1]", ...)
// - ValidateWith/ValidateAndMap: extend an existing Result, short-circuiting
//   when it already failed
// - Unwrap/MustUnwrap: leave the Result world for error-returning code
//
// Usage:
//
//	res := validation.NewBuilder[User]().
//	    ValidateNotBlank(u.Name, "name is required", "Name").
//	    ValidateNotEmpty(u.Email, "email is required", "Email").
//	    Build(u)
package validation
