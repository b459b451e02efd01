package rop_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropval/pkg/rop"
)

// recoverKind runs f and returns the contract kind it panicked with.
func recoverKind(t *testing.T, f func()) (kind error) {
	t.Helper()
	defer func() {
		p := recover()
		require.NotNil(t, p, "expected a panic")
		var ce *rop.ContractError
		require.True(t, errors.As(p.(error), &ce), "panic value %v is not a ContractError", p)
		kind = ce.Kind
	}()
	f()
	return nil
}

func TestValidationError_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Name: is required", rop.NewValidationError("is required", "Name").String())
	assert.Equal(t, "is required", rop.NewValidationError("is required", "").String())
	assert.Equal(t, "Name: is required", rop.NewValidationError("is required", "Name").Error())
}

func TestValidationError_EmptyMessagePanics(t *testing.T) {
	t.Parallel()

	kind := recoverKind(t, func() { rop.NewValidationError("", "Name") })
	assert.ErrorIs(t, kind, rop.ErrNilArgument)
}

func TestValidationErrors_Queries(t *testing.T) {
	t.Parallel()

	errs := rop.ValidationErrors{
		{Message: "required", Property: "Name"},
		{Message: "too short", Property: "Name"},
		{Message: "invalid", Property: "Email"},
		{Message: "general"},
	}

	assert.True(t, errs.Has("Email"))
	assert.False(t, errs.Has("Age"))
	assert.Len(t, errs.ForProperty("Name"), 2)
	assert.Equal(t, []string{"Name", "Email"}, errs.Properties())
	assert.Equal(t, []string{"required", "too short", "invalid", "general"}, errs.Messages())
	assert.Equal(t, "Name: required; Name: too short; Email: invalid; general", errs.Error())
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := rop.Success(5)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 5, r.Value())
	assert.Empty(t, r.Errors())
	assert.NoError(t, r.Err())

	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestFailure(t *testing.T) {
	t.Parallel()

	e1 := rop.NewValidationError("bad1", "P1")
	e2 := rop.NewValidationError("bad2", "P2")
	r := rop.Failure[int](e1, e2)

	assert.True(t, r.IsFailure())
	assert.Equal(t, rop.ValidationErrors{e1, e2}, r.Errors())

	parts := rop.ErrorsOf(r.Err())
	require.Len(t, parts, 2)
	var ve rop.ValidationError
	require.True(t, errors.As(parts[1], &ve))
	assert.Equal(t, e2, ve)
	assert.Equal(t, rop.ValidationErrors{e1, e2}, rop.ValidationErrorsOf(r.Err()))

	v, err := r.Unwrap()
	assert.Error(t, err)
	assert.Zero(t, v)
}

func TestFail_SingleError(t *testing.T) {
	t.Parallel()

	r := rop.Fail[string]("must be set", "Code")
	require.True(t, r.IsFailure())
	assert.Equal(t, rop.ValidationErrors{{Message: "must be set", Property: "Code"}}, r.Errors())
}

func TestFailure_EmptyPanics(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, recoverKind(t, func() { rop.Failure[int]() }), rop.ErrEmptyFailure)
	assert.ErrorIs(t, recoverKind(t, func() { rop.FailureOf[int](nil) }), rop.ErrEmptyFailure)
	assert.ErrorIs(t, recoverKind(t, func() { rop.FailureOutcome() }), rop.ErrEmptyFailure)
}

func TestFailure_MessageRequired(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, recoverKind(t, func() { rop.Failure[int](rop.ValidationError{}) }), rop.ErrNilArgument)
	assert.ErrorIs(t, recoverKind(t, func() {
		rop.Failure[int](rop.ValidationError{Message: "ok"}, rop.ValidationError{Property: "P"})
	}), rop.ErrNilArgument)
	assert.ErrorIs(t, recoverKind(t, func() { rop.FailureOutcome(rop.ValidationError{Property: "P"}) }), rop.ErrNilArgument)
}

func TestValue_OnFailurePanics(t *testing.T) {
	t.Parallel()

	r := rop.Fail[int]("boom", "")
	assert.ErrorIs(t, recoverKind(t, func() { r.Value() }), rop.ErrInvalidState)
}

func TestFailure_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	errs := rop.ValidationErrors{{Message: "a"}}
	r := rop.FailureOf[int](errs)
	errs[0].Message = "changed"

	got := r.Errors()
	assert.Equal(t, "a", got[0].Message)
	got[0].Message = "changed again"
	assert.Equal(t, "a", r.Errors()[0].Message)
}

func TestTap(t *testing.T) {
	t.Parallel()

	t.Run("runs on success and keeps identity", func(t *testing.T) {
		r := rop.Success(3)
		seen := 0
		out := r.Tap(func(v int) { seen = v })
		assert.Equal(t, 3, seen)
		assert.Equal(t, r.Id(), out.Id())
	})

	t.Run("skipped on failure", func(t *testing.T) {
		r := rop.Fail[int]("x", "")
		called := false
		out := r.Tap(func(int) { called = true })
		assert.False(t, called)
		assert.Equal(t, r.Id(), out.Id())
	})

	t.Run("nil callback panics", func(t *testing.T) {
		assert.ErrorIs(t, recoverKind(t, func() { rop.Success(1).Tap(nil) }), rop.ErrNilArgument)
	})
}

func TestTapError(t *testing.T) {
	t.Parallel()

	r := rop.Fail[int]("x", "X")
	var got rop.ValidationErrors
	out := r.TapError(func(errs rop.ValidationErrors) { got = errs })
	assert.Equal(t, r.Errors(), got)
	assert.Equal(t, r.Id(), out.Id())

	called := false
	rop.Success(1).TapError(func(rop.ValidationErrors) { called = true })
	assert.False(t, called)

	assert.ErrorIs(t, recoverKind(t, func() { r.TapError(nil) }), rop.ErrNilArgument)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	var branch string
	onSuccess := func(int) { branch = "success" }
	onFailure := func(rop.ValidationErrors) { branch = "failure" }

	s := rop.Success(1)
	assert.Equal(t, s.Id(), s.Match(onSuccess, onFailure).Id())
	assert.Equal(t, "success", branch)

	f := rop.Fail[int]("x", "")
	assert.Equal(t, f.Id(), f.Match(onSuccess, onFailure).Id())
	assert.Equal(t, "failure", branch)

	assert.ErrorIs(t, recoverKind(t, func() { s.Match(nil, onFailure) }), rop.ErrNilArgument)
	assert.ErrorIs(t, recoverKind(t, func() { s.Match(onSuccess, nil) }), rop.ErrNilArgument)
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, rop.Success(7).ValueOrDefault(-1))
	assert.Equal(t, -1, rop.Fail[int]("x", "").ValueOrDefault(-1))

	calls := 0
	fallback := func(errs rop.ValidationErrors) int {
		calls++
		return len(errs)
	}
	assert.Equal(t, 7, rop.Success(7).ValueOr(fallback))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 2, rop.Failure[int](rop.ValidationError{Message: "a"}, rop.ValidationError{Message: "b"}).ValueOr(fallback))
	assert.Equal(t, 1, calls)

	assert.ErrorIs(t, recoverKind(t, func() { rop.Success(1).ValueOr(nil) }), rop.ErrNilArgument)
}

func TestToOutcome_RoundTrip(t *testing.T) {
	t.Parallel()

	s := rop.Success("v").ToOutcome()
	assert.True(t, s.IsSuccess())
	assert.Empty(t, s.Errors())

	errs := rop.ValidationErrors{{Message: "a", Property: "A"}, {Message: "b"}}
	f := rop.FailureOf[string](errs)
	o := f.ToOutcome()
	assert.True(t, o.IsFailure())
	assert.Equal(t, errs, o.Errors())
	assert.NotEqual(t, f.Id(), o.Id())
}

func TestZeroResultIsSuccess(t *testing.T) {
	t.Parallel()

	var r rop.Result[int]
	assert.True(t, r.IsSuccess())
	assert.Equal(t, 0, r.Value())
}

func TestFailFrom(t *testing.T) {
	t.Parallel()

	src := rop.Fail[int]("x", "X")
	out := rop.FailFrom[string](src)
	assert.Equal(t, src.Errors(), out.Errors())
	assert.NotEqual(t, src.Id(), out.Id())

	assert.ErrorIs(t, recoverKind(t, func() { rop.FailFrom[string](rop.Success(1)) }), rop.ErrInvalidState)
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var f func()
	var m map[string]int
	assert.True(t, rop.IsNil(nil))
	assert.True(t, rop.IsNil(p))
	assert.True(t, rop.IsNil(f))
	assert.True(t, rop.IsNil(m))
	assert.False(t, rop.IsNil(0))
	assert.False(t, rop.IsNil(""))
	assert.False(t, rop.IsNil(func() {}))
}
