package rop

import (
	"errors"
	"fmt"
)

// Contract violation kinds. They are raised with panic, never stored inside a
// Result, and can be matched with errors.Is after recover.
var (
	ErrNilArgument  = errors.New("rop: nil argument")
	ErrInvalidState = errors.New("rop: invalid state")
	ErrEmptyFailure = errors.New("rop: failure without errors")
)

// ContractError describes a programmer mistake: a missing callback, reading
// the value of a failed Result, or an empty failure.
type ContractError struct {
	Kind error
	Op   string
	Arg  string
}

func newContractError(kind error, op, arg string) *ContractError {
	return &ContractError{Kind: kind, Op: op, Arg: arg}
}

func (e *ContractError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Kind, e.Arg)
}

func (e *ContractError) Unwrap() error {
	return e.Kind
}

// MustNotBeNil panics with ErrNilArgument when v is nil or a typed nil.
// Packages building on rop use it to guard callbacks.
func MustNotBeNil(v any, op, arg string) {
	if IsNil(v) {
		panic(newContractError(ErrNilArgument, op, arg))
	}
}

// PanicEmptyFailure raises ErrEmptyFailure on behalf of op.
func PanicEmptyFailure(op string) {
	panic(newContractError(ErrEmptyFailure, op, "errors"))
}

// MustHaveMessages panics with ErrEmptyFailure when errs is empty and with
// ErrNilArgument when any error lacks a message.
func MustHaveMessages(errs ValidationErrors, op string) {
	if len(errs) == 0 {
		PanicEmptyFailure(op)
	}
	for _, e := range errs {
		if e.Message == "" {
			panic(newContractError(ErrNilArgument, op, "ValidationError.Message"))
		}
	}
}
