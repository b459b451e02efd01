package rop

import (
	"strings"
)

// ValidationError is a single domain failure: a message and an optional
// property path. An empty Property means the error is not tied to a field.
type ValidationError struct {
	Message  string
	Property string
}

// NewValidationError builds a ValidationError. It panics with ErrNilArgument
// when message is empty.
func NewValidationError(message, property string) ValidationError {
	if message == "" {
		panic(newContractError(ErrNilArgument, "NewValidationError", "message"))
	}
	return ValidationError{Message: message, Property: property}
}

// HasProperty reports whether the error names a property.
func (e ValidationError) HasProperty() bool {
	return e.Property != ""
}

// String renders "property: message", or just the message.
func (e ValidationError) String() string {
	if e.Property == "" {
		return e.Message
	}
	return e.Property + ": " + e.Message
}

func (e ValidationError) Error() string {
	return e.String()
}

// ValidationErrors is an ordered collection of failures. Order is always
// registration or argument order; nothing here reorders or deduplicates.
type ValidationErrors []ValidationError

// Join renders every error and joins them with sep.
func (ve ValidationErrors) Join(sep string) string {
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, sep)
}

func (ve ValidationErrors) Error() string {
	return ve.Join("; ")
}

// Has reports whether any error is bound to property.
func (ve ValidationErrors) Has(property string) bool {
	for _, e := range ve {
		if e.Property == property {
			return true
		}
	}
	return false
}

// ForProperty returns the errors bound to property, in order.
func (ve ValidationErrors) ForProperty(property string) ValidationErrors {
	var out ValidationErrors
	for _, e := range ve {
		if e.Property == property {
			out = append(out, e)
		}
	}
	return out
}

// Properties lists distinct non-empty property names in first-seen order.
func (ve ValidationErrors) Properties() []string {
	var props []string
	seen := make(map[string]bool)
	for _, e := range ve {
		if e.Property == "" || seen[e.Property] {
			continue
		}
		seen[e.Property] = true
		props = append(props, e.Property)
	}
	return props
}

// Messages returns the bare messages in order.
func (ve ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Concat returns a fresh slice holding all errors of the given groups in order.
func Concat(groups ...ValidationErrors) ValidationErrors {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make(ValidationErrors, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func (ve ValidationErrors) clone() ValidationErrors {
	if ve == nil {
		return nil
	}
	out := make(ValidationErrors, len(ve))
	copy(out, ve)
	return out
}
