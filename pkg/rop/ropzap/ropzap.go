package ropzap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropval/pkg/rop"
)

type validationError rop.ValidationError

func (e validationError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.Message)
	if e.Property != "" {
		enc.AddString("property", e.Property)
	}
	return nil
}

type validationErrors rop.ValidationErrors

func (ve validationErrors) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range ve {
		if err := enc.AppendObject(validationError(e)); err != nil {
			return err
		}
	}
	return nil
}

// Error encodes a single failure as an object field.
func Error(key string, err rop.ValidationError) zap.Field {
	return zap.Object(key, validationError(err))
}

// Errors encodes failures as an array of {message, property} objects.
func Errors(key string, errs rop.ValidationErrors) zap.Field {
	return zap.Array(key, validationErrors(errs))
}

// Fields describes r: its id, whether it succeeded and, on failure, the
// error count and errors.
func Fields(r rop.Reporter) []zap.Field {
	fields := []zap.Field{
		zap.Stringer("result_id", r.Id()),
		zap.Bool("success", r.IsSuccess()),
	}
	if r.IsSuccess() {
		return fields
	}
	errs := r.Errors()
	return append(fields,
		zap.Int("error_count", len(errs)),
		Errors("errors", errs),
	)
}

// Observe logs r at Debug when it succeeded and at Warn when it failed.
func Observe(logger *zap.Logger, msg string, r rop.Reporter) {
	if logger == nil {
		return
	}
	if r.IsSuccess() {
		logger.Debug(msg, Fields(r)...)
		return
	}
	logger.Warn(msg, Fields(r)...)
}

// LogFailures returns a callback for Result.TapError that logs the errors at
// Warn. A nil logger yields a no-op.
func LogFailures(logger *zap.Logger, msg string) func(rop.ValidationErrors) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(errs rop.ValidationErrors) {
		logger.Warn(msg,
			zap.Int("error_count", len(errs)),
			Errors("errors", errs),
		)
	}
}
