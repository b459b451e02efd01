// Package ropzap renders Results and validation errors as zap fields.
//
// Nothing in rop logs on its own; callers opt in at the edges:
//
//	res.TapError(ropzap.LogFailures(logger, "signup rejected"))
//	ropzap.Observe(logger, "order validated", res)
package ropzap
