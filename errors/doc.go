// Package errors provides structured error types for the flexbridge module.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Boundary operations on handles never return errors at
// all — an invalid handle degrades to a no-op or a zero value — so this
// package only appears on construction, build, and decode paths.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBuild, errors.KindInvalidData).
//		Path("node", "width").
//		Detail("bad dimension %q", raw).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseBuild, "node", id)
//	err := errors.NewMissingExportsError(missing)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
