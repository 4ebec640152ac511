// Package goof provides reusable, error-returning check primitives.
//
// Each check either returns the validated value or a structured, inspectable
// error describing exactly which expectation failed. Nothing here aborts the
// process: failures are ordinary error values that callers propagate, match
// with errors.As, or render for logs and user-facing messages.
//
// The package defines three error families, one per check:
//
//   - [Mismatch]: a value was one thing instead of another (see [Eq]).
//   - [OutOfRange]: a value fell outside an accepted interval (see [In]).
//   - [UnknownValue]: a value is absent from a reference list of known
//     values (see [Known] and [KnownEnum]).
//
// Typical usage at a validation boundary:
//
//	port, err := goof.In(cfg.Port, 1023, 65535)
//	if err != nil {
//	    return fmt.Errorf("configure listener: %w", err)
//	}
//
// All checks are pure functions with no shared state, so concurrent callers
// need no coordination. The only sharing is the reference list retained by an
// [UnknownValue] produced by [KnownEnum], which aliases the caller's slice.
//
// This package is intentionally dependency-light; observability-aware
// wrappers live in the assert subpackage.
package goof
