// Package assert wraps the goof check primitives with always-on
// observability for services that want failed invariants logged and traced,
// not just returned.
//
// Unlike test assertions, these are intended to remain enabled in
// production. They are for invariant violations and impossible states, not
// for expected error conditions: a failed assertion is a bug report.
//
// An Asserter carries the context, logger, and component/operation labels
// shared by a group of assertions:
//
//	a := assert.New(ctx, logger, "billing", "close-cycle")
//	state, err := assert.Eq(ctx, a, StateOpen, cycle.State, "cycle must be open")
//	if err != nil {
//	    return err
//	}
//
// The typed entry points Eq, In, and OneOf are package functions rather than
// methods because Go methods cannot introduce type parameters. Each delegates
// the check to the goof root package and, on failure, logs the assertion at
// error level, adds an event and error status to any recording span in ctx,
// increments the goof.assert.failed.total counter, and returns an
// *AssertionError wrapping the underlying typed error, so both
// errors.Is(err, assert.ErrAssertionFailed) and errors.As against
// goof.Mismatch, goof.OutOfRange, or goof.UnknownValue keep working.
//
// All assertion entry points accept optional key-value pairs that are
// rendered into the error details and log line:
//
//	_, err := assert.In(ctx, a, replicas, 0, maxReplicas, "replica count out of bounds",
//	    "cluster", clusterID,
//	)
//
// Odd numbers of key-value arguments are padded with a "MISSING_VALUE"
// marker. Values longer than 200 characters are truncated. Outside
// production (gated on the ENV / GO_ENV variables) failures also capture a
// stack trace.
package assert
