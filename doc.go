// Package ensure provides always-on runtime checks for detecting programming
// bugs as early as possible.
//
// Existing assumptions are ensured by calling the corresponding check
// function. A violated assumption panics with a *FailedError carrying a
// formatted diagnostic message, so execution stops at the exact point the
// invariant broke instead of failing later with a stack-trace-only symptom.
//
// The checks are not meant for validating user input; expected, recoverable
// failures should be handled with ordinary error returns.
//
// # Pass-through returns
//
// Every check that validates a value returns that value unchanged, so checks
// can be used inline at the point of assignment:
//
//	cfg := ensure.NotNil(loadConfig())
//	name := ensure.NotEmpty(req.Name, "request name must be set")
//	primary := ensure.One(replicas)
//
// # Recovery
//
// A violation propagates until a caller recovers it or it terminates the
// enclosing unit of work. Recovery is exclusively the caller's job and is
// expected to be rare; Catch and Recovered convert a violation back into an
// ordinary error at a boundary that wants to keep serving:
//
//	err := ensure.Catch(func() { rebuildIndex(shard) })
//	if err != nil {
//	    return fmt.Errorf("index rebuild hit a bug: %w", err)
//	}
//
// Failures satisfy errors.Is(err, ensure.ErrEnsureFailed).
//
// # Observability
//
// The check path itself performs no logging. An optional process-global
// FailureReporter can be installed once at startup to forward every violation
// (with a stack trace outside production mode) to a logging or alerting
// backend; see the zap subpackage for a ready adapter and the opentelemetry
// subpackage for recording recovered failures onto active spans.
package ensure
