// Package opentelemetry records recovered ensure failures onto active spans.
//
// It is meant for recovery boundaries, which have a context while the checks
// themselves take none:
//
//	if err := ensure.Catch(func() { applyMutation(state) }); err != nil {
//	    opentelemetry.RecordFailure(ctx, err)
//	    return err
//	}
package opentelemetry
