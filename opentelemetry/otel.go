package opentelemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/platfish/ensure"
)

// FailureEventName is the span event name used when recording failures.
const FailureEventName = "ensure.failed"

// RecordFailure records a violated check onto the span carried by ctx as an
// event plus an error status. It is a no-op when err did not originate from a
// check or when no span is recording.
func RecordFailure(ctx context.Context, err error) {
	var failure *ensure.FailedError
	if !errors.As(err, &failure) {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(FailureEventName, trace.WithAttributes(
		attribute.String("ensure.message", failure.Error()),
	))
	span.RecordError(failure)
	span.SetStatus(codes.Error, "ensure failed")
}
