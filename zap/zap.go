package zap

import (
	"go.uber.org/zap"

	"github.com/platfish/ensure"
)

// Reporter forwards violated checks to a zap logger at error level.
type Reporter struct {
	logger *zap.Logger
}

// Compile-time assertion: *Reporter implements ensure.FailureReporter.
var _ ensure.FailureReporter = (*Reporter)(nil)

// NewReporter creates a Reporter backed by the given zap logger.
func NewReporter(logger *zap.Logger) *Reporter {
	return &Reporter{logger: logger}
}

func (reporter *Reporter) must() *zap.Logger {
	if reporter == nil || reporter.logger == nil {
		return zap.NewNop()
	}

	return reporter.logger
}

// ReportFailure implements ensure.FailureReporter. The stack is attached as a
// structured field when present.
func (reporter *Reporter) ReportFailure(failure *ensure.FailedError, stack []byte) {
	fields := []zap.Field{zap.Error(failure)}
	if len(stack) > 0 {
		fields = append(fields, zap.ByteString("stack", stack))
	}

	reporter.must().Error("ENSURE FAILED: "+failure.Error(), fields...)
}
