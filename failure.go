package ensure

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrEnsureFailed is the sentinel error for violated checks.
var ErrEnsureFailed = errors.New("ensure failed")

// FailedError represents a violated check. It carries only the rendered
// diagnostic message; callers distinguish causes via the message text or by
// knowing which check they called.
type FailedError struct {
	Message string
}

// Error returns the rendered diagnostic message.
func (failure *FailedError) Error() string {
	if failure == nil {
		return ErrEnsureFailed.Error()
	}

	return failure.Message
}

// Unwrap returns the sentinel error for errors.Is.
func (failure *FailedError) Unwrap() error {
	return ErrEnsureFailed
}

// FailureReporter receives every violated check before it propagates.
// This abstraction allows forwarding violations to a logging or alerting
// backend without creating a hard dependency on any specific SDK.
//
// Implementations must be safe for concurrent use and must not panic
// themselves.
type FailureReporter interface {
	// ReportFailure is called synchronously with the violation and, outside
	// production mode, the captured stack trace. stack is nil otherwise.
	ReportFailure(failure *FailedError, stack []byte)
}

// failureReporterInstance is the singleton reporter.
// It remains nil unless explicitly configured.
var (
	failureReporterInstance FailureReporter
	failureReporterMu       sync.RWMutex
)

// SetFailureReporter configures the global reporter notified on every
// violated check. Pass nil to disable reporting.
//
// This should be called once during application startup if forwarding to an
// external backend is desired.
func SetFailureReporter(reporter FailureReporter) {
	failureReporterMu.Lock()
	defer failureReporterMu.Unlock()

	failureReporterInstance = reporter
}

// GetFailureReporter returns the currently configured reporter.
// Returns nil if no reporter has been configured.
func GetFailureReporter() FailureReporter {
	failureReporterMu.RLock()
	defer failureReporterMu.RUnlock()

	return failureReporterInstance
}

var productionMode atomic.Bool

// SetProductionMode controls stack trace capture for reported failures.
// When enabled, reporters receive a nil stack. It should be set once during
// application startup.
func SetProductionMode(enabled bool) {
	productionMode.Store(enabled)
}

// IsProductionMode reports whether production mode has been explicitly set.
func IsProductionMode() bool {
	return productionMode.Load()
}

func shouldIncludeStack() bool {
	if IsProductionMode() {
		return false
	}

	// Fallback for applications that never call SetProductionMode.
	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}

// renderMessage resolves the trailing msgAndArgs of a check: empty uses the
// check's default message, a single string is used verbatim, and anything
// longer is treated as a format string plus positional arguments.
func renderMessage(defaultMsg string, msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return defaultMsg
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}

		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}

		return fmt.Sprint(msgAndArgs...)
	}
}

func fail(defaultMsg string, msgAndArgs []any) {
	failWith(renderMessage(defaultMsg, msgAndArgs))
}

func failWith(message string) {
	failure := &FailedError{Message: message}

	if reporter := GetFailureReporter(); reporter != nil {
		stack := []byte(nil)
		if shouldIncludeStack() {
			stack = debug.Stack()
		}

		reporter.ReportFailure(failure, stack)
	}

	panic(failure)
}

// Fail unconditionally signals a violation with the formatted message.
// Use it for code paths that should be unreachable, such as a final else
// branch or the default case of a switch.
func Fail(format string, args ...any) {
	failWith(fmt.Sprintf(format, args...))
}

// Recovered classifies a recover() result. It returns the failure and true
// when the recovered value originated from a violated check, either directly
// or wrapped in an error chain.
func Recovered(recovered any) (*FailedError, bool) {
	if recovered == nil {
		return nil, false
	}

	if err, ok := recovered.(error); ok {
		var failure *FailedError
		if errors.As(err, &failure) {
			return failure, true
		}
	}

	return nil, false
}

// Catch runs fn and converts a violated check into an ordinary error.
// Any other panic is re-raised untouched. Use it at a boundary that wants to
// turn an internal-invariant bug into a response instead of terminating the
// unit of work.
func Catch(fn func()) (err error) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		failure, ok := Recovered(recovered)
		if !ok {
			panic(recovered)
		}

		err = failure
	}()

	fn()

	return nil
}
