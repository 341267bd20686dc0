//go:build unit

package ensure

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFailedError_Error verifies the message is returned verbatim.
func TestFailedError_Error(t *testing.T) {
	t.Parallel()

	failure := &FailedError{Message: "x must not be empty"}
	assert.Equal(t, "x must not be empty", failure.Error())
}

// TestFailedError_NilReceiver verifies a nil failure still renders.
func TestFailedError_NilReceiver(t *testing.T) {
	t.Parallel()

	var failure *FailedError

	assert.Equal(t, ErrEnsureFailed.Error(), failure.Error())
}

// TestFailedError_Unwrap verifies errors.Is against the sentinel.
func TestFailedError_Unwrap(t *testing.T) {
	t.Parallel()

	failure := &FailedError{Message: "boom"}
	assert.True(t, errors.Is(failure, ErrEnsureFailed))
}

// TestRenderMessage verifies default, verbatim, and formatted rendering.
func TestRenderMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		msgAndArgs []any
		want       string
	}{
		{
			name:       "no arguments uses default",
			msgAndArgs: nil,
			want:       "default message",
		},
		{
			name:       "single string used verbatim",
			msgAndArgs: []any{"custom %s"},
			want:       "custom %s",
		},
		{
			name:       "template with positional arguments",
			msgAndArgs: []any{"failed %s %d", "x", 2},
			want:       "failed x 2",
		},
		{
			name:       "single non-string argument",
			msgAndArgs: []any{42},
			want:       "42",
		},
		{
			name:       "all-purpose verb with int argument",
			msgAndArgs: []any{"failed %v", 1},
			want:       "failed 1",
		},
		{
			name:       "string verb with int surfaces fmt artifact",
			msgAndArgs: []any{"failed %s", 1},
			want:       "failed %!s(int=1)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, renderMessage("default message", tt.msgAndArgs))
		})
	}
}

// TestRenderMessage_TooFewArguments verifies a malformed template surfaces a
// rendering artifact instead of being specially handled.
func TestRenderMessage_TooFewArguments(t *testing.T) {
	t.Parallel()

	rendered := renderMessage("default", []any{"a %s %s", "x"})
	assert.Contains(t, rendered, "MISSING")
}

// recordingReporter captures reported failures for inspection.
type recordingReporter struct {
	mu       sync.Mutex
	failures []*FailedError
	stacks   [][]byte
}

func (reporter *recordingReporter) ReportFailure(failure *FailedError, stack []byte) {
	reporter.mu.Lock()
	defer reporter.mu.Unlock()

	reporter.failures = append(reporter.failures, failure)
	reporter.stacks = append(reporter.stacks, stack)
}

func installReporter(t *testing.T) *recordingReporter {
	t.Helper()

	reporter := &recordingReporter{}
	SetFailureReporter(reporter)
	t.Cleanup(func() { SetFailureReporter(nil) })

	return reporter
}

// TestFailureReporter_Notified verifies the reporter sees every violation
// before it propagates.
func TestFailureReporter_Notified(t *testing.T) {
	reporter := installReporter(t)

	_ = Catch(func() { True(false, "boom") })
	_ = Catch(func() { Fail("unreachable case %s", "X") })

	require.Len(t, reporter.failures, 2)
	assert.Equal(t, "boom", reporter.failures[0].Error())
	assert.Equal(t, "unreachable case X", reporter.failures[1].Error())
}

// TestFailureReporter_StackOutsideProduction verifies a stack trace is
// captured when production mode is off.
func TestFailureReporter_StackOutsideProduction(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("GO_ENV", "")

	reporter := installReporter(t)

	_ = Catch(func() { True(false, "boom") })

	require.Len(t, reporter.stacks, 1)
	assert.Contains(t, string(reporter.stacks[0]), "goroutine")
}

// TestFailureReporter_NoStackInProduction verifies stack capture is skipped
// once production mode is set.
func TestFailureReporter_NoStackInProduction(t *testing.T) {
	SetProductionMode(true)
	t.Cleanup(func() { SetProductionMode(false) })

	reporter := installReporter(t)

	_ = Catch(func() { True(false, "boom") })

	require.Len(t, reporter.stacks, 1)
	assert.Nil(t, reporter.stacks[0])
}

// TestShouldIncludeStack_EnvFallback verifies the environment fallback for
// applications that never set production mode explicitly.
func TestShouldIncludeStack_EnvFallback(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("GO_ENV", "")

	assert.False(t, shouldIncludeStack())

	t.Setenv("ENV", "")
	t.Setenv("GO_ENV", "Production")

	assert.False(t, shouldIncludeStack())

	t.Setenv("GO_ENV", "")

	assert.True(t, shouldIncludeStack())
}

// TestGetFailureReporter_Default verifies no reporter is configured by
// default.
func TestGetFailureReporter_Default(t *testing.T) {
	assert.Nil(t, GetFailureReporter())
}
