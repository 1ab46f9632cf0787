package execution

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasty/internal/domain"
)

type label string

func (l label) String() string { return "label: " + string(l) }

type nilError struct{ reason string }

func (e *nilError) Error() string { return e.reason }

type brokenStringer struct{}

func (brokenStringer) String() string { panic("stringer exploded") }

type brokenError struct{}

func (brokenError) Error() string { panic("error exploded") }

func TestIsolated_Execute(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	executor := NewIsolated(log)
	zero := 0

	tests := []struct {
		name      string
		assertion domain.Assertion
		success   bool
		message   string
	}{
		{
			name:      "normal completion",
			assertion: func() error { return nil },
			success:   true,
		},
		{
			name:      "returned error",
			assertion: func() error { return errors.New("expected 3, got 4") },
			message:   "expected 3, got 4",
		},
		{
			name:      "string panic",
			assertion: func() error { panic("division by zero") },
			message:   "division by zero",
		},
		{
			name:      "formatted string panic",
			assertion: func() error { panic(fmt.Sprintf("expected %d", 3)) },
			message:   "expected 3",
		},
		{
			name:      "error panic",
			assertion: func() error { panic(errors.New("broken")) },
			message:   "broken",
		},
		{
			name:      "runtime error",
			assertion: func() error { _ = 1 / zero; return nil },
			message:   "runtime error: integer divide by zero",
		},
		{
			name:      "stringer panic",
			assertion: func() error { panic(label("x")) },
			message:   "label: x",
		},
		{
			name:      "unreadable panic value",
			assertion: func() error { panic(42) },
			message:   domain.FallbackMessage,
		},
		{
			name: "typed nil error",
			assertion: func() error {
				var err *nilError
				return err
			},
			message: domain.FallbackMessage,
		},
		{
			name:      "stringer panicking while formatting",
			assertion: func() error { panic(brokenStringer{}) },
			message:   domain.FallbackMessage,
		},
		{
			name:      "error panicking while formatting",
			assertion: func() error { panic(brokenError{}) },
			message:   domain.FallbackMessage,
		},
		{
			name:      "returned error panicking while formatting",
			assertion: func() error { return brokenError{} },
			message:   domain.FallbackMessage,
		},
		{
			name:      "goexit",
			assertion: func() error { runtime.Goexit(); return nil },
			message:   domain.FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := executor.Execute(tt.assertion)
			assert.Equal(t, tt.success, result.IsSuccess())
			assert.Equal(t, tt.message, result.Message())
		})
	}
}

func TestIsolated_Execute_LogsRecoveredStack(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	executor := NewIsolated(log)

	executor.Execute(func() error { panic("boom") })

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "boom", entry.Data["message"])
	assert.Contains(t, entry.Data["stack"], "goroutine")

	hook.Reset()
	executor.Execute(func() error { return errors.New("plain failure") })
	assert.Empty(t, hook.AllEntries())
}

func TestIsolated_Execute_SubsequentCallsUnaffected(t *testing.T) {
	executor := NewIsolated(nil)

	first := executor.Execute(func() error { panic("first") })
	second := executor.Execute(func() error { return nil })

	assert.False(t, first.IsSuccess())
	assert.True(t, second.IsSuccess())
}
