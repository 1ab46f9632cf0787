package execution

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"rasty/internal/domain"
)

// Isolated executes each assertion on its own goroutine and recovers any
// panic it raises, so a failing test body never brings the run down.
// Only one assertion runs at a time: Execute blocks until the body is done.
type Isolated struct {
	log logrus.FieldLogger
}

// NewIsolated creates a new Isolated executor
func NewIsolated(log logrus.FieldLogger) *Isolated {
	return &Isolated{log: log}
}

type invocation struct {
	result domain.AssertionResult
	stack  []byte
}

// Execute runs the assertion and waits for it to finish
func (e *Isolated) Execute(assertion domain.Assertion) domain.AssertionResult {
	done := make(chan invocation, 1)
	go invoke(assertion, done)
	inv := <-done

	if len(inv.stack) > 0 && e.log != nil {
		e.log.WithFields(logrus.Fields{
			"message": inv.result.Message(),
			"stack":   string(inv.stack),
		}).Debug("Recovered panic in test body")
	}
	return inv.result
}

// invoke always sends exactly one invocation on done, whether the body
// returns, panics or calls runtime.Goexit.
func invoke(assertion domain.Assertion, done chan<- invocation) {
	var inv invocation
	finished := false
	defer func() {
		if !finished {
			inv = invocation{result: domain.Failure(domain.FallbackMessage)}
			if r := recover(); r != nil {
				inv = invocation{result: domain.Failure(panicMessage(r)), stack: debug.Stack()}
			}
		}
		done <- inv
	}()

	// Turn unexpected memory faults into recoverable panics for this goroutine only.
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))

	inv = invocation{result: resultOf(assertion())}
	finished = true
}

func resultOf(err error) domain.AssertionResult {
	if err == nil {
		return domain.Success()
	}
	return domain.Failure(safeMessage(err.Error))
}

// panicMessage extracts a readable message from a recovered panic value
func panicMessage(r any) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return safeMessage(v.Error)
	case fmt.Stringer:
		return safeMessage(v.String)
	}
	return domain.FallbackMessage
}

// safeMessage calls message and falls back when it panics, as Error on a
// typed nil pointer does.
func safeMessage(message func() string) (msg string) {
	defer func() {
		if recover() != nil {
			msg = domain.FallbackMessage
		}
	}()
	return message()
}
