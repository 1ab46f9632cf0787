package execution

import (
	"time"

	"rasty/internal/domain"
)

// Executor runs a single assertion and converts its outcome into data
type Executor interface {
	Execute(assertion domain.Assertion) domain.AssertionResult
}

// Reporter receives the progress of a run as it happens
type Reporter interface {
	Started(total int)
	GroupStarted(name string, indent int)
	TestStarted(name string, indent, pad int)
	TestFinished(result domain.AssertionResult, elapsed time.Duration, indent int)
	Finished(result domain.TestRunResult)
}
