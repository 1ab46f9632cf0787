package domain

import "time"

// FallbackMessage is reported when a failing test carries no readable message
const FallbackMessage = "Something terrible has happened"

// AssertionResult is the outcome of running one Assertion
type AssertionResult struct {
	failed  bool
	message string
}

// Success returns a passing result
func Success() AssertionResult {
	return AssertionResult{}
}

// Failure returns a failing result carrying message
func Failure(message string) AssertionResult {
	return AssertionResult{failed: true, message: message}
}

// IsSuccess reports whether the assertion held
func (r AssertionResult) IsSuccess() bool {
	return !r.failed
}

// Message returns the failure message, empty for a success
func (r AssertionResult) Message() string {
	return r.message
}

// Outcome is the per-leaf record produced while walking a tree
type Outcome struct {
	Path     string          // Slash-joined names from the root to the leaf
	Result   AssertionResult // What the assertion produced
	Duration time.Duration   // Wall-clock time spent in the assertion
}

// TestRunResult summarises one run
type TestRunResult struct {
	Duration time.Duration // Sum of all leaf durations
	Total    int
	Passed   int
	Failed   int
	Failures []TestFailure // Failed leaves in execution order
}

// OK reports whether no test failed
func (r TestRunResult) OK() bool {
	return r.Failed == 0
}

// Summarize reduces the outcomes of a run into a TestRunResult
func Summarize(outcomes []Outcome) TestRunResult {
	var result TestRunResult
	for _, outcome := range outcomes {
		result.Duration += outcome.Duration
		result.Total++
		if outcome.Result.IsSuccess() {
			result.Passed++
			continue
		}
		result.Failed++
		result.Failures = append(result.Failures, TestFailure{
			TestName: outcome.Path,
			Message:  outcome.Result.Message(),
			Duration: outcome.Duration,
		})
	}
	return result
}
