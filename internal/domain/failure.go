package domain

import "time"

// TestFailure represents a failed test case
type TestFailure struct {
	TestName string        // Full path of the test, e.g. "Calculator/Divide/Can divide 1 by 0"
	Message  string        // Failure message as reported by the assertion
	Duration time.Duration // Time taken by the failing test
}
