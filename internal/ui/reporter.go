package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"rasty/internal/domain"
)

// TreeReporter prints one line per group and test, with the result
// columns of every test aligned, followed by a summary line.
//
//	Math
//	  adds:     OK (0.00s)
//	  divides:  FAIL (0.00s)
//	    division by zero
type TreeReporter struct {
	out    io.Writer
	styler Styler
}

// NewTreeReporter creates a new TreeReporter
func NewTreeReporter(out io.Writer, styler Styler) *TreeReporter {
	return &TreeReporter{out: out, styler: styler}
}

// Started is a no-op; lines are printed as tests run
func (r *TreeReporter) Started(int) {}

// GroupStarted prints the group name on its own line
func (r *TreeReporter) GroupStarted(name string, indent int) {
	fmt.Fprintf(r.out, "%s%s\n", spaces(indent), name)
}

// TestStarted prints the test name and the padding up to the result column
func (r *TreeReporter) TestStarted(name string, indent, pad int) {
	fmt.Fprintf(r.out, "%s%s:%s", spaces(indent), name, spaces(pad))
}

// TestFinished completes the test line and prints the failure message, if any
func (r *TreeReporter) TestFinished(result domain.AssertionResult, elapsed time.Duration, indent int) {
	if result.IsSuccess() {
		fmt.Fprintln(r.out, r.styler.Colorize(fmt.Sprintf("OK (%s)", FormatSeconds(elapsed)), StyleSuccess))
		return
	}

	fmt.Fprintln(r.out, r.styler.Colorize(fmt.Sprintf("FAIL (%s)", FormatSeconds(elapsed)), StyleFailureBold))
	for _, line := range strings.Split(result.Message(), "\n") {
		fmt.Fprintln(r.out, r.styler.Colorize(spaces(indent+2)+line, StyleFailure))
	}
}

// Finished prints a blank line and the summary
func (r *TreeReporter) Finished(result domain.TestRunResult) {
	printSummary(r.out, r.styler, result)
}

// Summary returns the closing line of a run and the style it is printed in
func Summary(result domain.TestRunResult) (string, Style) {
	if result.Failed == 0 {
		return fmt.Sprintf("All %d tests passed (%s)", result.Total, FormatSeconds(result.Duration)), StyleSuccess
	}
	return fmt.Sprintf("%d out of %d tests failed (%s)", result.Failed, result.Total, FormatSeconds(result.Duration)), StyleFailureBold
}

// FormatSeconds formats d as seconds with two decimals, e.g. "0.25s"
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func printSummary(out io.Writer, styler Styler, result domain.TestRunResult) {
	text, style := Summary(result)
	fmt.Fprintln(out)
	fmt.Fprintln(out, styler.Colorize(text, style))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
