package execution

import (
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"rasty/internal/domain"
)

// Runner walks a test tree depth first, executing every test in declared order
// and reporting each group and test as it goes. It keeps no state between runs.
type Runner struct {
	executor Executor
	reporter Reporter
	log      logrus.FieldLogger
}

// NewRunner creates a new Runner. A nil log discards diagnostics.
func NewRunner(executor Executor, reporter Reporter, log logrus.FieldLogger) *Runner {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Runner{
		executor: executor,
		reporter: reporter,
		log:      log,
	}
}

// Run executes every test in suite and returns the aggregated result.
// Failing tests are reported and counted; they never stop the run.
func (r *Runner) Run(suite domain.TestSuite) domain.TestRunResult {
	maxOffset := GetMaxOffset(suite)
	r.reporter.Started(domain.CountTests(suite))

	outcomes := r.visit(suite, "", 0, maxOffset)

	result := domain.Summarize(outcomes)
	r.log.WithFields(logrus.Fields{
		"total":    result.Total,
		"passed":   result.Passed,
		"failed":   result.Failed,
		"duration": result.Duration,
	}).Debug("Run finished")
	r.reporter.Finished(result)
	return result
}

func (r *Runner) visit(suite domain.TestSuite, parent string, indent, maxOffset int) []domain.Outcome {
	switch node := suite.(type) {
	case *domain.Test:
		return []domain.Outcome{r.runTest(node, joinPath(parent, node.Name), indent, maxOffset)}
	case *domain.TestGroup:
		return r.runGroup(node, joinPath(parent, node.Name), indent, maxOffset)
	}
	return nil
}

func (r *Runner) runGroup(group *domain.TestGroup, path string, indent, maxOffset int) []domain.Outcome {
	r.reporter.GroupStarted(group.Name, indent)

	var outcomes []domain.Outcome
	for _, child := range group.Children {
		outcomes = append(outcomes, r.visit(child, path, indent+indentStep, maxOffset)...)
	}
	return outcomes
}

func (r *Runner) runTest(test *domain.Test, path string, indent, maxOffset int) domain.Outcome {
	label := strings.Repeat(" ", indent) + test.Name + ":"
	pad := (maxOffset + indentStep) - runewidth.StringWidth(label)
	r.reporter.TestStarted(test.Name, indent, pad)

	log := r.log.WithField("test", path)
	log.Debug("Running test")

	start := time.Now()
	result := r.executor.Execute(test.Assertion)
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"status":   status(result),
		"duration": elapsed,
	}).Debug("Test finished")

	r.reporter.TestFinished(result, elapsed, indent)
	return domain.Outcome{Path: path, Result: result, Duration: elapsed}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func status(result domain.AssertionResult) string {
	if result.IsSuccess() {
		return "pass"
	}
	return "fail"
}
