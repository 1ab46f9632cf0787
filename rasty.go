// Package rasty declares trees of named tests and groups, runs them in
// order and prints an aligned, colorized report:
//
//	suite := rasty.Group("Math",
//		rasty.Test("adds", func() {
//			if 1+1 != 2 {
//				panic("expected 2")
//			}
//		}),
//	)
//	result := rasty.NewRunner().Run(suite)
//
// A test fails when its body panics or, for TestE, returns an error.
// Failures are reported and counted; they never stop the run.
package rasty

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rasty/internal/cli"
	"rasty/internal/cli/commands"
	"rasty/internal/config"
	"rasty/internal/domain"
	"rasty/internal/execution"
	"rasty/internal/ui"
)

type (
	// TestSuite is a test or a group of tests
	TestSuite = domain.TestSuite
	// TestRunResult summarises a run
	TestRunResult = domain.TestRunResult
	// TestFailure describes one failed test
	TestFailure = domain.TestFailure
	// Runner executes a TestSuite
	Runner = execution.Runner
)

// FallbackMessage is reported for a panic whose value carries no message
const FallbackMessage = domain.FallbackMessage

// Test declares a test whose body fails by panicking
func Test(name string, body func()) TestSuite {
	return domain.NewTest(name, body)
}

// TestE declares a test whose body fails by returning an error
func TestE(name string, body func() error) TestSuite {
	return domain.NewTestE(name, body)
}

// Group declares a named group of tests and groups, run in the given order
func Group(name string, children ...TestSuite) TestSuite {
	return domain.NewTestGroup(name, children...)
}

// NewRunner creates a runner that reports to stdout with colors and logs
// diagnostics at info level to stderr
func NewRunner() *Runner {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	return execution.NewRunner(
		execution.NewIsolated(log),
		ui.NewTreeReporter(color.Output, ui.NewColorStyler()),
		log,
	)
}

// Execute runs a command line around suite, parsing os.Args.
// Without a subcommand the suite is run; "list" prints it instead.
func Execute(suite TestSuite) (TestRunResult, error) {
	rootCmd, cmds := newRootCommand(suite)
	if err := rootCmd.Execute(); err != nil {
		return TestRunResult{}, err
	}
	return cmds.Run.Result(), nil
}

func newRootCommand(suite TestSuite) (*cobra.Command, *commands.Commands) {
	rootCmd := &cobra.Command{
		Use:   "rasty",
		Short: "Run a tree of tests",
		Long:  `Run a tree of named tests and groups in declared order and print an aligned report with per-test timing.`,
	}
	if len(os.Args) > 0 {
		rootCmd.Use = filepath.Base(os.Args[0])
	}

	cfg := config.New()
	var flags cli.Flags
	cmds := commands.NewCommands(cfg, suite)
	cmds.Register(rootCmd, &flags, cfg)
	return rootCmd, cmds
}
