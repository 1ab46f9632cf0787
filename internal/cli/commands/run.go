package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rasty/internal/config"
	"rasty/internal/domain"
	"rasty/internal/execution"
	"rasty/internal/filter"
	"rasty/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	suite  domain.TestSuite
	filter *filter.Filter
	viewer ui.Viewer

	result domain.TestRunResult
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	suite domain.TestSuite,
	filter *filter.Filter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config: cfg,
		suite:  suite,
		filter: filter,
		viewer: viewer,
	}
}

// Result returns the result of the last run
func (rc *RunCommand) Result() domain.TestRunResult {
	return rc.result
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	log, err := rc.config.NewLogger()
	if err != nil {
		return err
	}

	suite, ok := rc.filter.Apply(rc.suite, rc.config.Filter)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No tests to execute"))
		return nil
	}

	var styler ui.Styler = ui.NewColorStyler()
	if rc.config.NoColor {
		styler = ui.PlainStyler{}
	}

	var reporter execution.Reporter = ui.NewTreeReporter(cmd.OutOrStdout(), styler)
	if rc.config.Quiet {
		reporter = ui.NewProgressReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), styler)
	}

	runner := execution.NewRunner(execution.NewIsolated(log), reporter, log)
	rc.result = runner.Run(suite)

	if rc.config.Inspect && !rc.result.OK() {
		if err := rc.viewer.View(rc.result); err != nil {
			return fmt.Errorf("failures viewer: %w", err)
		}
	}
	return nil
}
