package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rasty/internal/config"
	"rasty/internal/domain"
	"rasty/internal/filter"
	"rasty/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	suite     domain.TestSuite
	filter    *filter.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	suite domain.TestSuite,
	filter *filter.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		suite:     suite,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suite, ok := lc.filter.Apply(lc.suite, lc.config.Filter)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No tests found"))
		return nil
	}

	return lc.formatter.PrintTestList(cmd.OutOrStdout(), suite)
}
