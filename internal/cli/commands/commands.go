package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rasty/internal/cli"
	"rasty/internal/config"
	"rasty/internal/domain"
	"rasty/internal/filter"
	"rasty/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, suite domain.TestSuite) *Commands {
	// Initialize dependencies
	nameFilter := filter.NewFilter()
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:  NewRunCommand(cfg, suite, nameFilter, viewer),
		List: NewListCommand(cfg, suite, nameFilter, formatter),
	}
}

// Register registers all commands with cobra. The root command itself runs the suite.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	preRun := func(cmd *cobra.Command, args []string) error {
		return configure(cfg, flags)
	}

	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by path glob or name pattern (e.g. 'Calculator/Add/*' or '*divide*')")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Diagnostic log level written to stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file")

	runFlags := func(cmd *cobra.Command) {
		cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Show a progress bar instead of one line per test")
		cmd.Flags().BoolVar(&flags.Inspect, "inspect", false, "Open the failures viewer when the run finishes with failures")
	}

	rootCmd.PreRunE = preRun
	rootCmd.RunE = c.Run.Execute
	runFlags(rootCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the test suite",
		Long:    "Execute every test of the suite in declared order and print an aligned report",
		RunE:    c.Run.Execute,
		PreRunE: preRun,
	}
	runFlags(runCmd)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the tests of the suite",
		Long:    "Print the tree of groups and tests without executing them",
		RunE:    c.List.Execute,
		PreRunE: preRun,
	}
	rootCmd.AddCommand(listCmd)
}

// terminalNoColor is color.NoColor as detected for the terminal at startup
var terminalNoColor = color.NoColor

// configure rebuilds cfg from defaults, the optional YAML file, the
// environment and finally the parsed flags.
func configure(cfg *config.Config, flags *cli.Flags) error {
	*cfg = *config.New()
	if flags.ConfigFile != "" {
		if err := cfg.LoadFile(flags.ConfigFile); err != nil {
			return err
		}
	}
	if err := cfg.LoadEnv(config.DefaultEnvFile); err != nil {
		return err
	}
	cfg.ApplyFlags(flags.ToConfigFlags())

	color.NoColor = terminalNoColor || cfg.NoColor
	return nil
}
