// Package cli is the command line of a test binary built on unittest.
//
// A test binary registers its tests and calls Main:
//
//	func main() { cli.Main() }
//
// Without a subcommand the binary runs every test, reading the verbosity
// from TEST_VERBOSITY, and exits with the number of failing tests.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unittest"
	"unittest/internal/config"
	"unittest/internal/logging"
)

// ExitUsage is the exit status for invalid configuration or arguments
const ExitUsage = 2

// Version is reported by --version
var Version = "dev"

// Commands holds all CLI commands
type Commands struct {
	suite  *unittest.Suite
	stdout io.Writer
	stderr io.Writer

	flags  Flags
	config *config.Config
	logger *zap.Logger
	status int

	Run  *RunCommand
	List *ListCommand
	View *ViewCommand
}

// NewCommands creates all commands for suite
func NewCommands(suite *unittest.Suite, stdout, stderr io.Writer) *Commands {
	c := &Commands{suite: suite, stdout: stdout, stderr: stderr, config: config.New()}
	c.Run = &RunCommand{c: c}
	c.List = &ListCommand{c: c}
	c.View = &ViewCommand{c: c}
	return c
}

// Root builds the command tree. The root command runs the tests.
func (c *Commands) Root(name string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               name,
		Short:             "Run the tests registered in this binary",
		Long:              "Run the registered tests in registration order and exit with the number of failing tests.",
		Version:           Version,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.load,
		RunE:              c.Run.Execute,
	}
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)
	c.flags.register(rootCmd)
	rootCmd.Flags().BoolVar(&c.flags.Progress, "progress", false, "Show a progress bar on stderr")

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered tests",
		Long:  "Run the registered tests and report at the configured verbosity",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVar(&c.flags.Progress, "progress", false, "Show a progress bar on stderr")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "List the registered tests in run order without executing them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Run the tests and browse the failures",
		Long:  "Run the registered tests and display the failures in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	viewCmd.Flags().BoolVar(&c.flags.Plain, "plain", false, "Print a summary table instead of opening the viewer")
	rootCmd.AddCommand(viewCmd)

	return rootCmd
}

// load resolves the configuration once the flags are parsed
func (c *Commands) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.flags.ToConfigFlags(cmd))
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	c.config = cfg
	c.logger = logger
	c.suite.SetLogger(logger)
	logger.Debug("Configuration loaded",
		zap.Int("verbosity", cfg.Verbosity),
		zap.String("color", cfg.Color),
		zap.String("filter", cfg.Filter),
		zap.Bool("progress", cfg.Progress))
	return nil
}

// useColor resolves the color mode for output written to w
func (c *Commands) useColor(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return c.config.UseColor(f.Fd())
	}
	return c.config.Color == config.ColorAlways
}

// Execute runs the command line against suite and returns the exit status:
// the number of failing tests, 1 when no test ran, or ExitUsage when the
// arguments or the configuration are invalid.
func Execute(suite *unittest.Suite, args []string, stdout, stderr io.Writer) int {
	cmds := NewCommands(suite, stdout, stderr)
	rootCmd := cmds.Root(filepath.Base(os.Args[0]))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if cmds.logger != nil {
		_ = cmds.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	return cmds.status
}

// Main runs the command line against the default suite and exits
func Main() {
	os.Exit(Execute(unittest.Default(), os.Args[1:], os.Stdout, os.Stderr))
}
