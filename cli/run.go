package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unittest"
	"unittest/internal/discovery"
	"unittest/internal/domain"
	"unittest/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	c *Commands
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	summary := rc.run()
	rc.c.status = summary.Status()
	return nil
}

// run executes the selected tests with the report on stderr
func (rc *RunCommand) run() *domain.RunSummary {
	cfg := rc.c.config
	filter := discovery.NewFilter(cfg.Filter)

	runCfg := unittest.RunConfig{
		Verbosity: cfg.Verbosity,
		Output:    rc.c.stderr,
		Color:     rc.c.useColor(rc.c.stderr),
		Filter:    filter.Func(),
	}
	if cfg.Progress {
		runCfg.Observer = ui.NewProgressBar(rc.c.stderr)
	}

	summary := rc.c.suite.Run(runCfg)
	if rc.c.logger != nil {
		rc.c.logger.Info("Tests finished",
			zap.Stringer("run", summary.RunID),
			zap.String("filter", filter.Pattern()),
			zap.Int("status", summary.Status()))
	}
	return summary
}
