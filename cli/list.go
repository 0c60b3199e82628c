package cli

import (
	"github.com/spf13/cobra"

	"unittest/internal/discovery"
	"unittest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	c *Commands
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	filter := discovery.NewFilter(lc.c.config.Filter)
	tests := lc.c.suite.List(filter.Func())

	ui.NewFormatter(lc.c.stdout).PrintTestList(tests)
	return nil
}
