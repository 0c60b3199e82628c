package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"unittest/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	c *Commands
}

// Execute runs the tests and shows the results, in the interactive viewer
// when stdout is a terminal.
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	summary := vc.c.Run.run()
	vc.c.status = summary.Status()

	var viewer ui.Viewer = ui.NewErrorViewer(vc.c.stdout)
	if vc.c.flags.Plain || !vc.interactive() {
		viewer = ui.NewFormatter(vc.c.stdout)
	}
	return viewer.View(summary)
}

func (vc *ViewCommand) interactive() bool {
	f, ok := vc.c.stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
