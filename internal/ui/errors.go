package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"

	"unittest/internal/domain"
)

// ErrorViewer displays test failures in an interactive TUI
type ErrorViewer struct {
	out io.Writer
}

// NewErrorViewer creates a new ErrorViewer. Messages that need no TUI go
// to out.
func NewErrorViewer(out io.Writer) *ErrorViewer {
	return &ErrorViewer{out: out}
}

// View displays the failures of a run in an interactive TUI
func (ev *ErrorViewer) View(summary *domain.RunSummary) error {
	failures := Failures(summary)
	if len(failures) == 0 {
		fmt.Fprintln(ev.out, color.GreenString("✓ No test failures found!"))
		return nil
	}

	// Failures marked as reviewed during this session
	reviewed := make(map[int]bool)

	// Create the application
	app := tview.NewApplication()

	// Create list for failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, r := range failures {
		list.AddItem(listItemText(r, i, false), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows location of the failure)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for error details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(headerText(summary, len(failures)-len(reviewed)))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			statsView.SetText(formatFailureStats(failures[index]))
			detailsView.SetText(formatFailureDetails(failures[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'r', 'R':
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failures) {
					if reviewed[index] {
						delete(reviewed, index)
					} else {
						reviewed[index] = true
					}
					list.SetItemText(index, listItemText(failures[index], index, reviewed[index]), "")
					updateHeader()
				}
				return nil
			case 'q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return errors.Wrap(err, "failed to run TUI")
	}
	return nil
}

// headerText is the title line of the viewer
func headerText(s *domain.RunSummary, open int) string {
	return fmt.Sprintf(" Test Failures (%d of %d tests, %d to review) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, [yellow]q[white] quit ",
		s.Failed, s.Total, open)
}

// clean makes user text safe for a tview text view
func clean(s string) string {
	return tview.Escape(stripansi.Strip(s))
}

// listItemText is the list entry of a failure, dimmed once reviewed
func listItemText(r domain.Result, index int, reviewed bool) string {
	name := clean(r.Name)
	if name == "" {
		name = fmt.Sprintf("Test %d", r.Seq)
	}
	if reviewed {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

// formatFailureStats formats the location line of a failure
func formatFailureStats(r domain.Result) string {
	location := "unknown location"
	if d := r.Outcome.Failure; d != nil && d.Located() {
		location = fmt.Sprintf("%s:%d", d.File, d.Line)
	}
	return fmt.Sprintf("[cyan]test %d:[white] [yellow]%s[white]\n", r.Seq, clean(location))
}

// formatFailureDetails formats a failure for display using tview color tags
func formatFailureDetails(r domain.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", clean(r.Name))

	d := r.Outcome.Failure
	if d == nil {
		b.WriteString("No more information available\n")
		return b.String()
	}

	fmt.Fprintf(&b, "[cyan]Kind: %s[white]\n", d.Kind)
	if d.Located() {
		fmt.Fprintf(&b, "[yellow]Location: %s:%d[white]\n", clean(d.File), d.Line)
	}
	fmt.Fprintf(&b, "[cyan]Duration: %s[white]\n\n", r.Duration)

	switch {
	case d.Message != "":
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", clean(d.Message))
	case d.Kind == domain.UnknownFault:
		b.WriteString("No more information available\n")
	}
	return b.String()
}
