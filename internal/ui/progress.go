package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"unittest/internal/domain"
)

// ProgressBar follows a run and draws a bar with live counts
type ProgressBar struct {
	w   io.Writer
	bar *progressbar.ProgressBar

	passed, skipped, failed int
}

// NewProgressBar creates a progress bar writing to w
func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{w: w}
}

func (p *ProgressBar) describe() string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", p.passed) +
		" | " +
		color.YellowString("skipped: %d", p.skipped) +
		" | " +
		color.RedString("failed: %d]", p.failed)
}

// OnRunStart sizes the bar to the number of selected tests
func (p *ProgressBar) OnRunStart(total int) {
	p.passed, p.skipped, p.failed = 0, 0, 0
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(p.describe()),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(p.w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// OnTestStart does nothing; the bar moves when a test is done.
func (p *ProgressBar) OnTestStart(int, int, string) {}

// OnTestDone counts the result and advances the bar
func (p *ProgressBar) OnTestDone(r domain.Result) {
	switch r.Outcome.Status {
	case domain.Pass:
		p.passed++
	case domain.Skip:
		p.skipped++
	default:
		p.failed++
	}
	if p.bar == nil {
		return
	}
	p.bar.Describe(p.describe())
	_ = p.bar.Add(1)
}

// OnRunDone completes the bar
func (p *ProgressBar) OnRunDone(*domain.RunSummary) {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// Counts returns the passed, skipped and failed counts seen so far
func (p *ProgressBar) Counts() (passed, skipped, failed int) {
	return p.passed, p.skipped, p.failed
}
