package unittest

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"unittest/internal/domain"
)

// bannerWidth is the column budget shared by the sequence counter and the
// dotted test name.
const bannerWidth = 51

// reporter renders the run report. Everything it writes is gated by the
// verbosity level.
type reporter struct {
	w         io.Writer
	verbosity int

	pass *color.Color
	skip *color.Color
	fail *color.Color
}

func newReporter(w io.Writer, verbosity int, useColor bool) *reporter {
	r := &reporter{
		w:         w,
		verbosity: verbosity,
		pass:      color.New(color.FgGreen),
		skip:      color.New(color.FgYellow),
		fail:      color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{r.pass, r.skip, r.fail} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// formatBanner lays out " ** seq/total name.......: ". The counter is right
// aligned to the width of total and the name is cut and dot padded to what
// is left of bannerWidth.
func formatBanner(seq, total int, name string) string {
	width := len(strconv.Itoa(total))
	nameWidth := bannerWidth - width

	label := name
	if utf8.RuneCountInString(label) > nameWidth-1 {
		label = string([]rune(label)[:nameWidth-1])
	}
	label += " "
	pad := nameWidth - utf8.RuneCountInString(label)

	return fmt.Sprintf(" ** %*d/%d %s%s: ", width, seq, total, label, strings.Repeat(".", pad))
}

func (r *reporter) banner(seq, total int, name string) {
	if r.verbosity > 1 {
		fmt.Fprint(r.w, formatBanner(seq, total, name))
	}
}

func (r *reporter) styleFor(o domain.Outcome) *color.Color {
	switch o.Status {
	case domain.Pass:
		return r.pass
	case domain.Skip:
		return r.skip
	}
	return r.fail
}

// result writes the status word for one test and, above verbosity 3, the
// diagnostics of a failure.
func (r *reporter) result(o domain.Outcome) {
	if r.verbosity <= 1 {
		return
	}
	fmt.Fprintln(r.w, r.styleFor(o).Sprint(o.Label()))

	if r.verbosity > 3 && o.Failure != nil {
		r.diagnose(o.Failure)
	}
}

func (r *reporter) diagnose(f *domain.FailureDetail) {
	switch f.Kind {
	case domain.AssertionFailure, domain.CheckpointMismatch:
		header := "Assertion failed!"
		if f.Kind == domain.CheckpointMismatch {
			header = "Checkpoint not reached!"
		}
		fmt.Fprintf(r.w, "\n    %s\n    File: %s\n    Line: %d\n", header, f.File, f.Line)
		if f.Message != "" {
			fmt.Fprintf(r.w, "    Message: %s\n", f.Message)
		}
		fmt.Fprint(r.w, "\n")
	case domain.UncaughtFault:
		fmt.Fprintf(r.w, "\n    Test threw an exception:\n    %s\n\n", f.Message)
	default:
		fmt.Fprint(r.w, "\n    No more information available\n\n")
	}
}

// summary closes the report: totals above verbosity 2, a single ok/failed
// line at verbosity 1.
func (r *reporter) summary(s *domain.RunSummary) {
	switch {
	case r.verbosity > 2:
		fmt.Fprintf(r.w, "\n%d tests passed out of %d; %d tests were skipped.\n", s.Passed, s.Total, s.Skipped)
	case r.verbosity == 1:
		if s.Failed > 0 {
			fmt.Fprintln(r.w, r.fail.Sprint("failed"))
		} else {
			fmt.Fprintln(r.w, r.pass.Sprint("ok"))
		}
	}
}
