package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"unittest/internal/domain"
)

// noLocation groups failures that carry no source file
const noLocation = "(no location)"

// Formatter formats and displays output
type Formatter struct {
	w io.Writer
}

// NewFormatter creates a new Formatter writing to w
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// PrintTestList prints the registered tests in run order
func (f *Formatter) PrintTestList(tests []domain.TestInfo) {
	if len(tests) == 0 {
		fmt.Fprintln(f.w, color.YellowString("No tests registered"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(f.w)
	t.SetTitle("Registered tests")
	t.AppendHeader(table.Row{"#", "NAME", "DEFINED AT"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "NAME", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})

	for _, info := range tests {
		t.AppendRow(table.Row{info.Seq, info.Name, shortSite(info)})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d tests", len(tests)), ""})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// shortSite trims the registration file to its base name
func shortSite(info domain.TestInfo) string {
	if info.File == "" {
		return info.Site()
	}
	return fmt.Sprintf("%s:%d", filepath.Base(info.File), info.Line)
}

// PrintSummary prints the run statistics followed by a tree of the
// failures grouped by file.
func (f *Formatter) PrintSummary(s *domain.RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(f.w)
	t.SetTitle("Test Execution Statistics")
	t.AppendRows([]table.Row{
		{"Run", s.RunID.String()},
		{"Tests", s.Total},
		{"Passed", s.Passed},
		{"Skipped", s.Skipped},
		{"Failed", s.Failed},
		{"Duration", s.Duration.Round(time.Microsecond).String()},
	})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	switch {
	case s.Failed > 0:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	case s.Skipped > 0:
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}
	t.Render()

	fmt.Fprintln(f.w)
	if s.Failed == 0 {
		fmt.Fprintln(f.w, color.GreenString("✓ All tests passed!"))
		return
	}
	fmt.Fprintln(f.w, color.RedString("✗ %d of %d test(s) failed", s.Failed, s.Total))
	fmt.Fprintln(f.w)
	f.printFailureTree(Failures(s))
}

// Failures returns the failed results of a run in run order
func Failures(s *domain.RunSummary) []domain.Result {
	var failed []domain.Result
	for _, r := range s.Results {
		if r.Outcome.Status == domain.Fail {
			failed = append(failed, r)
		}
	}
	return failed
}

// printFailureTree prints the failures under the file they were raised in
func (f *Formatter) printFailureTree(failures []domain.Result) {
	byFile := make(map[string][]domain.Result)
	for _, r := range failures {
		file := noLocation
		if r.Outcome.Failure != nil && r.Outcome.Failure.Located() {
			file = r.Outcome.Failure.File
		}
		byFile[file] = append(byFile[file], r)
	}

	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for i, file := range files {
		lastFile := i == len(files)-1
		connector, indent := "├── ", "│   "
		if lastFile {
			connector, indent = "└── ", "    "
		}
		fmt.Fprintln(f.w, color.CyanString("%s%s", connector, file))

		results := byFile[file]
		for j, r := range results {
			prefix := indent + "├── "
			if j == len(results)-1 {
				prefix = indent + "└── "
			}
			fmt.Fprintf(f.w, "%s%s %s\n", prefix, color.RedString(r.Name), describeFailure(r.Outcome.Failure))
		}
	}
}

// describeFailure renders a failure on one line
func describeFailure(d *domain.FailureDetail) string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("(" + d.Kind.String())
	if d.Located() {
		fmt.Fprintf(&b, " at line %d", d.Line)
	}
	b.WriteString(")")
	if d.Message != "" {
		b.WriteString(": " + d.Message)
	}
	return b.String()
}

// View prints the run summary. It lets the formatter stand in for the
// interactive viewer when there is no terminal.
func (f *Formatter) View(s *domain.RunSummary) error {
	f.PrintSummary(s)
	return nil
}
