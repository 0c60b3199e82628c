package unittest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"unittest/internal/domain"
)

// Observer is notified while a run makes progress. All calls happen on the
// goroutine running the suite.
type Observer interface {
	OnRunStart(total int)
	OnTestStart(seq, total int, name string)
	OnTestDone(r domain.Result)
	OnRunDone(s *domain.RunSummary)
}

// RunConfig controls a run
type RunConfig struct {
	// Verbosity gates the report: 0 writes nothing, 1 writes ok/failed,
	// 2 adds a line per test, 3 adds totals and 4 adds failure details.
	Verbosity int
	// Output receives the report. Defaults to os.Stderr.
	Output io.Writer
	// Color colors the status words.
	Color bool
	// Filter selects tests by name. Nil runs every test.
	Filter func(name string) bool
	// Observer, if set, follows the run.
	Observer Observer
}

// RunAll runs every registered test, writes the report to os.Stderr and
// returns the number of failing tests, or 1 if there was nothing to run.
// The "no tests" line of an empty run is written at every verbosity,
// including 0.
func (s *Suite) RunAll(verbosity int) int {
	return s.Run(RunConfig{Verbosity: verbosity, Output: os.Stderr}).Status()
}

// Run executes the selected tests one after another in registration order.
// A failing test never stops the run.
func (s *Suite) Run(cfg RunConfig) *domain.RunSummary {
	s.checkIdle()

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var selected []*TestCase
	for tc := range s.Tests() {
		if cfg.Filter == nil || cfg.Filter(tc.name) {
			selected = append(selected, tc)
		}
	}

	summary := &domain.RunSummary{RunID: uuid.New(), Total: len(selected)}
	if len(selected) == 0 {
		fmt.Fprintln(out, "no tests")
		s.logger.Warn("No tests to run", zap.Stringer("run", summary.RunID), zap.Int("registered", s.tests.Len()))
		return summary
	}

	s.running = true
	defer func() { s.running = false }()

	s.logger.Debug("Run started", zap.Stringer("run", summary.RunID), zap.Int("tests", summary.Total))
	if cfg.Observer != nil {
		cfg.Observer.OnRunStart(summary.Total)
	}

	var report bytes.Buffer
	rep := newReporter(&report, cfg.Verbosity, cfg.Color)
	start := time.Now()

	for i, tc := range selected {
		seq := i + 1
		if cfg.Observer != nil {
			cfg.Observer.OnTestStart(seq, summary.Total, tc.name)
		}

		rep.banner(seq, summary.Total, tc.name)
		result := s.runTest(tc, seq)
		rep.result(result.Outcome)
		summary.Add(result)

		s.logger.Debug("Test finished",
			zap.Int("seq", seq),
			zap.String("name", tc.name),
			zap.Stringer("status", result.Outcome.Status),
			zap.Duration("duration", result.Duration))
		if cfg.Observer != nil {
			cfg.Observer.OnTestDone(result)
		}
	}

	summary.Duration = time.Since(start)
	rep.summary(summary)

	if cfg.Verbosity > 0 {
		if _, err := report.WriteTo(out); err != nil {
			s.logger.Error("Failed to write report", zap.Error(err))
		}
	}

	s.logger.Debug("Run finished",
		zap.Stringer("run", summary.RunID),
		zap.Int("passed", summary.Passed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration))
	if cfg.Observer != nil {
		cfg.Observer.OnRunDone(summary)
	}
	return summary
}

// runTest executes one test and classifies what came out of it.
func (s *Suite) runTest(tc *TestCase, seq int) domain.Result {
	start := time.Now()
	t := &T{tc: tc, suite: s}

	r, panicked := s.execute(t)

	return domain.Result{
		Seq:      seq,
		Name:     tc.name,
		Outcome:  classify(r, panicked),
		Duration: time.Since(start),
	}
}

// execute runs the setup hooks, the body and the teardown hooks with tc as
// the active test. A panicking setup hook skips both the body and the
// teardown hooks. The context is cleared on every way out.
func (s *Suite) execute(t *T) (r any, panicked bool) {
	s.current.enter(t.tc)
	defer s.current.leave()

	panicked = true
	defer func() {
		if panicked {
			r = recover()
		}
	}()

	runHooks(s.setup, t)
	s.runBody(t)

	panicked = false
	return nil, false
}

// runBody runs the test body followed by the teardown hooks. When the body
// panics the teardown hooks still run while the panic unwinds; a panic from
// a teardown hook replaces the body's.
func (s *Suite) runBody(t *T) {
	returned := false
	defer func() {
		if !returned {
			runHooks(s.teardown, t)
		}
	}()

	t.tc.body(t)
	returned = true

	runHooks(s.teardown, t)
}
