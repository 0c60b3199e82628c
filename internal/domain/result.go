package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the coarse classification of a test run
type Status int

const (
	Pass Status = iota
	Skip
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Skip:
		return "skip"
	case Fail:
		return "fail"
	}
	return "invalid"
}

// SkipReason separates voluntary skips from unimplemented tests. Both land
// in the skip bucket.
type SkipReason int

const (
	Voluntary SkipReason = iota
	NotImplemented
)

// Outcome is the classified result of one test.
// Failure is set if and only if Status is Fail.
type Outcome struct {
	Status     Status
	SkipReason SkipReason
	Failure    *FailureDetail
}

// Passed returns the passing outcome
func Passed() Outcome {
	return Outcome{Status: Pass}
}

// Skipped returns a skip outcome with the given reason
func Skipped(reason SkipReason) Outcome {
	return Outcome{Status: Skip, SkipReason: reason}
}

// Failed returns a failing outcome
func Failed(detail FailureDetail) Outcome {
	return Outcome{Status: Fail, Failure: &detail}
}

// Label is the word printed after a test's banner.
func (o Outcome) Label() string {
	switch o.Status {
	case Pass:
		return "Passed"
	case Skip:
		if o.SkipReason == NotImplemented {
			return "Not implemented"
		}
		return "Skipped"
	}
	return "Failed"
}

// Result represents the result of executing one test case
type Result struct {
	Seq      int           // 1-based position in the run
	Name     string        // Test name
	Outcome  Outcome       // Classified outcome
	Duration time.Duration // Time spent in hooks and body
}

// RunSummary aggregates the results of one run
type RunSummary struct {
	RunID    uuid.UUID
	Total    int
	Passed   int
	Skipped  int
	Failed   int
	Results  []Result
	Duration time.Duration
}

// Add counts r into the summary.
func (s *RunSummary) Add(r Result) {
	s.Results = append(s.Results, r)
	switch r.Outcome.Status {
	case Pass:
		s.Passed++
	case Skip:
		s.Skipped++
	case Fail:
		s.Failed++
	}
}

// Status returns the process exit status for the run: the number of
// failing tests, or 1 when nothing ran.
func (s *RunSummary) Status() int {
	if s.Total == 0 {
		return 1
	}
	return s.Failed
}
