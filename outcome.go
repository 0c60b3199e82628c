package unittest

import (
	"fmt"

	"unittest/internal/domain"
)

type (
	// Outcome is the classified result of one test.
	Outcome = domain.Outcome
	// FailureDetail describes why a test failed.
	FailureDetail = domain.FailureDetail
	// Result is one executed test with its outcome.
	Result = domain.Result
	// RunSummary aggregates a whole run.
	RunSummary = domain.RunSummary
)

// classify maps what a test run recovered to an outcome. panicked is false
// when the test returned normally.
func classify(r any, panicked bool) domain.Outcome {
	if !panicked {
		return domain.Passed()
	}

	if sig, ok := asSignal(r); ok {
		switch sig.Kind {
		case SignalSkip:
			return domain.Skipped(domain.Voluntary)
		case SignalNotImplemented:
			return domain.Skipped(domain.NotImplemented)
		case SignalAssertion:
			return domain.Failed(domain.FailureDetail{
				Kind:    domain.AssertionFailure,
				File:    sig.File,
				Line:    sig.Line,
				Message: sig.Message,
			})
		case SignalCheckpointMismatch:
			return domain.Failed(domain.FailureDetail{
				Kind:    domain.CheckpointMismatch,
				File:    sig.File,
				Line:    sig.Line,
				Message: sig.Message,
			})
		case SignalCheckpoint:
			// A checkpoint outside EnsureReached has no meaning of its own.
			return domain.Failed(domain.FailureDetail{Kind: domain.UnknownFault})
		}
		return domain.Failed(domain.FailureDetail{Kind: domain.UnknownFault})
	}

	switch v := r.(type) {
	case error:
		return domain.Failed(domain.FailureDetail{Kind: domain.UncaughtFault, Message: v.Error()})
	case string:
		return domain.Failed(domain.FailureDetail{Kind: domain.UncaughtFault, Message: v})
	case fmt.Stringer:
		return domain.Failed(domain.FailureDetail{Kind: domain.UncaughtFault, Message: v.String()})
	}
	return domain.Failed(domain.FailureDetail{Kind: domain.UnknownFault})
}
