package unittest

import (
	"errors"
	"fmt"
	"runtime"
)

// SignalKind identifies what a Signal asks the runner to record
type SignalKind int

const (
	// SignalSkip ends the test as a voluntary skip.
	SignalSkip SignalKind = iota + 1
	// SignalNotImplemented ends the test as unimplemented. It is counted
	// with the skips.
	SignalNotImplemented
	// SignalAssertion ends the test as an assertion failure.
	SignalAssertion
	// SignalCheckpointMismatch ends the test because EnsureReached did not
	// see its checkpoint.
	SignalCheckpointMismatch
	// SignalCheckpoint marks a reached checkpoint. It is only meaningful
	// inside an EnsureReached block.
	SignalCheckpoint
)

func (k SignalKind) String() string {
	switch k {
	case SignalSkip:
		return "skip"
	case SignalNotImplemented:
		return "not implemented"
	case SignalAssertion:
		return "assertion failed"
	case SignalCheckpointMismatch:
		return "checkpoint mismatch"
	case SignalCheckpoint:
		return "checkpoint"
	}
	return fmt.Sprintf("signal(%d)", int(k))
}

// Signal is the value a test panics with to report anything other than a
// pass. The runner recovers it at the test boundary and classifies it.
type Signal struct {
	Kind       SignalKind
	File       string
	Line       int
	Message    string
	Checkpoint string
}

func (s *Signal) Error() string {
	msg := s.Kind.String()
	if s.Kind == SignalCheckpoint {
		msg += " " + s.Checkpoint
	}
	if s.Message != "" {
		msg += ": " + s.Message
	}
	if s.File != "" {
		msg = fmt.Sprintf("%s:%d: %s", s.File, s.Line, msg)
	}
	return msg
}

// asSignal finds a *Signal in a recovered panic value, looking through
// wrapped errors.
func asSignal(r any) (*Signal, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var sig *Signal
	if errors.As(err, &sig) {
		return sig, true
	}
	return nil, false
}

// caller returns the location of the code that called the function calling
// caller.
func caller() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???", 0
	}
	return file, line
}

// catch runs fn and reports whether it panicked and with what.
func catch(fn func()) (r any, panicked bool) {
	panicked = true
	defer func() {
		if panicked {
			r = recover()
		}
	}()

	fn()
	panicked = false
	return nil, false
}
