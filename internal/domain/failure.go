package domain

// FailureKind tells how a failing test failed
type FailureKind int

const (
	// AssertionFailure is a mismatch found by one of the assertion methods.
	AssertionFailure FailureKind = iota + 1
	// CheckpointMismatch means an expected checkpoint was not reached, or a
	// different one was.
	CheckpointMismatch
	// UncaughtFault is a panic with an error or text value that escaped the
	// test body.
	UncaughtFault
	// UnknownFault is a panic value of a shape the engine does not know.
	UnknownFault
)

func (k FailureKind) String() string {
	switch k {
	case AssertionFailure:
		return "assertion failure"
	case CheckpointMismatch:
		return "checkpoint mismatch"
	case UncaughtFault:
		return "uncaught fault"
	case UnknownFault:
		return "unknown fault"
	}
	return "invalid"
}

// FailureDetail describes a failed test. File and Line are only set for
// failures raised by the engine's own assertions.
type FailureDetail struct {
	Kind    FailureKind
	File    string
	Line    int
	Message string
}

// Located reports whether the failure carries a source location
func (f *FailureDetail) Located() bool {
	return f.File != ""
}
