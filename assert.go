package unittest

import (
	"errors"
	"fmt"
	"reflect"
)

// T is the handle a test body and its hooks receive. Every check goes
// through it; a failing check panics with a *Signal that the runner
// recovers at the test boundary, so nothing after a failed check runs.
//
// A T is only valid while its test is running. Using it afterwards panics
// with ErrNoActiveTest.
type T struct {
	tc    *TestCase
	suite *Suite
}

// Name returns the name of the running test
func (t *T) Name() string {
	return t.tc.name
}

func (t *T) check() {
	if t == nil || t.suite == nil || !t.suite.current.isActive(t.tc) {
		panic(ErrNoActiveTest)
	}
}

func (t *T) fail(kind SignalKind, file string, line int, format string, args ...any) {
	panic(&Signal{Kind: kind, File: file, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Skip ends the test as skipped. Skipped tests count neither as passed nor
// as failed.
func (t *T) Skip() {
	t.check()
	panic(&Signal{Kind: SignalSkip})
}

// NotImplemented ends the test as not implemented. It is counted with the
// skipped tests.
func (t *T) NotImplemented() {
	t.check()
	panic(&Signal{Kind: SignalNotImplemented})
}

// True fails the test unless v is true.
func (t *T) True(v bool) {
	t.check()
	if !v {
		file, line := caller()
		t.fail(SignalAssertion, file, line, "expected true, got false")
	}
}

// False fails the test unless v is false.
func (t *T) False(v bool) {
	t.check()
	if v {
		file, line := caller()
		t.fail(SignalAssertion, file, line, "expected false, got true")
	}
}

// Equal fails the test unless a equals b. Values of different numeric
// types compare by value, and other convertible types are converted
// before comparing.
func (t *T) Equal(a, b any) {
	t.check()
	if !equalValues(a, b) {
		file, line := caller()
		t.fail(SignalAssertion, file, line, "expected %v (%T) to equal %v (%T)", a, a, b, b)
	}
}

// Different fails the test if a equals b, using the same rules as Equal.
func (t *T) Different(a, b any) {
	t.check()
	if equalValues(a, b) {
		file, line := caller()
		t.fail(SignalAssertion, file, line, "expected %v (%T) to differ from %v (%T)", a, a, b, b)
	}
}

// Panics fails the test unless fn panics. Any panic counts, including the
// signals of failing checks made inside fn.
func (t *T) Panics(fn func()) {
	t.check()
	if _, panicked := catch(fn); !panicked {
		file, line := caller()
		t.fail(SignalAssertion, file, line, "expected a panic, got none")
	}
}

// NotPanics fails the test if fn panics with anything. A failing check
// inside fn is reported at the NotPanics call.
func (t *T) NotPanics(fn func()) {
	t.check()
	if r, panicked := catch(fn); panicked {
		file, line := caller()
		t.fail(SignalAssertion, file, line, "unexpected panic: %v", r)
	}
}

// ExpectPanicsAs fails the test unless fn panics with a value that is an
// E. Errors match as errors.As would match them, so wrapped errors and
// interface types work. Other values match when they can be asserted to E.
func ExpectPanicsAs[E any](t *T, fn func()) {
	t.check()
	r, panicked := catch(fn)
	if panicked && panicMatches[E](r) {
		return
	}

	file, line := caller()
	if !panicked {
		t.fail(SignalAssertion, file, line, "expected a panic of type %v, got none", reflect.TypeFor[E]())
	}
	t.fail(SignalAssertion, file, line, "expected a panic of type %v, got %T: %v", reflect.TypeFor[E](), r, r)
}

var errorType = reflect.TypeFor[error]()

func panicMatches[E any](r any) bool {
	if _, ok := r.(E); ok {
		return true
	}

	err, ok := r.(error)
	if !ok {
		return false
	}
	// errors.As rejects targets that are neither interfaces nor errors.
	typ := reflect.TypeFor[E]()
	if typ.Kind() != reflect.Interface && !typ.Implements(errorType) {
		return false
	}
	var target E
	return errors.As(err, &target)
}

// Checkpoint signals that execution reached the point named id. It only
// makes sense inside a function passed to EnsureReached; a checkpoint that
// escapes the test body fails the test with an unknown fault.
func (t *T) Checkpoint(id string) {
	t.check()
	file, line := caller()
	panic(&Signal{Kind: SignalCheckpoint, File: file, Line: line, Checkpoint: id})
}

// EnsureReached fails the test unless fn signals the checkpoint id. A
// different checkpoint, any other panic or a normal return all fail.
func (t *T) EnsureReached(id string, fn func()) {
	t.check()
	r, panicked := catch(fn)

	file, line := caller()
	if !panicked {
		t.fail(SignalCheckpointMismatch, file, line, "checkpoint %q was not reached", id)
	}
	sig, ok := asSignal(r)
	if !ok || sig.Kind != SignalCheckpoint {
		t.fail(SignalCheckpointMismatch, file, line, "expected checkpoint %q, got panic: %v", id, r)
	}
	if sig.Checkpoint != id {
		t.fail(SignalCheckpointMismatch, file, line, "expected checkpoint %q, reached %q", id, sig.Checkpoint)
	}
}
