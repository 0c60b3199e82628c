package unittest

import "errors"

var (
	// ErrNoActiveTest is raised when a T is used while its test is not the
	// one running, for example after the test returned.
	ErrNoActiveTest = errors.New("unittest: test handle used outside of its running test")
	// ErrTestActive is raised when a test is started while another one is
	// still active in the same suite.
	ErrTestActive = errors.New("unittest: another test is already active")
	// ErrRunning is raised when a suite is modified or started again while
	// it is running.
	ErrRunning = errors.New("unittest: suite is running")
)

// executionContext holds the test being executed. It does not own the
// test. There is no locking: a suite runs its tests one at a time on the
// goroutine that called Run.
type executionContext struct {
	active *TestCase
}

func (c *executionContext) enter(tc *TestCase) {
	if c.active != nil {
		panic(ErrTestActive)
	}
	c.active = tc
}

func (c *executionContext) leave() {
	c.active = nil
}

func (c *executionContext) isActive(tc *TestCase) bool {
	return tc != nil && c.active == tc
}
