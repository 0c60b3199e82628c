package unittest

import (
	"unittest/internal/domain"
	"unittest/internal/registry"
)

// TestCase is a registered, named test body.
type TestCase struct {
	name string
	body func(*T)
	file string
	line int

	suite *Suite
	entry *registry.Entry[*TestCase]
}

// Name returns the name the test was registered with
func (tc *TestCase) Name() string {
	return tc.name
}

// Site returns the file and line of the registering call.
func (tc *TestCase) Site() (string, int) {
	return tc.file, tc.line
}

// Unregister removes the test from its suite. It reports false if the test
// was already removed.
func (tc *TestCase) Unregister() bool {
	tc.suite.checkIdle()
	return tc.suite.tests.Unregister(tc.entry)
}

func (tc *TestCase) info(seq int) domain.TestInfo {
	return domain.TestInfo{Seq: seq, Name: tc.name, File: tc.file, Line: tc.line}
}

// Hook is a registered setup or teardown function.
type Hook struct {
	body func(*T)
	file string
	line int

	suite *Suite
	owner *registry.Registry[*Hook]
	entry *registry.Entry[*Hook]
}

// Site returns the file and line of the registering call.
func (h *Hook) Site() (string, int) {
	return h.file, h.line
}

// Unregister removes the hook from its suite
func (h *Hook) Unregister() bool {
	h.suite.checkIdle()
	return h.owner.Unregister(h.entry)
}

// runHooks calls every hook of reg in registration order. A panicking hook
// stops the remaining ones.
func runHooks(reg *registry.Registry[*Hook], t *T) {
	for h := range reg.All() {
		h.body(t)
	}
}
