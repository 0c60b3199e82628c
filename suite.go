package unittest

import (
	"fmt"
	"iter"
	"runtime"

	"go.uber.org/zap"

	"unittest/internal/domain"
	"unittest/internal/registry"
)

// Suite owns the registered tests and hooks and the execution context used
// while running them. The zero value is not usable; call NewSuite.
type Suite struct {
	tests    *registry.Registry[*TestCase]
	setup    *registry.Registry[*Hook]
	teardown *registry.Registry[*Hook]

	current executionContext
	running bool
	logger  Logger
}

// NewSuite creates an empty suite
func NewSuite() *Suite {
	return &Suite{
		tests:    registry.New[*TestCase](),
		setup:    registry.New[*Hook](),
		teardown: registry.New[*Hook](),
		logger:   zap.NewNop(),
	}
}

// SetLogger replaces the suite's logger. A nil logger restores the no-op one.
func (s *Suite) SetLogger(l Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// Define registers a test. Tests run in the order they are defined.
func (s *Suite) Define(name string, body func(*T)) *TestCase {
	return s.define(name, body, 2)
}

// OnSetup registers a hook that runs before the body of every test.
func (s *Suite) OnSetup(fn func(*T)) *Hook {
	return s.hook(s.setup, "setup", fn, 2)
}

// OnTeardown registers a hook that runs after the body of every test.
// Teardown hooks run in registration order, like setup hooks.
func (s *Suite) OnTeardown(fn func(*T)) *Hook {
	return s.hook(s.teardown, "teardown", fn, 2)
}

func (s *Suite) define(name string, body func(*T), skip int) *TestCase {
	s.checkIdle()
	if body == nil {
		panic(fmt.Sprintf("unittest: test %q registered with a nil body", name))
	}

	tc := &TestCase{name: name, body: body, suite: s}
	_, tc.file, tc.line, _ = runtime.Caller(skip)
	tc.entry = s.tests.Register(tc)

	s.logger.Debug("Registered test",
		zap.String("name", name),
		zap.String("file", tc.file),
		zap.Int("line", tc.line),
		zap.Int("count", s.tests.Len()))
	return tc
}

func (s *Suite) hook(reg *registry.Registry[*Hook], kind string, fn func(*T), skip int) *Hook {
	s.checkIdle()
	if fn == nil {
		panic("unittest: " + kind + " hook registered as nil")
	}

	h := &Hook{body: fn, suite: s, owner: reg}
	_, h.file, h.line, _ = runtime.Caller(skip)
	h.entry = reg.Register(h)

	s.logger.Debug("Registered hook",
		zap.String("kind", kind),
		zap.String("file", h.file),
		zap.Int("line", h.line))
	return h
}

// checkIdle forbids changing the registries while a run iterates them.
func (s *Suite) checkIdle() {
	if s.running {
		panic(ErrRunning)
	}
}

// Len returns the number of registered tests
func (s *Suite) Len() int {
	return s.tests.Len()
}

// Tests yields the registered tests in run order.
func (s *Suite) Tests() iter.Seq[*TestCase] {
	return s.tests.All()
}

// List describes the registered tests in run order, keeping only those
// accepted by filter. A nil filter keeps everything.
func (s *Suite) List(filter func(name string) bool) []domain.TestInfo {
	var infos []domain.TestInfo
	for tc := range s.Tests() {
		if filter != nil && !filter(tc.name) {
			continue
		}
		infos = append(infos, tc.info(len(infos)+1))
	}
	return infos
}

// Current returns the test being executed, or nil between tests.
func (s *Suite) Current() *TestCase {
	return s.current.active
}
