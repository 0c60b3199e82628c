package unittest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unittest/internal/domain"
)

// trace records hook and body execution order.
type trace struct {
	calls []string
}

func (tr *trace) hook(name string) func(*T) {
	return func(*T) { tr.calls = append(tr.calls, name) }
}

func TestHooks_ForwardOrderAroundEveryTest(t *testing.T) {
	s := NewSuite()
	tr := &trace{}

	s.OnSetup(tr.hook("setup A"))
	s.OnSetup(tr.hook("setup B"))
	s.OnTeardown(tr.hook("teardown C"))
	s.OnTeardown(tr.hook("teardown D"))
	s.Define("one", tr.hook("body one"))
	s.Define("two", tr.hook("body two"))

	summary, _ := run(s, 0)
	require.Equal(t, 0, summary.Status())

	assert.Equal(t, []string{
		"setup A", "setup B", "body one", "teardown C", "teardown D",
		"setup A", "setup B", "body two", "teardown C", "teardown D",
	}, tr.calls)
}

func TestHooks_SetupFaultSkipsBodyAndTeardown(t *testing.T) {
	s := NewSuite()
	tr := &trace{}

	s.OnSetup(func(*T) {
		tr.calls = append(tr.calls, "setup")
		panic("no database")
	})
	s.OnSetup(tr.hook("second setup"))
	s.OnTeardown(tr.hook("teardown"))
	s.Define("test", tr.hook("body"))

	summary, _ := run(s, 0)

	assert.Equal(t, []string{"setup"}, tr.calls)
	assert.Equal(t, 1, summary.Status())
	failure := summary.Results[0].Outcome.Failure
	require.NotNil(t, failure)
	assert.Equal(t, domain.UncaughtFault, failure.Kind)
	assert.Equal(t, "no database", failure.Message)
}

func TestHooks_TeardownRunsAfterFailingBody(t *testing.T) {
	s := NewSuite()
	tr := &trace{}

	s.OnTeardown(tr.hook("teardown A"))
	s.OnTeardown(tr.hook("teardown B"))
	s.Define("fails", func(t *T) {
		tr.calls = append(tr.calls, "body")
		t.True(false)
		tr.calls = append(tr.calls, "unreachable")
	})

	summary, _ := run(s, 0)

	assert.Equal(t, []string{"body", "teardown A", "teardown B"}, tr.calls)
	failure := summary.Results[0].Outcome.Failure
	require.NotNil(t, failure)
	assert.Equal(t, domain.AssertionFailure, failure.Kind, "the body's signal survives teardown")
}

func TestHooks_TeardownRunsAfterSkip(t *testing.T) {
	s := NewSuite()
	tr := &trace{}

	s.OnTeardown(tr.hook("teardown"))
	s.Define("skips", func(t *T) { t.Skip() })

	summary, _ := run(s, 0)

	assert.Equal(t, []string{"teardown"}, tr.calls)
	assert.Equal(t, domain.Skip, summary.Results[0].Outcome.Status)
}

func TestHooks_TeardownFaultStopsRemainingTeardown(t *testing.T) {
	s := NewSuite()
	tr := &trace{}

	s.OnTeardown(func(*T) {
		tr.calls = append(tr.calls, "teardown A")
		panic("cleanup failed")
	})
	s.OnTeardown(tr.hook("teardown B"))
	s.Define("passes", tr.hook("body"))

	summary, _ := run(s, 0)

	assert.Equal(t, []string{"body", "teardown A"}, tr.calls)
	failure := summary.Results[0].Outcome.Failure
	require.NotNil(t, failure)
	assert.Equal(t, "cleanup failed", failure.Message)
}

func TestHooks_TeardownFaultReplacesBodyFault(t *testing.T) {
	s := NewSuite()

	s.OnTeardown(func(*T) { panic("teardown") })
	s.Define("skips", func(t *T) { t.Skip() })

	summary, _ := run(s, 0)

	outcome := summary.Results[0].Outcome
	require.Equal(t, domain.Fail, outcome.Status)
	assert.Equal(t, "teardown", outcome.Failure.Message)
}

func TestHooks_CanUseTheTestHandle(t *testing.T) {
	s := NewSuite()
	var seen []string

	s.OnSetup(func(t *T) { seen = append(seen, t.Name()) })
	s.OnSetup(func(t *T) {
		if t.Name() == "skipped by setup" {
			t.Skip()
		}
	})
	s.Define("runs", func(t *T) {})
	s.Define("skipped by setup", func(t *T) { t.True(false) })

	summary, _ := run(s, 0)

	assert.Equal(t, []string{"runs", "skipped by setup"}, seen)
	assert.Equal(t, 0, summary.Status())
	assert.Equal(t, 1, summary.Skipped)
}

func TestHooks_Unregister(t *testing.T) {
	s := NewSuite()
	tr := &trace{}

	s.OnSetup(tr.hook("kept"))
	removed := s.OnSetup(tr.hook("removed"))
	s.Define("test", func(*T) {})

	require.True(t, removed.Unregister())
	run(s, 0)

	assert.Equal(t, []string{"kept"}, tr.calls)
}
