package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"

	"unittest"
	"unittest/internal/config"
)

// newSuite registers "user create" (pass), "user delete" (fail),
// "payment" (skip) and "refund" (fail).
func newSuite() *unittest.Suite {
	s := unittest.NewSuite()
	s.Define("user create", func(t *unittest.T) { t.Equal(1, 1) })
	s.Define("user delete", func(t *unittest.T) { t.Equal(1, 2) })
	s.Define("payment", func(t *unittest.T) { t.Skip() })
	s.Define("refund", func(t *unittest.T) { panic("ledger closed") })
	return s
}

// isolate runs the test in an empty directory with TEST_VERBOSITY unset.
// t.Setenv registers the restore of the current value before the variable
// is removed.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.DefaultVerbosityEnv, "unset")
	if err := os.Unsetenv(config.DefaultVerbosityEnv); err != nil {
		t.Fatal(err)
	}
	t.Chdir(t.TempDir())
}

func execute(s *unittest.Suite, args ...string) (status int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	status = Execute(s, args, &out, &errOut)
	return status, out.String(), errOut.String()
}

func TestExecute_DefaultRunsEverything(t *testing.T) {
	isolate(t)

	status, stdout, stderr := execute(newSuite())

	assert.Equal(t, 2, status)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr, "silent by default")
}

func TestExecute_Verbosity(t *testing.T) {
	t.Run("from the environment", func(t *testing.T) {
		isolate(t)
		t.Setenv(config.DefaultVerbosityEnv, "3")

		status, _, stderr := execute(newSuite())

		assert.Equal(t, 2, status)
		assert.True(t, strings.HasSuffix(stderr, "\n1 tests passed out of 4; 1 tests were skipped.\n"), stderr)
	})

	t.Run("flag over the environment", func(t *testing.T) {
		isolate(t)
		t.Setenv(config.DefaultVerbosityEnv, "3")

		_, _, stderr := execute(newSuite(), "run", "-v", "1")

		assert.Equal(t, "failed\n", stderr)
	})

	t.Run("from a dotenv file", func(t *testing.T) {
		isolate(t)
		if err := os.WriteFile(".env", []byte(config.DefaultVerbosityEnv+"=1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Unsetenv(config.DefaultVerbosityEnv) })

		_, _, stderr := execute(newSuite())

		assert.Equal(t, "failed\n", stderr)
	})

	t.Run("non-numeric value is an error", func(t *testing.T) {
		isolate(t)
		t.Setenv(config.DefaultVerbosityEnv, "loud")

		status, _, stderr := execute(newSuite())

		assert.Equal(t, ExitUsage, status)
		assert.True(t, strings.HasPrefix(stderr, "Error: "+config.DefaultVerbosityEnv), stderr)
	})

	t.Run("empty value is an error", func(t *testing.T) {
		isolate(t)
		t.Setenv(config.DefaultVerbosityEnv, "")

		status, _, stderr := execute(newSuite())

		assert.Equal(t, ExitUsage, status)
		assert.Equal(t, "Error: "+config.DefaultVerbosityEnv+": verbosity is empty\n", stderr)
	})
}

func TestExecute_Diagnostics(t *testing.T) {
	isolate(t)

	_, _, stderr := execute(newSuite(), "-v", "4")

	assert.Contains(t, stderr, "Assertion failed!")
	assert.Contains(t, stderr, "Message: expected 1 (int) to equal 2 (int)")
	assert.Contains(t, stderr, "Test threw an exception:\n    ledger closed")
}

func TestExecute_Filter(t *testing.T) {
	isolate(t)

	status, _, stderr := execute(newSuite(), "run", "--filter", "user*", "-v", "3")

	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "1 tests passed out of 2; 0 tests were skipped.")

	status, _, stderr = execute(newSuite(), "--filter", "nothing")
	assert.Equal(t, 1, status)
	assert.Equal(t, "no tests\n", stderr)
}

func TestExecute_EmptySuite(t *testing.T) {
	isolate(t)

	status, _, stderr := execute(unittest.NewSuite())

	assert.Equal(t, 1, status)
	assert.Equal(t, "no tests\n", stderr)
}

func TestExecute_Color(t *testing.T) {
	isolate(t)

	_, _, plain := execute(newSuite(), "-v", "2", "--color", "never")
	_, _, colored := execute(newSuite(), "-v", "2", "--color", "always")

	assert.Equal(t, plain, stripansi.Strip(colored))
	assert.NotEqual(t, plain, colored)
}

func TestExecute_Progress(t *testing.T) {
	isolate(t)

	status, _, stderr := execute(newSuite(), "run", "--progress")

	assert.Equal(t, 2, status)
	assert.Contains(t, stripansi.Strip(stderr), "failed: 2]")
}

func TestExecute_ConfigFile(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("unittest.yaml", []byte("verbosity: 1\nfilter: user create\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	status, _, stderr := execute(newSuite(), "--config", "unittest.yaml")

	assert.Equal(t, 0, status)
	assert.Equal(t, "ok\n", stderr)
}

func TestExecute_List(t *testing.T) {
	isolate(t)

	status, stdout, _ := execute(newSuite(), "list", "--filter", "*user*")

	assert.Equal(t, 0, status)
	assert.Contains(t, stdout, "user create")
	assert.Contains(t, stdout, "user delete")
	assert.NotContains(t, stdout, "payment")
	assert.Contains(t, stdout, "cli_test.go:")
}

func TestExecute_ViewPlain(t *testing.T) {
	isolate(t)

	status, stdout, _ := execute(newSuite(), "view", "--plain")

	assert.Equal(t, 2, status)
	text := stripansi.Strip(stdout)
	assert.Contains(t, text, "✗ 2 of 4 test(s) failed")
	assert.Contains(t, text, "user delete (assertion failure")
	assert.Contains(t, text, "refund (uncaught fault): ledger closed")
}

func TestExecute_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"explode"}},
		{name: "unknown flag", args: []string{"--loud"}},
		{name: "bad color", args: []string{"--color", "sometimes"}},
		{name: "bad log level", args: []string{"--log-level", "chatty"}},
		{name: "missing config", args: []string{"--config", "missing.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			status, _, stderr := execute(newSuite(), tt.args...)

			assert.Equal(t, ExitUsage, status)
			assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
		})
	}
}
