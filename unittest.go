/*
Package unittest is a small test-registration and execution engine for
test binaries that do not use "go test".

Tests and hooks register themselves, usually from init functions, and a
single call runs them all:

	func init() {
		unittest.OnSetup(func(t *unittest.T) { resetFixtures() })

		unittest.Define("divide by zero", func(t *unittest.T) {
			unittest.ExpectPanicsAs[ErrDivideByZero](t, func() { divide(10, 0) })
		})

		unittest.Define("100 / 4 == 25", func(t *unittest.T) {
			t.NotPanics(func() { t.Equal(divide(100, 4), 25) })
		})
	}

	func main() {
		os.Exit(unittest.RunAll(verbosity))
	}

The cli package puts a command line around the default suite; it reads the
verbosity from the TEST_VERBOSITY environment variable.

Tests run sequentially, in registration order. Setup hooks run before every
test body and teardown hooks after it, both in registration order. A test
passes by returning. The checks on T end a test by panicking with a
*Signal, which the runner recovers and classifies as a skip or a failure.
Any other panic fails the test too. One failing test never stops the run.

Registration order is the order of the registering calls. Within one
package init functions run in the order the files are presented to the
compiler, and across packages in import dependency order. Registering from
several packages therefore yields an order that depends on the import
graph; order-sensitive tests should live in one package.

The exit status returned by RunAll is the number of failing tests, so 0
means success. An empty suite returns 1.
*/
package unittest

var std = NewSuite()

// Default returns the process-wide suite used by the package-level
// functions.
func Default() *Suite {
	return std
}

// Define registers a test on the default suite
func Define(name string, body func(*T)) *TestCase {
	return std.define(name, body, 2)
}

// OnSetup registers a setup hook on the default suite
func OnSetup(fn func(*T)) *Hook {
	return std.hook(std.setup, "setup", fn, 2)
}

// OnTeardown registers a teardown hook on the default suite
func OnTeardown(fn func(*T)) *Hook {
	return std.hook(std.teardown, "teardown", fn, 2)
}

// RunAll runs the default suite. See Suite.RunAll.
func RunAll(verbosity int) int {
	return std.RunAll(verbosity)
}
