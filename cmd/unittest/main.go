// Command unittest is a sample test binary. It registers the tests in
// calc.go and runs them through the command line in package cli.
package main

import (
	"unittest/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	cli.Main()
}
