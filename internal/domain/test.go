package domain

import "fmt"

// TestInfo describes a registered test case without its body
type TestInfo struct {
	Seq  int    // 1-based registration position
	Name string // Test name
	File string // File of the registering call
	Line int    // Line of the registering call
}

// Site formats the registration site as file:line.
func (t TestInfo) Site() string {
	if t.File == "" {
		return "-"
	}
	return fmt.Sprintf("%s:%d", t.File, t.Line)
}
