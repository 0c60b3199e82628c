// Package discovery selects registered tests by name.
package discovery

import (
	"path"
	"strings"
)

// sep stands in for '/' so that wildcards match across it
const sep = "\x00"

// Filter matches test names against a pattern
type Filter struct {
	pattern string
	glob    string
}

// NewFilter creates a new Filter. An empty pattern matches every test.
// A pattern with wildcards must match the whole name: "user*" selects
// names starting with "user", "*payment*" names containing "payment".
// '*' matches any sequence, '?' any single character and [...] a class.
// Any other pattern matches names containing it.
func NewFilter(pattern string) *Filter {
	return &Filter{
		pattern: pattern,
		glob:    strings.ReplaceAll(pattern, "/", sep),
	}
}

// Pattern returns the pattern the filter was created with
func (f *Filter) Pattern() string {
	return f.pattern
}

func (f *Filter) hasWildcards() bool {
	return strings.ContainsAny(f.pattern, "*?[")
}

// Match reports whether the test name is selected
func (f *Filter) Match(name string) bool {
	if f.pattern == "" {
		return true
	}

	// If no wildcards, do a simple contains check
	if !f.hasWildcards() {
		return strings.Contains(name, f.pattern)
	}

	matched, err := path.Match(f.glob, strings.ReplaceAll(name, "/", sep))
	if err == nil {
		return matched
	}

	// A malformed pattern is taken literally
	return strings.Contains(name, f.pattern)
}

// Func returns Match as a plain predicate, or nil when the filter selects
// everything.
func (f *Filter) Func() func(name string) bool {
	if f.pattern == "" {
		return nil
	}
	return f.Match
}
