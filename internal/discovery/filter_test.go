package discovery

import (
	"testing"
)

func TestFilter_Match(t *testing.T) {
	names := []string{"user create", "user delete", "payment refund", "order/payment total", "divide by zero", "superuser x"}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern matches all",
			pattern:  "",
			expected: names,
		},
		{
			name:     "wildcard pattern anchors the prefix",
			pattern:  "user*",
			expected: []string{"user create", "user delete"},
		},
		{
			name:     "wildcard pattern anchors the suffix",
			pattern:  "*refund",
			expected: []string{"payment refund"},
		},
		{
			name:     "wildcard pattern matches substring",
			pattern:  "*payment*",
			expected: []string{"payment refund", "order/payment total"},
		},
		{
			name:     "simple contains match",
			pattern:  "user",
			expected: []string{"user create", "user delete", "superuser x"},
		},
		{
			name:     "question mark",
			pattern:  "user ?reate",
			expected: []string{"user create"},
		},
		{
			name:     "character class",
			pattern:  "user [cd]*",
			expected: []string{"user create", "user delete"},
		},
		{
			name:     "no matches",
			pattern:  "*missing*",
			expected: nil,
		},
		{
			name:     "star matches names with separators",
			pattern:  "*",
			expected: names,
		},
		{
			name:     "fragments match in order",
			pattern:  "*pay*total",
			expected: []string{"order/payment total"},
		},
		{
			name:     "fragments out of order do not match",
			pattern:  "*total*pay*",
			expected: nil,
		},
		{
			name:     "slash in pattern",
			pattern:  "order/*",
			expected: []string{"order/payment total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.pattern)

			var result []string
			for _, name := range names {
				if f.Match(name) {
					result = append(result, name)
				}
			}
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, result)
					break
				}
			}
		})
	}
}

func TestFilter_Func(t *testing.T) {
	if NewFilter("").Func() != nil {
		t.Error("empty pattern should not filter")
	}

	match := NewFilter("user*").Func()
	if match == nil {
		t.Fatal("expected a predicate")
	}
	if !match("user create") || match("payment") {
		t.Error("predicate does not follow the pattern")
	}
}

func TestFilter_MalformedPatternIsLiteral(t *testing.T) {
	f := NewFilter("[user*")

	if !f.Match("a [user* b") {
		t.Error("expected a literal match")
	}
	if f.Match("user create") {
		t.Error("malformed pattern should not act as a wildcard")
	}
}
