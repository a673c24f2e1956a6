package fixture

import (
	"path/filepath"
	"strings"

	"stt/internal/domain"
)

// Filter selects test cases by id or name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Apply filters cases by pattern using wildcard matching against the case id
// and name. Supports patterns like "TC_00?" or "*long*"; a pattern without
// wildcards falls back to a substring match.
func (f *Filter) Apply(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if matches(tc.ID, pattern) || matches(tc.Name, pattern) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

func matches(name, pattern string) bool {
	// filepath.Match handles * and ? wildcards
	if ok, err := filepath.Match(pattern, name); err == nil && ok {
		return true
	}

	// Flexible fallback for patterns like "*long*": every non-empty part
	// between wildcards must appear in the name.
	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		hasPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
