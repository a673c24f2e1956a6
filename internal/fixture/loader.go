package fixture

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"stt/internal/domain"
)

// Loader reads test cases from a JSON fixture file
type Loader struct{}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the ordered fixture list from the given path.
// Record order is preserved; it determines execution and report order.
func (l *Loader) Load(path string) ([]domain.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}

	var cases []domain.TestCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse fixture file %s: %w", path, err)
	}

	if err := validate(cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func validate(cases []domain.TestCase) error {
	seen := make(map[string]int, len(cases))
	for i, tc := range cases {
		switch {
		case strings.TrimSpace(tc.ID) == "":
			return &MalformedFixtureError{Index: i, Field: "TC_ID", Reason: "is required"}
		case strings.TrimSpace(tc.Name) == "":
			return &MalformedFixtureError{Index: i, ID: tc.ID, Field: "Test_case_name", Reason: "is required"}
		case tc.Input == "":
			return &MalformedFixtureError{Index: i, ID: tc.ID, Field: "Input", Reason: "is required"}
		case tc.Expected == "":
			return &MalformedFixtureError{Index: i, ID: tc.ID, Field: "Expected_output", Reason: "is required"}
		case !tc.LengthType.Valid():
			return &MalformedFixtureError{
				Index: i, ID: tc.ID, Field: "Input_length_type",
				Reason: fmt.Sprintf("must be S, M or L, got %q", string(tc.LengthType)),
			}
		}

		if first, dup := seen[tc.ID]; dup {
			return &DuplicateIDError{ID: tc.ID, FirstIndex: first, Index: i}
		}
		seen[tc.ID] = i
	}
	return nil
}
