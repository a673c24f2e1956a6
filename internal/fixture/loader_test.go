package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"stt/internal/domain"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	path := writeFixture(t, `[
		{"TC_ID": "TC_001", "Test_case_name": "short", "Input_length_type": "S", "Input": "ayubowan", "Expected_output": "ආයුබෝවන්"},
		{"TC_ID": "TC_002", "Test_case_name": "medium", "Input_length_type": "M", "Input": "api adha gedhara yamudha?", "Expected_output": "අපි අද ගෙදර යමුද?"}
	]`)

	cases, err := loader.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}

	// Order must be preserved
	if cases[0].ID != "TC_001" || cases[1].ID != "TC_002" {
		t.Errorf("fixture order not preserved: %s, %s", cases[0].ID, cases[1].ID)
	}
	if cases[0].LengthType != domain.LengthShort {
		t.Errorf("expected length type S, got %q", cases[0].LengthType)
	}
	if cases[1].Expected != "අපි අද ගෙදර යමුද?" {
		t.Errorf("unexpected expected output: %q", cases[1].Expected)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader()
	if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoader_InvalidJSON(t *testing.T) {
	loader := NewLoader()
	path := writeFixture(t, `{broken`)
	if _, err := loader.Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoader_MalformedRecords(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "missing id",
			content: `[{"Test_case_name": "x", "Input_length_type": "S", "Input": "a", "Expected_output": "b"}]`,
			field:   "TC_ID",
		},
		{
			name:    "missing name",
			content: `[{"TC_ID": "TC_001", "Input_length_type": "S", "Input": "a", "Expected_output": "b"}]`,
			field:   "Test_case_name",
		},
		{
			name:    "empty input",
			content: `[{"TC_ID": "TC_001", "Test_case_name": "x", "Input_length_type": "S", "Input": "", "Expected_output": "b"}]`,
			field:   "Input",
		},
		{
			name:    "empty expected output",
			content: `[{"TC_ID": "TC_001", "Test_case_name": "x", "Input_length_type": "S", "Input": "a", "Expected_output": ""}]`,
			field:   "Expected_output",
		},
		{
			name:    "invalid length type",
			content: `[{"TC_ID": "TC_001", "Test_case_name": "x", "Input_length_type": "XL", "Input": "a", "Expected_output": "b"}]`,
			field:   "Input_length_type",
		},
		{
			name:    "missing length type",
			content: `[{"TC_ID": "TC_001", "Test_case_name": "x", "Input": "a", "Expected_output": "b"}]`,
			field:   "Input_length_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, tt.content)
			_, err := loader.Load(path)

			var malformed *MalformedFixtureError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedFixtureError, got %v", err)
			}
			if malformed.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, malformed.Field)
			}
		})
	}
}

func TestLoader_DuplicateIDs(t *testing.T) {
	loader := NewLoader()
	path := writeFixture(t, `[
		{"TC_ID": "TC_001", "Test_case_name": "first", "Input_length_type": "S", "Input": "a", "Expected_output": "b"},
		{"TC_ID": "TC_002", "Test_case_name": "second", "Input_length_type": "M", "Input": "c", "Expected_output": "d"},
		{"TC_ID": "TC_001", "Test_case_name": "dup", "Input_length_type": "L", "Input": "e", "Expected_output": "f"}
	]`)

	_, err := loader.Load(path)

	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if dup.ID != "TC_001" {
		t.Errorf("expected duplicate id TC_001, got %q", dup.ID)
	}
	if dup.FirstIndex != 0 || dup.Index != 2 {
		t.Errorf("expected indices 0 and 2, got %d and %d", dup.FirstIndex, dup.Index)
	}
}
