package domain

// LengthType classifies a test case by input size
type LengthType string

const (
	LengthShort  LengthType = "S"
	LengthMedium LengthType = "M"
	LengthLong   LengthType = "L"
)

// Valid reports whether the length type is one of S, M, L
func (lt LengthType) Valid() bool {
	switch lt {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

// TestCase represents a single translation test case loaded from the fixture file.
// Immutable once loaded; fixture order determines execution order.
type TestCase struct {
	ID         string     `json:"TC_ID"`
	Name       string     `json:"Test_case_name"`
	LengthType LengthType `json:"Input_length_type"`
	Input      string     `json:"Input"`
	Expected   string     `json:"Expected_output"`
}
