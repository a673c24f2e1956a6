package execution

import "fmt"

// MismatchError indicates the output converged to Sinhala text but the
// expected string was not contained in it.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("output mismatch: expected to contain %q, got %q", e.Expected, e.Actual)
}
