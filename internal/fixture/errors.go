package fixture

import "fmt"

// MalformedFixtureError indicates a fixture record that cannot be used:
// a required field is missing/empty or the length type is not S, M or L.
// Fatal to the run; an invalid fixture set is never partially executed.
type MalformedFixtureError struct {
	Index  int    // zero-based position of the record in the fixture file
	ID     string // case id if present, may be empty
	Field  string
	Reason string
}

func (e *MalformedFixtureError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("malformed fixture record %d (%s): field %q %s", e.Index, e.ID, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed fixture record %d: field %q %s", e.Index, e.Field, e.Reason)
}

// DuplicateIDError indicates two fixture records sharing a TC_ID.
type DuplicateIDError struct {
	ID         string
	FirstIndex int
	Index      int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate fixture id %q at records %d and %d", e.ID, e.FirstIndex, e.Index)
}
