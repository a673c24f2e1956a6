package domain

// CaseFailure represents a failed test case as persisted in the results file
type CaseFailure struct {
	CaseID         string  `json:"case_id"`
	CaseName       string  `json:"case_name"`
	LengthType     string  `json:"length_type"`
	Kind           string  `json:"kind"` // timeout | mismatch | session
	Input          string  `json:"input"`
	Expected       string  `json:"expected"`
	Actual         string  `json:"actual"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Attempts       int     `json:"attempts"`
	Message        string  `json:"message"`
	Resolved       bool    `json:"resolved,omitempty"` // Track if failure is marked as resolved in the viewer
}
