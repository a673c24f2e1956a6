package domain

import "time"

// Verdict classifies the outcome of a single case
type Verdict string

const (
	VerdictPass     Verdict = "pass"
	VerdictTimeout  Verdict = "timeout"  // output never converged to Sinhala text
	VerdictMismatch Verdict = "mismatch" // converged, but expected text missing
	VerdictSession  Verdict = "session"  // browser/driver failure after retries
)

// CaseResult represents the result of executing one test case
type CaseResult struct {
	Case     TestCase      // The case that was executed
	Verdict  Verdict       // Outcome classification
	Actual   string        // Final (or last-seen) output region text
	Error    error         // Error if the case did not pass
	Duration time.Duration // Wall time for the case, including retries
	Attempts int           // Number of session attempts made
}

// Passed reports whether the case passed
func (r CaseResult) Passed() bool {
	return r.Verdict == VerdictPass
}

// RunMeta contains metadata about a suite run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	TargetURL       string  `json:"target_url"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a suite run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}

// FailuresOf derives failure records from a result set, preserving result order.
func FailuresOf(results []CaseResult) []CaseFailure {
	var failures []CaseFailure
	for _, r := range results {
		if r.Passed() {
			continue
		}
		f := CaseFailure{
			CaseID:         r.Case.ID,
			CaseName:       r.Case.Name,
			LengthType:     string(r.Case.LengthType),
			Kind:           string(r.Verdict),
			Input:          r.Case.Input,
			Expected:       r.Case.Expected,
			Actual:         r.Actual,
			ElapsedSeconds: r.Duration.Seconds(),
			Attempts:       r.Attempts,
		}
		if r.Error != nil {
			f.Message = r.Error.Error()
		}
		failures = append(failures, f)
	}
	return failures
}
