package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"stt/internal/config"
	"stt/internal/domain"
	"stt/internal/poll"
)

func testStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := &config.Config{
		TargetURL:      "https://translator.test",
		OutputJSONDir:  filepath.Join(t.TempDir(), "storage"),
		OutputJSONFile: "run-results.json",
	}
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := testStorage(t)

	results := []domain.CaseResult{
		{
			Case:     domain.TestCase{ID: "TC_001", Name: "greeting", LengthType: domain.LengthShort, Input: "ayubowan", Expected: "ආයුබෝවන්"},
			Verdict:  domain.VerdictPass,
			Actual:   "ආයුබෝවන්",
			Duration: 3 * time.Second,
			Attempts: 1,
		},
		{
			Case:     domain.TestCase{ID: "TC_002", Name: "word", LengthType: domain.LengthShort, Input: "gedhara", Expected: "ගෙදර"},
			Verdict:  domain.VerdictTimeout,
			Actual:   "gedhara",
			Error:    &poll.TimeoutError{LastText: "gedhara", Elapsed: 25 * time.Second},
			Duration: 25 * time.Second,
			Attempts: 1,
		},
	}

	if err := st.Save(results, 28*time.Second, 2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if output.Meta.TotalCases != 2 || output.Meta.PassedCases != 1 || output.Meta.FailedCases != 1 {
		t.Errorf("unexpected meta: %+v", output.Meta)
	}
	if output.Meta.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", output.Meta.Workers)
	}
	if output.Meta.TargetURL != "https://translator.test" {
		t.Errorf("unexpected target url %q", output.Meta.TargetURL)
	}

	if len(output.Details) != 1 {
		t.Fatalf("expected 1 failure detail, got %d", len(output.Details))
	}
	failure := output.Details[0]
	if failure.CaseID != "TC_002" || failure.Kind != string(domain.VerdictTimeout) {
		t.Errorf("unexpected failure record: %+v", failure)
	}
	if failure.Actual != "gedhara" {
		t.Errorf("last-seen text not persisted: %q", failure.Actual)
	}
	if failure.Message == "" {
		t.Error("expected error message in failure record")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := testStorage(t)
	if _, err := st.Load(); err == nil {
		t.Fatal("expected error for missing results file")
	}
}

func TestJSONStorage_SaveOutputRoundTrip(t *testing.T) {
	st := testStorage(t)

	output := &domain.RunOutput{
		Meta: domain.RunMeta{TotalCases: 1, FailedCases: 1},
		Details: []domain.CaseFailure{
			{CaseID: "TC_003", Kind: "mismatch", Resolved: true},
		},
	}
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save output failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Details) != 1 || !loaded.Details[0].Resolved {
		t.Errorf("resolved flag not persisted: %+v", loaded.Details)
	}
}

func TestFailuresOf_PreservesResultOrder(t *testing.T) {
	results := []domain.CaseResult{
		{Case: domain.TestCase{ID: "TC_001"}, Verdict: domain.VerdictMismatch, Error: errors.New("x")},
		{Case: domain.TestCase{ID: "TC_002"}, Verdict: domain.VerdictPass},
		{Case: domain.TestCase{ID: "TC_003"}, Verdict: domain.VerdictSession, Error: errors.New("y")},
	}

	failures := domain.FailuresOf(results)
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	if failures[0].CaseID != "TC_001" || failures[1].CaseID != "TC_003" {
		t.Errorf("failure order not preserved: %s, %s", failures[0].CaseID, failures[1].CaseID)
	}
}
