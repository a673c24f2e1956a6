package execution

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"stt/internal/browser"
	"stt/internal/config"
	"stt/internal/domain"
	"stt/internal/poll"
)

// stubSession is an in-memory translator: typed input "converts" to the
// configured render text after a simulated delay, like the live page does.
type stubSession struct {
	mu          sync.Mutex
	typed       string
	typedAt     time.Time
	render      string        // text the output region converges to; "" means it never converts
	renderDelay time.Duration // conversion latency after typing finishes
	closed      bool
}

func (s *stubSession) Navigate(url string) error   { return nil }
func (s *stubSession) Clear(selector string) error { return nil }

func (s *stubSession) TypePaced(selector, text string, delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typed = text
	s.typedAt = time.Now()
	return nil
}

func (s *stubSession) Text(selector string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.typed == "" {
		return "", nil
	}
	if s.render == "" || time.Since(s.typedAt) < s.renderDelay {
		// Mid-conversion the region still shows the romanized input
		return s.typed, nil
	}
	return s.render, nil
}

func (s *stubSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// failingFactory returns session errors for the first n calls, then stubs
type failingFactory struct {
	mu       sync.Mutex
	failures int
	calls    int
	render   string
}

func (f *failingFactory) factory(ctx context.Context) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return nil, &browser.SessionError{Op: "launch", Err: errors.New("browser crashed")}
	}
	return &stubSession{render: f.render, renderDelay: 10 * time.Millisecond}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		TargetURL:      "https://translator.test",
		InputSelector:  "textarea.in",
		OutputSelector: "div.out",
		CharDelay:      time.Millisecond,
		PollTimeout:    2 * time.Second,
		PollInterval:   poll.MinInterval,
		Retries:        0,
	}
}

func stubFactory(render string, delay time.Duration) SessionFactory {
	return func(ctx context.Context) (Session, error) {
		return &stubSession{render: render, renderDelay: delay}, nil
	}
}

var sampleCase = domain.TestCase{
	ID:         "TC_003",
	Name:       "Medium question sentence",
	LengthType: domain.LengthMedium,
	Input:      "api adha gedhara yamudha?",
	Expected:   "අපි අද ගෙදර යමුද?",
}

func TestRunner_Pass(t *testing.T) {
	delay := 200 * time.Millisecond
	runner := NewRunner(testConfig(), stubFactory("අපි අද ගෙදර යමුද?", delay))

	result := runner.Run(context.Background(), sampleCase, 1)

	if result.Verdict != domain.VerdictPass {
		t.Fatalf("expected pass, got %s (%v)", result.Verdict, result.Error)
	}
	if result.Actual != "අපි අද ගෙදර යමුද?" {
		t.Errorf("unexpected actual text: %q", result.Actual)
	}
	// Elapsed must cover the simulated conversion latency
	if result.Duration < delay {
		t.Errorf("duration %v shorter than render delay %v", result.Duration, delay)
	}
	if result.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", result.Attempts)
	}
}

func TestRunner_SubstringPolicy(t *testing.T) {
	// Extra trailing text in the output and padding whitespace in the
	// expected value must not fail the case
	tc := sampleCase
	tc.Expected = "  අපි අද ගෙදර යමුද?  "
	runner := NewRunner(testConfig(), stubFactory("අපි අද ගෙදර යමුද? thanks", 10*time.Millisecond))

	result := runner.Run(context.Background(), tc, 1)

	if result.Verdict != domain.VerdictPass {
		t.Fatalf("expected pass, got %s (%v)", result.Verdict, result.Error)
	}
}

func TestRunner_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.PollTimeout = 300 * time.Millisecond
	// render "" — output never leaves the romanized state
	runner := NewRunner(cfg, stubFactory("", 0))

	result := runner.Run(context.Background(), sampleCase, 1)

	if result.Verdict != domain.VerdictTimeout {
		t.Fatalf("expected timeout, got %s", result.Verdict)
	}
	var timeoutErr *poll.TimeoutError
	if !errors.As(result.Error, &timeoutErr) {
		t.Fatalf("expected TimeoutError, got %v", result.Error)
	}
	// Last-seen text reported for diagnosis
	if !strings.Contains(result.Actual, "api adha") {
		t.Errorf("expected last-seen romanized text, got %q", result.Actual)
	}
}

func TestRunner_Mismatch(t *testing.T) {
	// Output converges to Sinhala, but not the expected sentence
	runner := NewRunner(testConfig(), stubFactory("වෙනත් වාක්‍යයක්", 10*time.Millisecond))

	result := runner.Run(context.Background(), sampleCase, 1)

	if result.Verdict != domain.VerdictMismatch {
		t.Fatalf("expected mismatch, got %s (%v)", result.Verdict, result.Error)
	}
	var mismatch *MismatchError
	if !errors.As(result.Error, &mismatch) {
		t.Fatalf("expected MismatchError, got %v", result.Error)
	}
	if mismatch.Actual != "වෙනත් වාක්‍යයක්" {
		t.Errorf("mismatch error missing actual text: %q", mismatch.Actual)
	}
	if mismatch.Expected != "අපි අද ගෙදර යමුද?" {
		t.Errorf("mismatch error missing expected text: %q", mismatch.Expected)
	}
}

func TestRunner_RetriesSessionErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Retries = 1
	factory := &failingFactory{failures: 1, render: "අපි අද ගෙදර යමුද?"}
	runner := NewRunner(cfg, factory.factory)

	result := runner.Run(context.Background(), sampleCase, 1)

	if result.Verdict != domain.VerdictPass {
		t.Fatalf("expected pass after retry, got %s (%v)", result.Verdict, result.Error)
	}
	if result.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", result.Attempts)
	}
}

func TestRunner_SessionErrorsExhausted(t *testing.T) {
	cfg := testConfig()
	cfg.Retries = 1
	factory := &failingFactory{failures: 10}
	runner := NewRunner(cfg, factory.factory)

	result := runner.Run(context.Background(), sampleCase, 1)

	if result.Verdict != domain.VerdictSession {
		t.Fatalf("expected session verdict, got %s", result.Verdict)
	}
	var sessErr *browser.SessionError
	if !errors.As(result.Error, &sessErr) {
		t.Fatalf("expected SessionError, got %v", result.Error)
	}
	if result.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", result.Attempts)
	}
}

func TestRunner_NoRetryOnMismatch(t *testing.T) {
	cfg := testConfig()
	cfg.Retries = 2
	runner := NewRunner(cfg, stubFactory("වෙනත් දෙයක්", 10*time.Millisecond))

	result := runner.Run(context.Background(), sampleCase, 1)

	if result.Verdict != domain.VerdictMismatch {
		t.Fatalf("expected mismatch, got %s", result.Verdict)
	}
	// Mismatch is a real verdict, not a transport failure
	if result.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", result.Attempts)
	}
}
