package execution

import (
	"context"
	"errors"
	"strings"
	"time"

	"stt/internal/config"
	"stt/internal/domain"
	"stt/internal/poll"
	"stt/internal/script"
)

// Runner executes a single test case end-to-end against the translator page
type Runner struct {
	config   *config.Config
	sessions SessionFactory
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, sessions SessionFactory) *Runner {
	return &Runner{config: cfg, sessions: sessions}
}

// Run executes one case. Session failures are retried from a clean session a
// bounded number of times; timeout and mismatch are real verdicts and are
// reported as-is. workerID is informational only.
func (r *Runner) Run(ctx context.Context, tc domain.TestCase, workerID int) domain.CaseResult {
	start := time.Now()
	attempts := r.config.Retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var result domain.CaseResult
	for attempt := 1; attempt <= attempts; attempt++ {
		result = r.runOnce(ctx, tc)
		result.Attempts = attempt
		if result.Verdict != domain.VerdictSession || ctx.Err() != nil {
			break
		}
	}
	result.Duration = time.Since(start)
	return result
}

func (r *Runner) runOnce(ctx context.Context, tc domain.TestCase) domain.CaseResult {
	result := domain.CaseResult{Case: tc}

	sess, err := r.sessions(ctx)
	if err != nil {
		result.Verdict = domain.VerdictSession
		result.Error = err
		return result
	}
	defer sess.Close()

	if err := sess.Navigate(r.config.TargetURL); err != nil {
		return sessionFailure(tc, err)
	}
	if err := sess.Clear(r.config.InputSelector); err != nil {
		return sessionFailure(tc, err)
	}
	if err := sess.TypePaced(r.config.InputSelector, tc.Input, r.config.CharDelay); err != nil {
		return sessionFailure(tc, err)
	}

	pr, err := poll.Until(ctx,
		func() (string, error) { return sess.Text(r.config.OutputSelector) },
		script.ContainsSinhala,
		r.config.PollTimeout,
		r.config.PollInterval,
	)
	if err != nil {
		var timeout *poll.TimeoutError
		if errors.As(err, &timeout) {
			result.Verdict = domain.VerdictTimeout
			result.Actual = timeout.LastText
			result.Error = err
			return result
		}
		return sessionFailure(tc, err)
	}

	result.Actual = pr.FinalText

	// Substring rather than exact equality: the transliteration engine is
	// nondeterministic for ambiguous phonetic input, and exact matching
	// would fail runs for differences unrelated to the feature under test.
	expected := strings.TrimSpace(tc.Expected)
	if !strings.Contains(pr.FinalText, expected) {
		result.Verdict = domain.VerdictMismatch
		result.Error = &MismatchError{Expected: expected, Actual: pr.FinalText}
		return result
	}

	result.Verdict = domain.VerdictPass
	return result
}

// sessionFailure classifies driver and cancellation failures. Both abort the
// case and are reported as session-level; only genuine driver errors are
// worth retrying, which Run checks via the context.
func sessionFailure(tc domain.TestCase, err error) domain.CaseResult {
	return domain.CaseResult{Case: tc, Verdict: domain.VerdictSession, Error: err}
}
