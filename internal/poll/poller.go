// Package poll implements an eventual-content poller: it repeatedly samples
// a dynamically-updating text region until a predicate matches or a deadline
// elapses, without a fixed settle-time guess.
package poll

import (
	"context"
	"fmt"
	"time"
)

// MinInterval is the floor for the sampling interval. Tighter intervals
// would hammer the CDP connection without observing anything new.
const MinInterval = 50 * time.Millisecond

// ReadFunc returns the current text of the target region. Each call must be
// a fresh read so that mutations between samples are observed.
type ReadFunc func() (string, error)

// Predicate decides whether a text snapshot counts as converged
type Predicate func(text string) bool

// Result is the outcome of a successful poll
type Result struct {
	Matched   bool
	FinalText string // first snapshot for which the predicate held
	Elapsed   time.Duration
}

// TimeoutError indicates the predicate never matched within the deadline.
// LastText carries the final sampled text for diagnosis.
type TimeoutError struct {
	LastText string
	Elapsed  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("content did not converge within %s (last text: %q)", e.Elapsed.Round(time.Millisecond), e.LastText)
}

// Until samples read at the given interval until pred matches the text or
// timeout elapses. The first sample is taken immediately, so content that has
// already converged returns without waiting a full interval. Read errors are
// returned as-is; cancellation of ctx aborts the poll promptly.
func Until(ctx context.Context, read ReadFunc, pred Predicate, timeout, interval time.Duration) (Result, error) {
	if interval < MinInterval {
		interval = MinInterval
	}

	start := time.Now()
	deadline := start.Add(timeout)
	var lastText string

	for {
		text, err := read()
		if err != nil {
			return Result{}, err
		}
		lastText = text

		if pred(text) {
			return Result{Matched: true, FinalText: text, Elapsed: time.Since(start)}, nil
		}

		if !time.Now().Add(interval).Before(deadline) {
			return Result{}, &TimeoutError{LastText: lastText, Elapsed: time.Since(start)}
		}

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-time.After(interval):
		}
	}
}
