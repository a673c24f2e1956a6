package execution

import (
	"context"
	"time"
)

// Session is the driver capability a case needs from a browser: navigation,
// paced text entry and output reads. The chromedp implementation lives in
// internal/browser; tests substitute an in-memory translator stub.
type Session interface {
	Navigate(url string) error
	Clear(selector string) error
	TypePaced(selector, text string, delay time.Duration) error
	Text(selector string) (string, error)
	Close() error
}

// SessionFactory opens a fresh session. Each case (and each retry of a case)
// gets its own; sessions are never shared across cases.
type SessionFactory func(ctx context.Context) (Session, error)
