// Package browser drives the translator page through chromedp. One Session
// owns one browser context; parallel cases never share a session.
package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// Options configures a browser session
type Options struct {
	Headless bool
	// NavigateTimeout bounds the initial page load
	NavigateTimeout time.Duration
}

// Session is a live browser tab driving the translator page
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	opts        Options
}

// New launches a browser and opens a fresh tab. The session inherits
// cancellation from parent, so a global run timeout tears it down promptly.
func New(parent context.Context, opts Options) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, allocOpts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	// Force the browser process to start now so launch failures surface here
	// instead of on the first action.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, &SessionError{Op: "launch", Err: err}
	}

	return &Session{ctx: ctx, cancel: cancel, allocCancel: allocCancel, opts: opts}, nil
}

// Navigate opens the given URL and waits for the body to render
func (s *Session) Navigate(url string) error {
	ctx := s.ctx
	if s.opts.NavigateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.NavigateTimeout)
		defer cancel()
	}
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitVisible("body", chromedp.ByQuery),
	)
	if err != nil {
		return &SessionError{Op: "navigate", Err: err}
	}
	return nil
}

// Clear empties the input surface
func (s *Session) Clear(selector string) error {
	err := chromedp.Run(s.ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Clear(selector, chromedp.ByQuery),
	)
	if err != nil {
		return &SessionError{Op: "clear", Err: err}
	}
	return nil
}

// TypePaced enters text one character at a time with a fixed inter-character
// delay. The translator's live conversion is keystroke-triggered; a bulk
// value set bypasses its event listeners and yields an unconverted result,
// so per-character entry is a hard correctness requirement, not a nicety.
func (s *Session) TypePaced(selector, text string, delay time.Duration) error {
	actions := []chromedp.Action{
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	}
	for _, char := range text {
		actions = append(actions,
			chromedp.KeyEvent(string(char)),
			chromedp.Sleep(delay),
		)
	}
	if err := chromedp.Run(s.ctx, actions...); err != nil {
		return &SessionError{Op: "type", Err: err}
	}
	return nil
}

// Text returns the current rendered text of the element. Always a fresh read.
func (s *Session) Text(selector string) (string, error) {
	var out string
	err := chromedp.Run(s.ctx,
		chromedp.Text(selector, &out, chromedp.ByQuery),
	)
	if err != nil {
		return "", &SessionError{Op: "read", Err: err}
	}
	return out, nil
}

// Close tears down the tab and the browser process
func (s *Session) Close() error {
	s.cancel()
	s.allocCancel()
	return nil
}
