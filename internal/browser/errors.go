package browser

import "fmt"

// SessionError wraps a driver failure (navigation, typing, text read) with
// the operation that failed. Session errors are retryable at the case level:
// the runner discards the session and starts over from a clean one.
type SessionError struct {
	Op  string
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session %s: %v", e.Op, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}
