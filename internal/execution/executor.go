package execution

import (
	"context"
	"time"

	"stt/internal/domain"
)

// Executor executes test cases and returns results
type Executor interface {
	Execute(ctx context.Context, cases []domain.TestCase) ([]domain.CaseResult, time.Duration, error)
}

// Progress receives per-case completion updates during a run
type Progress interface {
	Update(completed, passed, failed int)
	Finish()
}
