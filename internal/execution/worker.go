package execution

import (
	"context"
	"sync"
	"time"

	"stt/internal/config"
	"stt/internal/domain"
)

// WorkerPool runs cases in parallel. Each worker takes cases from a shared
// queue and each case gets its own browser session, so cases share no
// mutable state and need no cross-case ordering.
type WorkerPool struct {
	config   *config.Config
	runner   *Runner
	progress Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner) *WorkerPool {
	return &WorkerPool{config: cfg, runner: runner}
}

// SetProgress sets the progress sink for the pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute runs all cases in parallel (no fail-fast).
func (wp *WorkerPool) Execute(ctx context.Context, cases []domain.TestCase) ([]domain.CaseResult, time.Duration, error) {
	return wp.ExecuteWithOptions(ctx, cases, false)
}

// ExecuteWithOptions runs cases with optional fail-fast (stop dispatching
// after the first failed case).
func (wp *WorkerPool) ExecuteWithOptions(ctx context.Context, cases []domain.TestCase, failFast bool) ([]domain.CaseResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(ctx, cases)
	}
	return wp.executeFailFast(ctx, cases)
}

func (wp *WorkerPool) executeAll(ctx context.Context, cases []domain.TestCase) ([]domain.CaseResult, time.Duration, error) {
	queue := make(chan domain.TestCase, len(cases))
	results := make(chan domain.CaseResult, len(cases))
	for _, tc := range cases {
		queue <- tc
	}
	close(queue)

	var mu sync.Mutex
	var completed, passed, failed int
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for tc := range queue {
				if ctx.Err() != nil {
					results <- domain.CaseResult{Case: tc, Verdict: domain.VerdictSession, Error: ctx.Err()}
					continue
				}
				result := wp.runner.Run(ctx, tc, workerID)
				results <- result
				mu.Lock()
				completed++
				if result.Passed() {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passed, failed)
				}
				mu.Unlock()
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CaseResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

func (wp *WorkerPool) executeFailFast(ctx context.Context, cases []domain.TestCase) ([]domain.CaseResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan domain.TestCase, 1)
	results := make(chan domain.CaseResult, len(cases))

	go func() {
		defer close(queue)
		for _, tc := range cases {
			select {
			case <-ctx.Done():
				return
			case queue <- tc:
			}
		}
	}()

	var mu sync.Mutex
	var completed, passed, failed int
	var seenFailure bool
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for tc := range queue {
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				result := wp.runner.Run(ctx, tc, workerID)
				results <- result
				mu.Lock()
				completed++
				if result.Passed() {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passed, failed)
				}
				if !result.Passed() && !seenFailure {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CaseResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
