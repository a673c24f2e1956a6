package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stt/internal/config"
	"stt/internal/domain"
	"stt/internal/execution"
	"stt/internal/fixture"
	"stt/internal/storage"
	"stt/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrCasesFailed is returned by run when any case failed, so the process
// exits non-zero regardless of the failure kind.
var ErrCasesFailed = errors.New("run finished with failed cases")

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	loader    *fixture.Loader
	filter    *fixture.Filter
	executor  *execution.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	loader *fixture.Loader,
	filter *fixture.Filter,
	executor *execution.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := rc.loader.Load(rc.config.GetFixturePath())
	if err != nil {
		return err
	}

	cases = rc.filter.Apply(cases, rc.config.Flags.Filter)

	if rc.config.Flags.OnlyFailed {
		cases, err = rc.selectLastFailed(cases)
		if err != nil {
			return err
		}
	}

	if len(cases) == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if rc.config.Flags.RunTimeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(rc.config.Flags.RunTimeoutSec)*time.Second)
		defer cancel()
	}

	progressBar := ui.NewProgressBar(len(cases))
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.ExecuteWithOptions(ctx, cases, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	if rc.config.Flags.RerunFailures {
		results, duration = rc.rerunFailures(ctx, results, duration)
	}

	if err := rc.storage.Save(results, duration, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	if err := rc.formatter.PrintRunStats(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}

	if rc.config.Flags.OpenFails {
		output, err := rc.storage.Load()
		if err == nil {
			if err := rc.viewer.View(output); err != nil {
				return err
			}
		}
	}
	return ErrCasesFailed
}

// selectLastFailed narrows cases to those that failed in the last saved run
func (rc *RunCommand) selectLastFailed(cases []domain.TestCase) ([]domain.TestCase, error) {
	output, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("no previous run results to rerun: %w", err)
	}
	failedIDs := make(map[string]bool, len(output.Details))
	for _, failure := range output.Details {
		failedIDs[failure.CaseID] = true
	}
	var selected []domain.TestCase
	for _, tc := range cases {
		if failedIDs[tc.ID] {
			selected = append(selected, tc)
		}
	}
	return selected, nil
}

// rerunFailures reruns failed cases once from fresh sessions and merges the
// second attempt's results over the first.
func (rc *RunCommand) rerunFailures(ctx context.Context, results []domain.CaseResult, duration time.Duration) ([]domain.CaseResult, time.Duration) {
	var failedCases []domain.TestCase
	for _, r := range results {
		if !r.Passed() {
			failedCases = append(failedCases, r.Case)
		}
	}
	if len(failedCases) == 0 || ctx.Err() != nil {
		return results, duration
	}

	color.Yellow("\nRerunning %d failed case(s)...", len(failedCases))
	rc.executor.SetProgress(ui.NewProgressBar(len(failedCases)))
	rerun, rerunDuration, err := rc.executor.Execute(ctx, failedCases)
	if err != nil {
		return results, duration
	}

	byID := make(map[string]domain.CaseResult, len(rerun))
	for _, r := range rerun {
		byID[r.Case.ID] = r
	}
	for i, r := range results {
		if updated, ok := byID[r.Case.ID]; ok {
			results[i] = updated
		}
	}
	return results, duration + rerunDuration
}
