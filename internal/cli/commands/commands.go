package commands

import (
	"context"

	"stt/internal/browser"
	"stt/internal/cli"
	"stt/internal/config"
	"stt/internal/execution"
	"stt/internal/fixture"
	"stt/internal/storage"
	"stt/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Fails *FailsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	loader := fixture.NewLoader()
	filter := fixture.NewFilter()
	sessions := execution.SessionFactory(func(ctx context.Context) (execution.Session, error) {
		return browser.New(ctx, browser.Options{
			Headless:        cfg.Headless,
			NavigateTimeout: cfg.NavigateTimeout,
		})
	})
	runner := execution.NewRunner(cfg, sessions)
	executor := execution.NewWorkerPool(cfg, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:   NewRunCommand(cfg, loader, filter, executor, jsonStorage, formatter, failureViewer),
		List:  NewListCommand(cfg, loader, filter, formatter),
		Fails: NewFailsCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run translation cases against the live translator",
		Long:  "Load the fixture file and drive each case through a browser: type the Singlish input character by character, wait for Sinhala output, assert the expected text",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", config.DefaultWorkers, "Number of parallel cases (one browser each)")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by id/name pattern (supports wildcards, e.g. 'TC_00?' or '*long*')")
	runCmd.Flags().StringVar(&flags.Fixture, "fixture", "", "Path to the fixture JSON file")
	runCmd.Flags().StringVar(&flags.URL, "url", "", "Translator page URL")
	runCmd.Flags().BoolVar(&flags.Headed, "headed", false, "Run with a visible browser window")
	runCmd.Flags().IntVar(&flags.TimeoutSec, "timeout", 0, "Per-case output wait timeout in seconds")
	runCmd.Flags().IntVar(&flags.RunTimeoutSec, "run-timeout", 0, "Global run timeout in seconds (0 = none)")
	runCmd.Flags().IntVar(&flags.Retries, "retries", config.DefaultRetries, "Session-error retries per case")
	runCmd.Flags().IntVar(&flags.CharDelayMs, "char-delay", 0, "Inter-character typing delay in milliseconds")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first case failure")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only cases that failed in the last run")
	runCmd.Flags().BoolVar(&flags.RerunFailures, "rerun-failures", false, "After running all cases, rerun only failed ones once and save that result")
	runCmd.Flags().BoolVar(&flags.OpenFails, "open-fails", false, "Open the fails viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List fixture cases",
		Long:  "Load and list the fixture cases without driving a browser",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by id/name pattern (supports wildcards)")
	listCmd.Flags().StringVar(&flags.Fixture, "fixture", "", "Path to the fixture JSON file")
	listCmd.Flags().BoolVarP(&flags.LongListing, "long", "l", false, "Include input and expected output previews")
	rootCmd.AddCommand(listCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:   "fails",
		Short: "View case failures interactively",
		Long:  "Display case failures from the last run in an interactive viewer",
		RunE:  c.Fails.Execute,
	}
	rootCmd.AddCommand(failsCmd)
}
