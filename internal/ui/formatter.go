package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"stt/internal/config"
	"stt/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunStats reads and displays run statistics from the JSON results file
func (f *Formatter) PrintRunStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read results file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse results: %w", err)
	}

	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Translation Suite Results                   ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Target")
	color.White("%-27s │\n", truncate(meta.TargetURL, 27))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedCases == 0 {
		color.Green("✓ All cases passed!")
	} else {
		color.Red("✗ %d case(s) failed", meta.FailedCases)
		fmt.Println()
		f.printFailures(output.Details)
	}

	return nil
}

// printFailures prints a compact per-failure summary
func (f *Formatter) printFailures(failures []domain.CaseFailure) {
	for _, failure := range failures {
		color.Red("  ✗ %s — %s [%s]", failure.CaseID, failure.CaseName, failure.Kind)
		color.White("      input:    %s", truncate(failure.Input, 70))
		color.White("      expected: %s", truncate(failure.Expected, 70))
		if failure.Actual != "" {
			color.Yellow("      actual:   %s", truncate(failure.Actual, 70))
		}
		if failure.Kind == string(domain.VerdictSession) && failure.Message != "" {
			color.Yellow("      error:    %s", truncate(failure.Message, 70))
		}
		fmt.Printf("      elapsed: %.1fs, attempts: %d\n", failure.ElapsedSeconds, failure.Attempts)
	}
}

// PrintCaseList lists fixture cases; long includes input/expected previews
func (f *Formatter) PrintCaseList(cases []domain.TestCase, long bool) error {
	color.Cyan("Found %d case(s):\n", len(cases))
	for _, tc := range cases {
		fmt.Printf("  %s  ", color.YellowString("%-8s", tc.ID))
		fmt.Printf("[%s]  ", string(tc.LengthType))
		color.White("%s", tc.Name)
		if long {
			fmt.Printf("      %s %s\n", color.CyanString("input:"), truncate(tc.Input, 60))
			fmt.Printf("      %s %s\n", color.CyanString("expect:"), truncate(tc.Expected, 60))
		}
	}
	return nil
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
