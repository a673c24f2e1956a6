package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"stt/internal/config"
	"stt/internal/fixture"
	"stt/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *fixture.Loader
	filter    *fixture.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *fixture.Loader,
	filter *fixture.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := lc.loader.Load(lc.config.GetFixturePath())
	if err != nil {
		return err
	}

	cases = lc.filter.Apply(cases, lc.config.Flags.Filter)

	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	return lc.formatter.PrintCaseList(cases, lc.config.Flags.LongListing)
}
