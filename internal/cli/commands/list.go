package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ktr/internal/config"
	"ktr/internal/domain"
	"ktr/internal/registry"
	"ktr/internal/ui"
)

// ListCommand handles the list command.
type ListCommand struct {
	config    *config.Config
	registry  *registry.Registry
	formatter *ui.Formatter
}

// NewListCommand creates a ListCommand.
func NewListCommand(cfg *config.Config, reg *registry.Registry, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{config: cfg, registry: reg, formatter: formatter}
}

// Execute runs the command.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := lc.config.Flags

	var tests []domain.TestDescriptor
	switch {
	case flags.Number >= 0:
		test, err := lc.registry.ByNumber(flags.Number)
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				color.Yellow("%v", err)
				return nil
			}
			return err
		}
		tests = []domain.TestDescriptor{test}
	case flags.HasRange:
		tests = lc.registry.ByRange(flags.RangeStart, flags.RangeEnd)
	default:
		tests = lc.registry.All()
	}

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}
	lc.formatter.PrintTestList(tests)
	return nil
}
