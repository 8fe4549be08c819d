package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ktr/internal/config"
	"ktr/internal/domain"
	"ktr/internal/execution"
	"ktr/internal/history"
	"ktr/internal/registry"
	"ktr/internal/storage"
	"ktr/internal/ui"
)

// RunCommand handles the run command.
type RunCommand struct {
	config    *config.Config
	registry  *registry.Registry
	pool      *execution.Pool
	storage   storage.Storage
	formatter *ui.Formatter
	recorder  *history.Recorder
}

// NewRunCommand creates a RunCommand.
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	pool *execution.Pool,
	st storage.Storage,
	formatter *ui.Formatter,
	recorder *history.Recorder,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  reg,
		pool:      pool,
		storage:   st,
		formatter: formatter,
		recorder:  recorder,
	}
}

// Execute runs the command.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	mode, err := domain.ParseRunMode(rc.config.Flags.Mode)
	if err != nil {
		return err
	}
	return rc.run(cmd.Context(), mode)
}

func (rc *RunCommand) run(ctx context.Context, mode domain.RunMode) error {
	if err := rc.config.EnsureDirs(); err != nil {
		return err
	}

	tests, err := rc.selectTests()
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			// A missing test number is reported, not fatal.
			color.Yellow("%v", err)
			return nil
		}
		return err
	}
	if len(tests) == 0 {
		color.Yellow("No tests selected")
		return nil
	}

	switch mode {
	case domain.ModeViewWaves:
		color.Cyan("Viewing saved waveforms for %d test(s)...", len(tests))
	default:
		color.Cyan("Running %d test(s) in %s mode...", len(tests), mode)
	}

	// The progress bar only makes sense for a batch; a single test
	// reports through its status line alone.
	if len(tests) > 1 && mode != domain.ModeGUI {
		rc.pool.SetProgress(ui.NewProgressBar(len(tests)))
	}

	results, duration, execErr := rc.pool.Execute(ctx, tests, mode)

	// Every finished job gets exactly one status line, whatever order
	// the workers completed them in.
	if mode == domain.ModeViewWaves {
		for _, result := range results {
			rc.formatter.PrintViewResult(result)
		}
		return execErr
	}
	for _, result := range results {
		rc.formatter.PrintResult(result)
	}

	output := storage.BuildOutput(rc.config, results, duration, rc.config.Workers, mode)
	if err := rc.storage.SaveOutput(output); err != nil {
		return fmt.Errorf("save test results: %w", err)
	}

	if rc.recorder.Enabled() {
		if err := rc.recorder.Record(output.Meta); err != nil {
			color.Yellow("Could not record run history: %v", err)
		}
	}

	rc.formatter.PrintSummary(output)

	// A fatal compilation failure is the only per-job error allowed to
	// escape the batch; it decides the process exit status.
	return execErr
}

// selectTests resolves the flag selection into descriptors: a single
// number, an inclusive range, or everything.
func (rc *RunCommand) selectTests() ([]domain.TestDescriptor, error) {
	flags := rc.config.Flags
	switch {
	case flags.Number >= 0:
		test, err := rc.registry.ByNumber(flags.Number)
		if err != nil {
			return nil, err
		}
		return []domain.TestDescriptor{test}, nil
	case flags.HasRange:
		return rc.registry.ByRange(flags.RangeStart, flags.RangeEnd), nil
	default:
		return rc.registry.All(), nil
	}
}
