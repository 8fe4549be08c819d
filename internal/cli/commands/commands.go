package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ktr/internal/cli"
	"ktr/internal/config"
	"ktr/internal/execution"
	"ktr/internal/history"
	"ktr/internal/registry"
	"ktr/internal/sim"
	"ktr/internal/storage"
	"ktr/internal/ui"
)

// Commands holds all CLI commands.
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Review *ReviewCommand
	Waves  *WavesCommand
}

// NewCommands creates all commands with dependencies.
func NewCommands(cfg *config.Config) (*Commands, error) {
	reg, err := registry.New(cfg.TestDir(), registry.DefaultTiers)
	if err != nil {
		return nil, fmt.Errorf("build test registry: %w", err)
	}

	toolchain := sim.NewRunner(cfg)
	pipeline := execution.NewPipeline(cfg, toolchain)
	pool := execution.NewPool(cfg, pipeline)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	recorder := history.NewRecorder(cfg)
	viewer := ui.NewLogViewer(cfg, jsonStorage)

	run := NewRunCommand(cfg, reg, pool, jsonStorage, formatter, recorder)
	return &Commands{
		Run:    run,
		List:   NewListCommand(cfg, reg, formatter),
		Review: NewReviewCommand(cfg, jsonStorage, viewer),
		Waves:  NewWavesCommand(run),
	}, nil
}

// Register registers all commands with cobra.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		if n := len(flags.Range); n != 0 && n != 2 {
			return fmt.Errorf("--range expects exactly two values, e.g. -r 2,10")
		}
		cfg.Flags = flags.ToConfigFlags()
		if flags.Workers > 0 {
			cfg.Workers = flags.Workers
		}
		if cfg.Flags.Number >= 0 && cfg.Flags.HasRange {
			return fmt.Errorf("--number and --range are mutually exclusive")
		}
		return nil
	}

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Compile and simulate testbenches in parallel",
		Long:    "Select testbenches by number, range or all, then compile, simulate and classify them over a bounded worker pool.",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().IntVarP(&flags.Number, "number", "n", -1, "Testbench number to run (e.g. 1 for KnightsTour_tb_1)")
	runCmd.Flags().IntSliceVarP(&flags.Range, "range", "r", nil, "Inclusive test range to run (e.g. -r 2,10)")
	runCmd.Flags().IntVarP(&flags.Mode, "mode", "m", 0, "Mode: 0=command-line, 1=save waves, 2=GUI, 3=view saved waves")
	runCmd.Flags().IntVarP(&flags.Workers, "processors", "p", 0, "Number of parallel simulations (default 18)")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the testbenches a selection resolves to",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().IntVarP(&flags.Number, "number", "n", -1, "Testbench number to list")
	listCmd.Flags().IntSliceVarP(&flags.Range, "range", "r", nil, "Inclusive test range to list")
	rootCmd.AddCommand(listCmd)

	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Browse failed tests from the last run",
		Long:  "Open an interactive viewer over the failed and unknown tests of the last run, with their transcript logs.",
		RunE:  c.Review.Execute,
	}
	rootCmd.AddCommand(reviewCmd)

	wavesCmd := &cobra.Command{
		Use:     "waves",
		Short:   "View previously saved waveforms",
		RunE:    c.Waves.Execute,
		PreRunE: applyFlags,
	}
	wavesCmd.Flags().IntVarP(&flags.Number, "number", "n", -1, "Testbench number to view")
	wavesCmd.Flags().IntSliceVarP(&flags.Range, "range", "r", nil, "Inclusive test range to view")
	wavesCmd.Flags().IntVarP(&flags.Workers, "processors", "p", 0, "Number of parallel viewer sessions")
	rootCmd.AddCommand(wavesCmd)
}
