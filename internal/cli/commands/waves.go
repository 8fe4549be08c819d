package commands

import (
	"github.com/spf13/cobra"

	"ktr/internal/domain"
)

// WavesCommand reopens previously saved waveforms. It is a shorthand
// for run --mode 3 over the same selection flags.
type WavesCommand struct {
	run *RunCommand
}

// NewWavesCommand creates a WavesCommand.
func NewWavesCommand(run *RunCommand) *WavesCommand {
	return &WavesCommand{run: run}
}

// Execute runs the command.
func (wc *WavesCommand) Execute(cmd *cobra.Command, args []string) error {
	return wc.run.run(cmd.Context(), domain.ModeViewWaves)
}
