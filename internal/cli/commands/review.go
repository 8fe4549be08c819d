package commands

import (
	"github.com/spf13/cobra"

	"ktr/internal/config"
	"ktr/internal/storage"
	"ktr/internal/ui"
)

// ReviewCommand handles the review command.
type ReviewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.LogViewer
}

// NewReviewCommand creates a ReviewCommand.
func NewReviewCommand(cfg *config.Config, st storage.Storage, viewer *ui.LogViewer) *ReviewCommand {
	return &ReviewCommand{config: cfg, storage: st, viewer: viewer}
}

// Execute runs the command.
func (rc *ReviewCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := rc.storage.Load()
	if err != nil {
		return err
	}
	return rc.viewer.View(results)
}
