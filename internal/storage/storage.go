package storage

import (
	"time"

	"ktr/internal/config"
	"ktr/internal/domain"
)

// Storage persists and loads run results (e.g. for the review viewer).
type Storage interface {
	Save(results []domain.TestResult, duration time.Duration, workers int, mode domain.RunMode) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output back (e.g. after the viewer
	// toggles resolved flags).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the output directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's
// results path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
