package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ktr/internal/config"
	"ktr/internal/domain"
)

// BuildOutput folds per-test results into the persisted run output.
// Details keeps only the tests worth revisiting: failures, unknowns
// and process-level errors, with their log paths.
func BuildOutput(cfg *config.Config, results []domain.TestResult, duration time.Duration, workers int, mode domain.RunMode) *domain.RunOutput {
	var passed, failed, unknown, warnings int
	var details []domain.TestRecord

	for _, r := range results {
		if r.Compilation == domain.StatusWarning {
			warnings++
		}
		switch {
		case r.Passed():
			passed++
			continue
		case r.Transcript == domain.StatusUnknown && r.Compilation != domain.StatusError && r.Err == nil:
			unknown++
		default:
			failed++
		}

		job := cfg.NewJobContext(r.Test)
		rec := domain.TestRecord{
			ID:            r.Test.ID,
			Name:          r.Test.Name(),
			Tier:          r.Test.Tier.String(),
			Status:        recordStatus(r),
			CompileLog:    job.CompileLog,
			TranscriptLog: job.TranscriptLog,
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		details = append(details, rec)
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:      len(results),
			PassedTests:     passed,
			FailedTests:     failed,
			UnknownTests:    unknown,
			CompileWarnings: warnings,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Mode:            mode.String(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
}

func recordStatus(r domain.TestResult) string {
	if r.Compilation == domain.StatusError {
		return "compile-" + r.Compilation.String()
	}
	if r.Err != nil && r.Transcript == domain.StatusUnknown {
		return "process-error"
	}
	return r.Transcript.String()
}

// Save writes run results to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.TestResult, duration time.Duration, workers int, mode domain.RunMode) error {
	return s.SaveOutput(BuildOutput(s.cfg, results, duration, workers, mode))
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.OutputJSONPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	data, err := os.ReadFile(s.cfg.OutputJSONPath())
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
