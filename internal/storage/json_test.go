package storage

import (
	"errors"
	"testing"
	"time"

	"ktr/internal/config"
	"ktr/internal/domain"
)

func TestBuildOutput(t *testing.T) {
	cfg := config.New()
	cfg.RootDir = "/proj"

	desc := func(id int, tier domain.Tier) domain.TestDescriptor {
		return domain.TestDescriptor{ID: id, Tier: tier}
	}

	results := []domain.TestResult{
		{Test: desc(2, domain.TierMove), Compilation: domain.StatusSuccess, Transcript: domain.StatusSuccess},
		{Test: desc(3, domain.TierMove), Compilation: domain.StatusWarning, Transcript: domain.StatusSuccess},
		{Test: desc(4, domain.TierMove), Compilation: domain.StatusSuccess, Transcript: domain.StatusError},
		{Test: desc(5, domain.TierMove), Compilation: domain.StatusSuccess, Transcript: domain.StatusUnknown},
		{Test: desc(6, domain.TierMove), Compilation: domain.StatusSuccess, Transcript: domain.StatusUnknown, Err: errors.New("simulator crashed")},
	}

	output := BuildOutput(cfg, results, 90*time.Second, 4, domain.ModeCommandLine)
	meta := output.Meta

	if meta.TotalTests != 5 {
		t.Errorf("expected 5 total, got %d", meta.TotalTests)
	}
	if meta.PassedTests != 2 {
		t.Errorf("expected 2 passed, got %d", meta.PassedTests)
	}
	if meta.FailedTests != 2 {
		t.Errorf("expected 2 failed, got %d", meta.FailedTests)
	}
	if meta.UnknownTests != 1 {
		t.Errorf("expected 1 unknown, got %d", meta.UnknownTests)
	}
	if meta.CompileWarnings != 1 {
		t.Errorf("expected 1 warning, got %d", meta.CompileWarnings)
	}
	if meta.Workers != 4 || meta.Mode != "command-line" {
		t.Errorf("wrong meta: %+v", meta)
	}

	// Only the three non-passing tests end up in the details.
	if len(output.Details) != 3 {
		t.Fatalf("expected 3 records, got %d", len(output.Details))
	}
	for _, rec := range output.Details {
		if rec.ID == 2 || rec.ID == 3 {
			t.Errorf("passing test %d should not be recorded", rec.ID)
		}
		if rec.TranscriptLog == "" || rec.CompileLog == "" {
			t.Errorf("record %d must carry its log paths", rec.ID)
		}
	}
}

func TestJSONStorage_RoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.RootDir = t.TempDir()
	st := NewJSONStorage(cfg)

	results := []domain.TestResult{
		{Test: domain.TestDescriptor{ID: 16, Tier: domain.TierLogic}, Compilation: domain.StatusSuccess, Transcript: domain.StatusError},
	}
	if err := st.Save(results, 5*time.Second, 2, domain.ModeCommandLine); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Meta.FailedTests != 1 || len(loaded.Details) != 1 {
		t.Errorf("unexpected round trip: %+v", loaded)
	}
	if loaded.Details[0].Name != "KnightsTour_tb_16" {
		t.Errorf("wrong record name: %s", loaded.Details[0].Name)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.RootDir = t.TempDir()
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected an error when no run has been saved")
	}
}
