package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"ktr/internal/domain"
)

// Config holds all configuration for the harness.
type Config struct {
	// RootDir is the absolute project root everything else hangs off.
	RootDir string

	// Workers is the upper bound on concurrently running pipelines.
	Workers int

	// OutputJSONFile is the results file name under the output dir.
	OutputJSONFile string

	// Flags holds the parsed command-line flags.
	Flags Flags
}

// Flags holds command-line flags shared across commands.
type Flags struct {
	Number     int // Single testbench number, -1 when unset
	RangeStart int
	RangeEnd   int
	HasRange   bool
	Mode       int
	Workers    int
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		RootDir:        DefaultRoot,
		Workers:        DefaultWorkers,
		OutputJSONFile: DefaultOutputJSONFile,
		Flags:          Flags{Number: -1},
	}
}

// Load creates a config, applies .env overrides and then flags. The
// .env file is optional; missing is fine and process env still applies.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	_ = godotenv.Load(".env")

	if root := os.Getenv("KTR_ROOT"); root != "" {
		cfg.RootDir = root
	}
	if w := os.Getenv("KTR_WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid KTR_WORKERS value %q", w)
		}
		cfg.Workers = n
	}
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}

	abs, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root dir: %w", err)
	}
	cfg.RootDir = abs

	return cfg, nil
}

// DesignDir returns the design sources directory.
func (c *Config) DesignDir() string { return filepath.Join(c.RootDir, DesignDirName) }

// TestDir returns the directory holding the tier subdirectories.
func (c *Config) TestDir() string { return filepath.Join(c.RootDir, TestDirName) }

// OutputDir returns the root output directory.
func (c *Config) OutputDir() string { return filepath.Join(c.RootDir, OutputDirName) }

// CompilationDir returns where compilation logs go, keyed by test id.
func (c *Config) CompilationDir() string {
	return filepath.Join(c.OutputDir(), LogsDirName, CompilationDirName)
}

// TranscriptDir returns where simulation transcripts go, keyed by name.
func (c *Config) TranscriptDir() string {
	return filepath.Join(c.OutputDir(), LogsDirName, TranscriptDirName)
}

// WavesDir returns where waveform artifacts go.
func (c *Config) WavesDir() string { return filepath.Join(c.OutputDir(), WavesDirName) }

// WorkRoot returns the directory containing all per-test work libraries.
func (c *Config) WorkRoot() string { return filepath.Join(c.RootDir, WorkDirName) }

// CellLibraryPath returns the pre-built cell library referenced by the
// post-synthesis testbench (test 0).
func (c *Config) CellLibraryPath() string { return filepath.Join(c.TestDir(), CellLibraryName) }

// OutputJSONPath returns the absolute path of the persisted results
// file, so run and review always agree on it regardless of cwd.
func (c *Config) OutputJSONPath() string {
	return filepath.Join(c.OutputDir(), c.OutputJSONFile)
}

// EnsureDirs creates the output and work directories if missing.
func (c *Config) EnsureDirs() error {
	dirs := []string{
		c.CompilationDir(),
		c.TranscriptDir(),
		c.WavesDir(),
		c.WorkRoot(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// NewJobContext builds the isolated per-job filesystem state for a
// test. All paths are absolute; nothing here touches the process-wide
// working directory.
func (c *Config) NewJobContext(t domain.TestDescriptor) domain.JobContext {
	name := t.Name()
	return domain.JobContext{
		Test:           t,
		WorkLib:        fmt.Sprintf("TEST_%d", t.ID),
		WorkRoot:       c.WorkRoot(),
		CompileLog:     filepath.Join(c.CompilationDir(), fmt.Sprintf("compilation_%d.log", t.ID)),
		TranscriptLog:  filepath.Join(c.TranscriptDir(), name+".log"),
		WaveFile:       filepath.Join(c.WavesDir(), name+".wlf"),
		WaveFormatFile: filepath.Join(c.WavesDir(), name+".do"),
	}
}
