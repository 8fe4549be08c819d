package domain

import "fmt"

// Tier is the test category. It decides which transcript classification
// rule applies and which waveform signals are traced.
type Tier int

const (
	TierSimple Tier = iota
	TierMove
	TierLogic
)

// String returns the tier name as used for the tests/ subdirectory.
func (t Tier) String() string {
	switch t {
	case TierSimple:
		return "simple"
	case TierMove:
		return "move"
	case TierLogic:
		return "logic"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// TestDescriptor identifies a single testbench to run.
type TestDescriptor struct {
	ID   int    // Testbench number (e.g. 3 for KnightsTour_tb_3)
	Tier Tier   // Category derived from the ID
	Path string // Full path to the testbench source file
}

// Name returns the testbench name without the file extension.
func (d TestDescriptor) Name() string {
	return fmt.Sprintf("KnightsTour_tb_%d", d.ID)
}

// JobContext holds the isolated filesystem state of one running job.
// Every path is absolute; the work library persists across runs of the
// same test ID as a compilation cache. A JobContext is owned by exactly
// one in-flight job and never shared.
type JobContext struct {
	Test           TestDescriptor
	WorkLib        string // Private compilation library name (TEST_<id>)
	WorkRoot       string // Directory containing all work libraries
	CompileLog     string // Compilation log path
	TranscriptLog  string // Simulation transcript path
	WaveFile       string // Waveform artifact (.wlf)
	WaveFormatFile string // Waveform window format (.do)
}
