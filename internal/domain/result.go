package domain

import "time"

// Status is the verdict of classifying one log file.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusWarning
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// TestResult is the outcome of running one testbench through the full
// compile-simulate-classify pipeline.
type TestResult struct {
	Test        TestDescriptor
	Compilation Status        // Verdict on the compilation log
	Transcript  Status        // Verdict on the simulation transcript
	Err         error         // Process-level failure, if any
	Duration    time.Duration // Wall time for the whole pipeline
}

// Passed reports whether both phases came back clean. A compilation
// warning still counts as a pass.
func (r TestResult) Passed() bool {
	return r.Err == nil &&
		r.Compilation != StatusError &&
		r.Transcript == StatusSuccess
}

// TestRecord is the persisted form of a non-passing test, kept so the
// review viewer can find the logs later.
type TestRecord struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Tier          string `json:"tier"`
	Status        string `json:"status"`
	CompileLog    string `json:"compile_log"`
	TranscriptLog string `json:"transcript_log"`
	Error         string `json:"error,omitempty"`
	Resolved      bool   `json:"resolved,omitempty"` // Marked as dealt with in the viewer
}

// RunMeta contains metadata about one batch run.
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	UnknownTests    int     `json:"unknown_tests"`
	CompileWarnings int     `json:"compile_warnings"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Mode            string  `json:"mode"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted output of a run.
type RunOutput struct {
	Meta    RunMeta      `json:"meta"`
	Details []TestRecord `json:"details"`
}
