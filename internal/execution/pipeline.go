package execution

import (
	"context"
	"fmt"
	"os"
	"time"

	"ktr/internal/classify"
	"ktr/internal/config"
	"ktr/internal/domain"
)

// Pipeline runs a single testbench through its phases:
// compile → classify compilation log → simulate → classify transcript,
// with a one-shot waveform-capture re-run after a command-line failure.
// Each phase writes or reads exactly one log file; those files and the
// toolchain invocations are the pipeline's only side effects.
type Pipeline struct {
	cfg *config.Config
	tc  Toolchain
}

// NewPipeline creates a Pipeline over the given toolchain.
func NewPipeline(cfg *config.Config, tc Toolchain) *Pipeline {
	return &Pipeline{cfg: cfg, tc: tc}
}

// Run executes the full pipeline for one test. Failures are folded
// into the returned result rather than raised; the only error that is
// allowed to matter beyond this job is a FatalCompileError, which the
// pool inspects via errors.As.
func (p *Pipeline) Run(ctx context.Context, test domain.TestDescriptor, mode domain.RunMode) domain.TestResult {
	start := time.Now()
	job := p.cfg.NewJobContext(test)
	result := domain.TestResult{
		Test:        test,
		Compilation: domain.StatusUnknown,
		Transcript:  domain.StatusUnknown,
	}
	defer func() { result.Duration = time.Since(start) }()

	if mode == domain.ModeViewWaves {
		// Nothing to compile or judge, just reopen the saved waves.
		result.Compilation = domain.StatusSuccess
		if err := p.tc.ViewWaves(ctx, job); err != nil {
			result.Err = fmt.Errorf("view waves: %w", err)
		} else {
			result.Transcript = domain.StatusSuccess
		}
		return result
	}

	procErr := p.tc.Compile(ctx, job)
	result.Compilation = p.classifyLog(job.CompileLog, classify.Compilation)

	if procErr != nil && result.Compilation != domain.StatusError {
		// Nonzero exit without an Error: marker in the log still means
		// the library is unusable.
		result.Compilation = domain.StatusError
	}
	if result.Compilation == domain.StatusError {
		result.Err = &FatalCompileError{Test: test, LogPath: job.CompileLog, Err: procErr}
		return result
	}

	if err := p.tc.Simulate(ctx, job, mode); err != nil {
		result.Err = fmt.Errorf("simulation for %s: %w", test.Name(), err)
		return result
	}

	text, err := os.ReadFile(job.TranscriptLog)
	if err != nil {
		result.Err = fmt.Errorf("read transcript for %s: %w", test.Name(), err)
		return result
	}
	result.Transcript = classify.Transcript(test.Tier, string(text))

	// A command-line failure leaves no waveform behind, so run once
	// more with capture enabled. The re-run only produces the debug
	// artifact; its outcome is not re-classified.
	if result.Transcript == domain.StatusError && mode == domain.ModeCommandLine {
		if err := p.tc.CaptureWaves(ctx, job); err != nil {
			result.Err = fmt.Errorf("waveform capture for %s: %w", test.Name(), err)
		}
	}

	return result
}

// classifyLog reads a log file and applies a classifier to its text.
// An unreadable log classifies as Error: the phase that should have
// produced it did not complete.
func (p *Pipeline) classifyLog(path string, fn func(string) domain.Status) domain.Status {
	text, err := os.ReadFile(path)
	if err != nil {
		return domain.StatusError
	}
	return fn(string(text))
}
