// Package sim wraps the external simulation toolchain. The toolchain
// is opaque to the harness: it consumes file paths plus a DSL command
// string and produces a log file and an exit status, nothing else is
// assumed about it.
package sim

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"ktr/internal/config"
	"ktr/internal/domain"
)

// Runner invokes the simulation toolchain for one job at a time.
type Runner struct {
	cfg *config.Config
}

// NewRunner creates a Runner.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// run executes a toolchain command as a blocking child process, with
// stdout and stderr appended to logPath. dir is the directory the
// simulator resolves library names against; it is set per invocation,
// never by mutating the process working directory.
func (r *Runner) run(ctx context.Context, command, dir, logPath string) error {
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("create log %s: %w", logPath, err)
	}
	defer logFile.Close()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("toolchain exited: %w", err)
	}
	return nil
}

// Compile builds the design plus the job's testbench into the job's
// private work library, creating the library on first use.
func (r *Runner) Compile(ctx context.Context, job domain.JobContext) error {
	libExists := false
	if info, err := os.Stat(filepath.Join(job.WorkRoot, job.WorkLib)); err == nil && info.IsDir() {
		libExists = true
	}
	return r.run(ctx, r.compileCommand(job, libExists), job.WorkRoot, job.CompileLog)
}

// Simulate runs the compiled testbench in the given mode and writes
// the transcript log.
func (r *Runner) Simulate(ctx context.Context, job domain.JobContext, mode domain.RunMode) error {
	switch mode {
	case domain.ModeCommandLine:
		return r.run(ctx, r.headlessCommand(job), job.WorkRoot, job.TranscriptLog)
	case domain.ModeSaveWaves:
		return r.run(ctx, r.waveCommand(job, true), job.WorkRoot, job.TranscriptLog)
	case domain.ModeGUI:
		return r.run(ctx, r.waveCommand(job, false), job.WorkRoot, job.TranscriptLog)
	default:
		return fmt.Errorf("mode %s does not simulate", mode)
	}
}

// CaptureWaves re-runs a failed simulation once with waveform capture
// enabled. The re-run exists only to leave a debug artifact behind;
// its transcript is not re-classified.
func (r *Runner) CaptureWaves(ctx context.Context, job domain.JobContext) error {
	return r.run(ctx, r.waveCommand(job, true), job.WorkRoot, job.TranscriptLog)
}

// ViewWaves opens the saved waveform for a test. The transcript of the
// viewer session goes next to the waves it came from.
func (r *Runner) ViewWaves(ctx context.Context, job domain.JobContext) error {
	viewLog := filepath.Join(r.cfg.WavesDir(), fmt.Sprintf("view_%d.log", job.Test.ID))
	return r.run(ctx, r.viewCommand(job), r.cfg.WavesDir(), viewLog)
}
