package execution

import (
	"context"
	"fmt"

	"ktr/internal/domain"
)

// Toolchain is the boundary to the external simulator. sim.Runner is
// the real implementation; tests substitute a fake that writes log
// files directly.
type Toolchain interface {
	Compile(ctx context.Context, job domain.JobContext) error
	Simulate(ctx context.Context, job domain.JobContext, mode domain.RunMode) error
	CaptureWaves(ctx context.Context, job domain.JobContext) error
	ViewWaves(ctx context.Context, job domain.JobContext) error
}

// FatalCompileError aborts the whole batch, not just the failing job:
// once the design under test is known broken there is nothing left
// worth simulating. The pool broadcasts cancellation instead of
// exiting the process so in-flight jobs can drain cleanly.
type FatalCompileError struct {
	Test    domain.TestDescriptor
	LogPath string
	Err     error
}

func (e *FatalCompileError) Error() string {
	return fmt.Sprintf("compilation failed for %s, see %s", e.Test.Name(), e.LogPath)
}

func (e *FatalCompileError) Unwrap() error { return e.Err }
