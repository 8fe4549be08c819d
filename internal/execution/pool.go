package execution

import (
	"context"
	"errors"
	"sync"
	"time"

	"ktr/internal/config"
	"ktr/internal/domain"
	"ktr/internal/ui"
)

// Pool fans the pipeline out over a bounded set of workers. The bound
// exists because every job shells out to a heavyweight simulator
// process; unbounded fan-out would exhaust the machine.
//
// Per-job failures are isolated: a failing simulation or an Unknown
// classification never stops sibling jobs. The one exception is a
// FatalCompileError, which cancels the shared context so queued jobs
// are dropped and in-flight ones drain, then surfaces as the single
// aggregated error from Execute.
type Pool struct {
	cfg      *config.Config
	pipeline *Pipeline
	progress *ui.ProgressBar
}

// NewPool creates a Pool.
func NewPool(cfg *config.Config, pipeline *Pipeline) *Pool {
	return &Pool{cfg: cfg, pipeline: pipeline}
}

// SetProgress attaches a progress bar updated as jobs complete.
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute runs every test through the pipeline and blocks until all
// submitted jobs finish. Completion order between jobs is not defined;
// results arrive in whatever order the workers produce them.
func (p *Pool) Execute(ctx context.Context, tests []domain.TestDescriptor, mode domain.RunMode) ([]domain.TestResult, time.Duration, error) {
	if len(tests) == 0 {
		return nil, 0, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan domain.TestDescriptor, len(tests))
	results := make(chan domain.TestResult, len(tests))
	for _, t := range tests {
		queue <- t
	}
	close(queue)

	workerCount := p.cfg.Workers
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(tests) {
		workerCount = len(tests)
	}

	var mu sync.Mutex
	var completed, passed, failed int
	var fatal *FatalCompileError
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for test := range queue {
				select {
				case <-ctx.Done():
					// Batch aborted; drop queued jobs without running.
					continue
				default:
				}

				result := p.pipeline.Run(ctx, test, mode)
				results <- result

				mu.Lock()
				completed++
				if result.Passed() {
					passed++
				} else {
					failed++
				}
				if p.progress != nil {
					p.progress.Update(completed, passed, failed)
				}
				var fce *FatalCompileError
				if errors.As(result.Err, &fce) && fatal == nil {
					fatal = fce
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var all []domain.TestResult
	for result := range results {
		all = append(all, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}

	if fatal != nil {
		return all, time.Since(startTime), fatal
	}
	return all, time.Since(startTime), nil
}
