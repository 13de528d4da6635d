package mandel

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the evaluation fan-out per render pass.
const DefaultWorkers = 10

// WorkerPool spreads point evaluation over a fixed number of goroutines.
// The pool keeps nothing running between passes: every Evaluate call fans
// out fresh workers and joins them before returning.
type WorkerPool struct {
	workers int
	eval    Evaluator
}

// NewWorkerPool creates a pool running the package evaluator. Non-positive
// worker counts fall back to DefaultWorkers.
func NewWorkerPool(workers int) *WorkerPool {
	return NewWorkerPoolFunc(workers, Evaluate)
}

// NewWorkerPoolFunc creates a pool running fn instead of the package
// evaluator. fn must be safe for concurrent use.
func NewWorkerPoolFunc(workers int, fn Evaluator) *WorkerPool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if fn == nil {
		fn = Evaluate
	}
	return &WorkerPool{workers: workers, eval: fn}
}

// Workers returns the pool's fan-out.
func (p *WorkerPool) Workers() int { return p.workers }

// Evaluate splits points into one contiguous slice per worker and runs
// the evaluator over the slices in parallel. Survivors are concatenated
// in slice order, which makes the output deterministic for a
// deterministic evaluator.
//
// The slice length is len(points)/workers truncated, so up to workers-1
// trailing points are dropped every pass, and inputs shorter than the
// worker count produce no output at all.
//
// A panicking worker aborts the whole pass: Evaluate returns nil and an
// error wrapping ErrWorkerFailure. No partial results, no retry.
func (p *WorkerPool) Evaluate(points []VirtualPoint) ([]VirtualPoint, error) {
	sliceLen := len(points) / p.workers
	results := make([][]VirtualPoint, p.workers)

	var g errgroup.Group
	for i := 0; i < p.workers; i++ {
		i := i
		slice := points[sliceLen*i : sliceLen*(i+1)]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailure, i, r)
				}
			}()
			kept := make([]VirtualPoint, 0, len(slice))
			for _, pt := range slice {
				if res, ok := p.eval(pt); ok {
					kept = append(kept, res)
				}
			}
			results[i] = kept
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]VirtualPoint, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}
