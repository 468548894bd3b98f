package backtest

import (
	"context"
	"runtime"
	"sync"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// candidateJob is one window pair to evaluate, tagged with its position in
// generation order.
type candidateJob struct {
	index int
	pair  types.WindowPair
}

// candidateOutcome carries a finished evaluation back to the collector.
type candidateOutcome struct {
	index  int
	result Result
	err    error
}

// evaluate runs every candidate through a worker pool and merges the
// outcomes back into generation order. Workers share the read-only price
// slice and the stateless engine; only the collector goroutine touches the
// results slice and the observer, so no locking is needed. Cancellation is
// checked between candidates.
func (s *Sweep) evaluate(ctx context.Context, prices []float64, candidates []types.WindowPair) ([]Result, error) {
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan candidateJob)
	outcomes := make(chan candidateOutcome)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				result, err := s.engine.Run(prices, job.pair)
				select {
				case outcomes <- candidateOutcome{index: job.index, result: result, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, pair := range candidates {
			select {
			case jobs <- candidateJob{index: i, pair: pair}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := make([]Result, len(candidates))
	completed := 0
	var firstErr error
	for outcome := range outcomes {
		if outcome.err != nil && firstErr == nil {
			firstErr = outcome.err
		}
		results[outcome.index] = outcome.result
		completed++
		if s.observer != nil {
			s.observer.Evaluated(completed, len(candidates))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
