package backtest

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// Window generation limits: the lower window scans up to 50 days, the
// higher up to 200.
const (
	MaxLowerWindow  = 50
	MaxHigherWindow = 200
)

// ProgressObserver receives advisory "evaluated k of n" notifications during
// a sweep. Implementations must not assume any particular calling
// goroutine; the sweep invokes them from its collector only.
type ProgressObserver interface {
	Evaluated(completed, total int)
}

// ObserverFunc adapts a function to the ProgressObserver interface.
type ObserverFunc func(completed, total int)

// Evaluated implements ProgressObserver.
func (f ObserverFunc) Evaluated(completed, total int) {
	f(completed, total)
}

// GenerateCandidates enumerates window pairs with lower in {step, 2*step,
// ..., <=50} and higher in {step, 2*step, ..., <=200}, keeping exactly the
// pairs with lower < higher. Invalid pairs never exist, so they are never
// scored.
func GenerateCandidates(step int) ([]types.WindowPair, error) {
	if step < 1 {
		return nil, engerrors.NewValidationError("sweep", "generate_candidates",
			fmt.Sprintf("step size must be positive, got %d", step))
	}

	var pairs []types.WindowPair
	for lower := step; lower <= MaxLowerWindow; lower += step {
		for higher := step; higher <= MaxHigherWindow; higher += step {
			if lower < higher {
				pairs = append(pairs, types.WindowPair{Lower: lower, Higher: higher})
			}
		}
	}
	return pairs, nil
}

// CandidateResult pairs a window combination with its backtest outcome.
type CandidateResult struct {
	Pair   types.WindowPair
	Result Result
}

// SweepResult is the full outcome of a parameter sweep.
type SweepResult struct {
	// Ranked holds every candidate sorted descending by cumulative return;
	// equal returns keep generation order.
	Ranked []CandidateResult
	// Best is the highest-return candidate; ties resolve to the first one
	// generated.
	Best CandidateResult
	// BuyHoldReturn is the buy-and-hold baseline over the full series,
	// independent of any candidate.
	BuyHoldReturn float64
}

// Sweep drives the backtest engine across the candidate grid.
type Sweep struct {
	engine   *Engine
	workers  int
	observer ProgressObserver
	log      zerolog.Logger
}

// SweepOptions configures a sweep.
type SweepOptions struct {
	// Workers is the number of concurrent evaluators; zero or negative
	// means one per CPU.
	Workers int
	// Observer, when set, receives progress notifications.
	Observer ProgressObserver
	// Log receives sweep lifecycle events; the zero value is silent.
	Log zerolog.Logger
}

// NewSweep creates a sweep over the given engine.
func NewSweep(engine *Engine, opts SweepOptions) *Sweep {
	return &Sweep{
		engine:   engine,
		workers:  opts.Workers,
		observer: opts.Observer,
		log:      opts.Log,
	}
}

// Run evaluates every candidate window pair on the value series and ranks
// the outcomes. Candidates are evaluated independently; cancellation is
// honored between candidates, never mid-backtest. The ranked output is
// identical regardless of worker count.
func (s *Sweep) Run(ctx context.Context, prices []float64, step int) (*SweepResult, error) {
	if len(prices) < 2 {
		return nil, engerrors.NewInsufficientData("sweep", "run",
			fmt.Sprintf("need at least 2 prices for a baseline, got %d", len(prices)))
	}

	candidates, err := GenerateCandidates(step)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, engerrors.NewValidationError("sweep", "run",
			fmt.Sprintf("step size %d generates no window pairs", step))
	}
	s.log.Info().
		Int("candidates", len(candidates)).
		Int("series_length", len(prices)).
		Msg("starting window sweep")

	results, err := s.evaluate(ctx, prices, candidates)
	if err != nil {
		return nil, err
	}

	ranked := make([]CandidateResult, len(candidates))
	for i, pair := range candidates {
		ranked[i] = CandidateResult{Pair: pair, Result: results[i]}
	}
	best := bestCandidate(ranked)

	// Stable sort keeps generation order among equal returns.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.CumulativeReturn > ranked[j].Result.CumulativeReturn
	})

	return &SweepResult{
		Ranked:        ranked,
		Best:          best,
		BuyHoldReturn: prices[len(prices)-1]/prices[0] - 1,
	}, nil
}

// bestCandidate picks the maximum cumulative return with a strict
// comparison, so the first candidate in generation order wins ties.
func bestCandidate(inGenerationOrder []CandidateResult) CandidateResult {
	best := inGenerationOrder[0]
	for _, c := range inGenerationOrder[1:] {
		if c.Result.CumulativeReturn > best.Result.CumulativeReturn {
			best = c
		}
	}
	return best
}
