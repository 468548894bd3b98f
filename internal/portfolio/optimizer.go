package portfolio

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// Optimizer solves for the weight vector maximizing the annualized Sharpe
// ratio under full-investment, no-short-selling constraints.
//
// The solver is a local gradient descent from the equal-weight start; the
// result is a local optimum, not guaranteed global.
type Optimizer struct {
	log zerolog.Logger
}

// NewOptimizer creates a max-Sharpe optimizer.
func NewOptimizer(log zerolog.Logger) *Optimizer {
	return &Optimizer{log: log.With().Str("component", "optimizer").Logger()}
}

// MaxSharpe finds weights w in [0,1]^n with sum(w) = 1 maximizing
//
//	(252 * mean(w . dailyReturns)) / (sqrt(252) * sqrt(w' Cov w))
//
// The constraints are enforced by construction: the solver works on an
// unconstrained parameter x and maps it through w_i = x_i^2 / sum(x^2), so
// every candidate lies on the simplex. Minimization of the negative ratio
// runs under BFGS with a finite-difference gradient.
//
// Zero portfolio volatility surfaces as ErrDegenerateObjective; solver
// non-convergence as ErrOptimizationFailure. Neither returns weights.
func (o *Optimizer) MaxSharpe(tickers []string, meanDaily []float64, cov *mat.SymDense) (types.WeightVector, error) {
	n := len(tickers)
	if n == 0 || len(meanDaily) != n || cov.SymmetricDim() != n {
		return nil, engerrors.NewValidationError("optimizer", "max_sharpe",
			fmt.Sprintf("inconsistent inputs: %d tickers, %d means, %dx%d covariance",
				n, len(meanDaily), cov.SymmetricDim(), cov.SymmetricDim()))
	}
	if n == 1 {
		return types.WeightVector{tickers[0]: 1}, nil
	}

	// The ratio must be defined at the starting point, otherwise the whole
	// problem is degenerate (e.g. constant price series).
	start := make([]float64, n)
	for i := range start {
		start[i] = 1
	}
	if _, vol := AnnualizedMetrics(toWeights(start), meanDaily, cov); vol == 0 {
		return nil, engerrors.NewDegenerateObjective("optimizer",
			"portfolio volatility is zero at the equal-weight start")
	}

	negSharpe := func(x []float64) float64 {
		w := toWeights(x)
		if w == nil {
			return math.Inf(1)
		}
		ret, vol := AnnualizedMetrics(w, meanDaily, cov)
		if vol == 0 || math.IsNaN(vol) {
			return math.Inf(1)
		}
		return -ret / vol
	}

	problem := optimize.Problem{
		Func: negSharpe,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, negSharpe, x, nil)
		},
	}

	result, err := optimize.Minimize(problem, start, nil, &optimize.BFGS{})
	if err != nil {
		return nil, engerrors.NewOptimizationFailure("optimizer",
			"BFGS minimization of the negative Sharpe ratio failed", err)
	}
	if result.Status == optimize.Failure || result.Status == optimize.NotTerminated {
		return nil, engerrors.NewOptimizationFailure("optimizer",
			fmt.Sprintf("solver stopped without converging: %v", result.Status), nil)
	}

	solved := toWeights(result.Location.X)
	if solved == nil {
		return nil, engerrors.NewOptimizationFailure("optimizer",
			"solver collapsed to the zero parameter vector", nil)
	}
	ret, vol := AnnualizedMetrics(solved, meanDaily, cov)
	if vol == 0 {
		return nil, engerrors.NewDegenerateObjective("optimizer",
			"solution has zero volatility, Sharpe ratio undefined")
	}

	o.log.Debug().
		Str("status", result.Status.String()).
		Float64("annual_return", ret).
		Float64("annual_volatility", vol).
		Float64("sharpe", ret/vol).
		Msg("max-Sharpe solve converged")

	weights := make(types.WeightVector, n)
	for i, ticker := range tickers {
		weights[ticker] = solved[i]
	}
	return weights, nil
}

// toWeights maps a free parameter vector onto the simplex; nil when the
// parameters have collapsed to zero.
func toWeights(x []float64) []float64 {
	w := make([]float64, len(x))
	total := 0.0
	for i, v := range x {
		w[i] = v * v
		total += w[i]
	}
	if total == 0 {
		return nil
	}
	floats.Scale(1/total, w)
	return w
}
