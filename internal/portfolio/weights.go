package portfolio

import (
	"fmt"
	"math"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// weightSumTolerance bounds the accepted deviation of an externally supplied
// weight vector from unit sum.
const weightSumTolerance = 1e-6

// Validate checks an externally supplied weight vector against the given
// asset set: every ticker present, every weight in [0,1], weights summing to
// one within tolerance. Nothing downstream runs on weights that fail here.
func Validate(weights types.WeightVector, tickers []string) error {
	if len(tickers) == 0 {
		return engerrors.NewInvalidWeights("portfolio", "no assets to weight")
	}

	sum := 0.0
	for _, ticker := range tickers {
		w, ok := weights[ticker]
		if !ok {
			return engerrors.NewInvalidWeights("portfolio",
				fmt.Sprintf("missing weight for %s", ticker))
		}
		if w < -weightSumTolerance || w > 1+weightSumTolerance {
			return engerrors.NewInvalidWeights("portfolio",
				fmt.Sprintf("weight for %s out of [0,1]: %g", ticker, w))
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return engerrors.NewInvalidWeights("portfolio",
			fmt.Sprintf("weights sum to %g, want 1", sum))
	}
	return nil
}

// Equal returns the equal-weight vector over the given tickers. It is the
// solver's starting point and the documented fallback when optimization
// fails or degenerates.
func Equal(tickers []string) types.WeightVector {
	weights := make(types.WeightVector, len(tickers))
	for _, ticker := range tickers {
		weights[ticker] = 1 / float64(len(tickers))
	}
	return weights
}

// CombinedValue collapses aligned prices into the single portfolio value
// series the crossover backtest runs on: the weighted sum of closes per
// date. The weight vector is validated first.
func CombinedValue(prices types.AlignedPrices, weights types.WeightVector) ([]float64, error) {
	if err := Validate(weights, prices.Tickers); err != nil {
		return nil, err
	}

	values := make([]float64, prices.Len())
	for i, row := range prices.Closes {
		v := 0.0
		for j, ticker := range prices.Tickers {
			v += row[j] * weights[ticker]
		}
		values[i] = v
	}
	return values, nil
}
