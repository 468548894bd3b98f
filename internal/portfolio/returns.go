package portfolio

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// TradingDaysPerYear is the annualization factor for daily observations.
const TradingDaysPerYear = 252

// DailyReturns builds the day-by-asset simple-returns matrix from aligned
// closes. Row t holds close[t+1]/close[t] - 1 for every asset.
func DailyReturns(prices types.AlignedPrices) (*mat.Dense, error) {
	days := prices.Len()
	assets := prices.NumAssets()
	if assets == 0 {
		return nil, engerrors.NewInsufficientData("portfolio", "daily_returns", "no assets")
	}
	if days < 2 {
		return nil, engerrors.NewInsufficientData("portfolio", "daily_returns",
			fmt.Sprintf("need at least 2 aligned dates, got %d", days))
	}

	returns := mat.NewDense(days-1, assets, nil)
	for t := 1; t < days; t++ {
		for j := 0; j < assets; j++ {
			returns.Set(t-1, j, prices.Closes[t][j]/prices.Closes[t-1][j]-1)
		}
	}
	return returns, nil
}

// MeanReturns computes the per-asset mean of daily returns.
func MeanReturns(returns mat.Matrix) []float64 {
	rows, cols := returns.Dims()
	means := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, returns)
		means[j] = stat.Mean(col, nil)
	}
	return means
}

// Covariance computes the sample covariance matrix of daily returns.
func Covariance(returns mat.Matrix) *mat.SymDense {
	_, cols := returns.Dims()
	cov := mat.NewSymDense(cols, nil)
	stat.CovarianceMatrix(cov, returns, nil)
	return cov
}

// AnnualizedMetrics returns the annualized portfolio return and volatility
// for the given weights over daily statistics.
func AnnualizedMetrics(weights, meanDaily []float64, cov *mat.SymDense) (ret, vol float64) {
	w := mat.NewVecDense(len(weights), weights)

	for i, m := range meanDaily {
		ret += weights[i] * m
	}
	ret *= TradingDaysPerYear

	variance := mat.Inner(w, cov, w)
	if variance < 0 {
		// Tiny negative values fall out of floating-point cancellation on a
		// PSD matrix.
		variance = 0
	}
	vol = math.Sqrt(variance) * math.Sqrt(TradingDaysPerYear)
	return ret, vol
}
