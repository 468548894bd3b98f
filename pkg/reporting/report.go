package reporting

import (
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/backtest"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// SweepReport bundles everything a run produces: the optimized allocation,
// the window sweep ranking, and the buy-and-hold baseline.
type SweepReport struct {
	Tickers          []string
	Weights          types.WeightVector
	AnnualizedReturn float64
	AnnualizedVol    float64
	SharpeRatio      float64
	RiskFreeRate     float64
	InitialCapital   float64
	StepSize         int

	Best          backtest.CandidateResult
	Ranked        []backtest.CandidateResult
	BuyHoldReturn float64
}

// FinalCapital is the initial capital grown by the best candidate's
// cumulative return.
func (r *SweepReport) FinalCapital() float64 {
	return r.InitialCapital * (1 + r.Best.Result.CumulativeReturn)
}

// BuyHoldFinalCapital is the initial capital grown by the buy-and-hold
// baseline return.
func (r *SweepReport) BuyHoldFinalCapital() float64 {
	return r.InitialCapital * (1 + r.BuyHoldReturn)
}

// ProfitOverBuyHold is the dollar gap between the best strategy and the
// baseline. Negative when buy-and-hold wins.
func (r *SweepReport) ProfitOverBuyHold() float64 {
	return r.FinalCapital() - r.BuyHoldFinalCapital()
}
