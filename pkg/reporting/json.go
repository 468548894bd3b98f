package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// DefaultJSONReporter writes the best configuration as pretty JSON.
type DefaultJSONReporter struct{}

// NewDefaultJSONReporter creates a new JSON reporter
func NewDefaultJSONReporter() *DefaultJSONReporter {
	return &DefaultJSONReporter{}
}

type bestConfigJSON struct {
	Tickers          []string           `json:"tickers"`
	Weights          types.WeightVector `json:"weights"`
	AnnualizedReturn float64            `json:"annualized_return"`
	AnnualizedVol    float64            `json:"annualized_volatility"`
	SharpeRatio      float64            `json:"sharpe_ratio"`
	RiskFreeRate     float64            `json:"risk_free_rate"`
	StepSize         int                `json:"step_size"`
	BestLower        int                `json:"best_lower_window"`
	BestHigher       int                `json:"best_higher_window"`
	CumulativeReturn float64            `json:"cumulative_return"`
	TradeCount       int                `json:"trade_count"`
	BuyHoldReturn    float64            `json:"buy_hold_return"`
}

// WriteBestConfigJSON writes the winning configuration so a later run can
// start from it.
func (r *DefaultJSONReporter) WriteBestConfigJSON(report *SweepReport, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	best := bestConfigJSON{
		Tickers:          report.Tickers,
		Weights:          report.Weights,
		AnnualizedReturn: report.AnnualizedReturn,
		AnnualizedVol:    report.AnnualizedVol,
		SharpeRatio:      report.SharpeRatio,
		RiskFreeRate:     report.RiskFreeRate,
		StepSize:         report.StepSize,
		BestLower:        report.Best.Pair.Lower,
		BestHigher:       report.Best.Pair.Higher,
		CumulativeReturn: report.Best.Result.CumulativeReturn,
		TradeCount:       report.Best.Result.TradeCount,
		BuyHoldReturn:    report.BuyHoldReturn,
	}

	data, err := json.MarshalIndent(best, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
