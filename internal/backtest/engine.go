package backtest

import (
	"math"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/signal"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// TradingDaysPerYear converts the annual risk-free rate to a daily one.
const TradingDaysPerYear = 252

// Result holds the outcome of one moving-average crossover backtest.
//
// RiskFreeEarningsPct compounds the daily risk-free rate over the idle-day
// count, not over the actual idle dates; the two coincide only when idle
// days are contiguous.
type Result struct {
	CumulativeReturn    float64
	TradeCount          int
	IdleDays            int
	RiskFreeEarningsPct float64
	ReturnPerTrade      float64
}

// Engine evaluates a long/flat crossover rule on a single value series.
// It holds no per-run state, so one engine may serve concurrent backtests.
type Engine struct {
	riskFreeRate float64 // annual
}

// NewEngine creates a backtest engine with the given annual risk-free rate.
func NewEngine(annualRiskFreeRate float64) *Engine {
	return &Engine{riskFreeRate: annualRiskFreeRate}
}

// Run backtests one window pair over the full value series.
//
// Exposure is applied with a one-day lag: the return realized on day t uses
// the position decided on day t-1, so the rule never looks ahead. The first
// date with a defined position has no prior position and contributes a
// neutral factor of 1. Days out of the market accrue the daily risk-free
// rate instead of the market return.
//
// A series shorter than the higher window has no defined range and returns
// the zero Result; that is a sentinel, not an error.
func (e *Engine) Run(prices []float64, pair types.WindowPair) (Result, error) {
	positions, err := signal.Positions(prices, pair)
	if err != nil {
		return Result{}, err
	}
	if positions.Len() == 0 {
		return Result{}, nil
	}

	dailyRiskFree := e.riskFreeRate / TradingDaysPerYear

	growth := 1.0
	for t := positions.Offset + 1; t < len(prices); t++ {
		held := float64(positions.Values[t-1-positions.Offset])
		marketReturn := prices[t]/prices[t-1] - 1
		dailyReturn := held*marketReturn + (1-held)*dailyRiskFree
		growth *= 1 + dailyReturn
	}
	cumulative := growth - 1

	trades := 0
	for _, change := range signal.Crossovers(positions).Values {
		if change != 0 {
			trades++
		}
	}

	idle := 0
	for _, held := range positions.Values {
		if held == 0 {
			idle++
		}
	}

	perTrade := 0.0
	if trades > 0 {
		perTrade = cumulative / float64(trades)
	}

	return Result{
		CumulativeReturn:    cumulative,
		TradeCount:          trades,
		IdleDays:            idle,
		RiskFreeEarningsPct: math.Pow(1+dailyRiskFree, float64(idle)) - 1,
		ReturnPerTrade:      perTrade,
	}, nil
}
