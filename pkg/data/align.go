package data

import (
	"fmt"
	"sort"
	"time"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// ValidateSeries checks the invariants every provider must deliver:
// non-empty history, strictly ascending dates, strictly positive closes.
func ValidateSeries(series types.PriceSeries) error {
	if series.Len() == 0 {
		return engerrors.NewInsufficientData("data", "validate_series",
			fmt.Sprintf("%s: empty series", series.Ticker))
	}
	for i, p := range series.Points {
		if p.Close <= 0 {
			return engerrors.NewValidationError("data", "validate_series",
				fmt.Sprintf("%s: non-positive close %g at %s",
					series.Ticker, p.Close, p.Date.Format("2006-01-02")))
		}
		if i > 0 && !series.Points[i-1].Date.Before(p.Date) {
			return engerrors.NewValidationError("data", "validate_series",
				fmt.Sprintf("%s: dates not strictly ascending at %s",
					series.Ticker, p.Date.Format("2006-01-02")))
		}
	}
	return nil
}

// Align intersects multiple single-asset histories onto their common date
// axis. A date missing for any asset is dropped for all of them, so the
// result is gap-free across assets. Asset order follows the input order.
func Align(series []types.PriceSeries) (types.AlignedPrices, error) {
	if len(series) == 0 {
		return types.AlignedPrices{}, engerrors.NewInsufficientData("data", "align", "no series to align")
	}
	for _, s := range series {
		if err := ValidateSeries(s); err != nil {
			return types.AlignedPrices{}, err
		}
	}

	// Collapse each asset to day resolution first; intraday duplicates keep
	// the last close of the day. Coverage then counts each asset at most
	// once per date, so only dates every asset actually has survive.
	byDate := make([]map[time.Time]float64, len(series))
	tickers := make([]string, len(series))
	for j, s := range series {
		tickers[j] = s.Ticker
		byDate[j] = make(map[time.Time]float64, s.Len())
		for _, p := range s.Points {
			byDate[j][day(p.Date)] = p.Close
		}
	}

	coverage := make(map[time.Time]int)
	for j := range series {
		for date := range byDate[j] {
			coverage[date]++
		}
	}

	var dates []time.Time
	for date, count := range coverage {
		if count == len(series) {
			dates = append(dates, date)
		}
	}
	if len(dates) == 0 {
		return types.AlignedPrices{}, engerrors.NewInsufficientData("data", "align",
			"no dates common to all assets")
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	closes := make([][]float64, len(dates))
	for i, date := range dates {
		row := make([]float64, len(series))
		for j := range series {
			row[j] = byDate[j][date]
		}
		closes[i] = row
	}

	return types.AlignedPrices{Dates: dates, Tickers: tickers, Closes: closes}, nil
}
