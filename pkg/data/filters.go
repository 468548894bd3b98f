package data

import (
	"time"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// DefaultDataFilter implements filtering operations on close series.
type DefaultDataFilter struct{}

// NewDefaultDataFilter creates a new default data filter
func NewDefaultDataFilter() *DefaultDataFilter {
	return &DefaultDataFilter{}
}

// FilterByDateRange restricts a series to [start, end], both inclusive at
// day resolution. A zero start or end leaves that side unbounded.
func (f *DefaultDataFilter) FilterByDateRange(series types.PriceSeries, start, end time.Time) types.PriceSeries {
	if series.Len() == 0 || (start.IsZero() && end.IsZero()) {
		return series
	}

	var filtered []types.ClosePoint
	for _, p := range series.Points {
		date := day(p.Date)
		if !start.IsZero() && date.Before(day(start)) {
			continue
		}
		if !end.IsZero() && date.After(day(end)) {
			continue
		}
		filtered = append(filtered, p)
	}

	return types.PriceSeries{Ticker: series.Ticker, Points: filtered}
}
