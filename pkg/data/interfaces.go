package data

import (
	"context"
	"time"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// Provider loads daily close history for single assets. Implementations
// must return series that pass ValidateSeries: strictly ascending dates,
// strictly positive closes.
type Provider interface {
	// LoadSeries loads the full available daily history for one ticker.
	LoadSeries(ctx context.Context, ticker string) (types.PriceSeries, error)

	// GetName returns the name of the data provider.
	GetName() string
}

// CSVColumnMapping defines the column positions for close-series CSV files.
type CSVColumnMapping struct {
	DateCol    int
	CloseCol   int
	MinColumns int
	DateFormat string
}

// DefaultCSVFormat matches two-column date,close exports.
var DefaultCSVFormat = CSVColumnMapping{
	DateCol:    0,
	CloseCol:   1,
	MinColumns: 2,
	DateFormat: "2006-01-02",
}

// day truncates a timestamp to its calendar date in UTC, the resolution the
// alignment works at.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
