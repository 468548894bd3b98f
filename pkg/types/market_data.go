package types

import "time"

// ClosePoint is a single daily closing-price observation.
type ClosePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries is the daily close history for one asset, strictly ascending
// by date with no duplicate dates.
type PriceSeries struct {
	Ticker string
	Points []ClosePoint
}

// Len returns the number of observations in the series.
func (s PriceSeries) Len() int {
	return len(s.Points)
}

// Closes returns the close values in date order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// AlignedPrices holds several assets on a common date axis. Dates missing
// for any asset have already been dropped for all of them.
type AlignedPrices struct {
	Dates   []time.Time
	Tickers []string
	// Closes[i][j] is the close of Tickers[j] on Dates[i].
	Closes [][]float64
}

// Len returns the number of common dates.
func (a AlignedPrices) Len() int {
	return len(a.Dates)
}

// NumAssets returns the number of aligned assets.
func (a AlignedPrices) NumAssets() int {
	return len(a.Tickers)
}

// Column returns the close series of asset j in date order.
func (a AlignedPrices) Column(j int) []float64 {
	col := make([]float64, len(a.Closes))
	for i := range a.Closes {
		col[i] = a.Closes[i][j]
	}
	return col
}

// WindowPair is a moving-average window combination.
type WindowPair struct {
	Lower  int
	Higher int
}

// Valid reports whether the pair satisfies 0 < Lower < Higher.
func (p WindowPair) Valid() bool {
	return p.Lower > 0 && p.Lower < p.Higher
}

// WeightVector maps ticker to portfolio weight. A valid vector has every
// weight in [0,1] and the weights summing to one.
type WeightVector map[string]float64
