package data

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

func d(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func seriesOf(ticker string, points ...types.ClosePoint) types.PriceSeries {
	return types.PriceSeries{Ticker: ticker, Points: points}
}

func TestValidateSeries(t *testing.T) {
	t.Run("valid series passes", func(t *testing.T) {
		s := seriesOf("AAA",
			types.ClosePoint{Date: d(1), Close: 100},
			types.ClosePoint{Date: d(2), Close: 101},
		)
		assert.NoError(t, ValidateSeries(s))
	})

	t.Run("empty series rejected", func(t *testing.T) {
		err := ValidateSeries(seriesOf("AAA"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, engerrors.ErrInsufficientData))
	})

	t.Run("non-positive close rejected", func(t *testing.T) {
		s := seriesOf("AAA",
			types.ClosePoint{Date: d(1), Close: 100},
			types.ClosePoint{Date: d(2), Close: 0},
		)
		err := ValidateSeries(s)
		require.Error(t, err)

		var engErr *engerrors.EngineError
		require.True(t, errors.As(err, &engErr))
		assert.Equal(t, engerrors.ErrorCategoryValidation, engErr.Category)
	})

	t.Run("non-ascending dates rejected", func(t *testing.T) {
		s := seriesOf("AAA",
			types.ClosePoint{Date: d(2), Close: 100},
			types.ClosePoint{Date: d(1), Close: 101},
		)
		assert.Error(t, ValidateSeries(s))
	})

	t.Run("duplicate dates rejected", func(t *testing.T) {
		s := seriesOf("AAA",
			types.ClosePoint{Date: d(1), Close: 100},
			types.ClosePoint{Date: d(1), Close: 101},
		)
		assert.Error(t, ValidateSeries(s))
	})
}

func TestAlignDropsUncommonDates(t *testing.T) {
	a := seriesOf("AAA",
		types.ClosePoint{Date: d(1), Close: 10},
		types.ClosePoint{Date: d(2), Close: 11},
		types.ClosePoint{Date: d(3), Close: 12},
	)
	// BBB is missing day 2
	b := seriesOf("BBB",
		types.ClosePoint{Date: d(1), Close: 20},
		types.ClosePoint{Date: d(3), Close: 22},
	)

	aligned, err := Align([]types.PriceSeries{a, b})
	require.NoError(t, err)

	assert.Equal(t, []string{"AAA", "BBB"}, aligned.Tickers)
	require.Equal(t, 2, aligned.Len())
	assert.Equal(t, []time.Time{d(1), d(3)}, aligned.Dates)
	assert.Equal(t, []float64{10, 12}, aligned.Column(0))
	assert.Equal(t, []float64{20, 22}, aligned.Column(1))
}

func TestAlignPreservesAssetOrder(t *testing.T) {
	a := seriesOf("ZZZ", types.ClosePoint{Date: d(1), Close: 1})
	b := seriesOf("AAA", types.ClosePoint{Date: d(1), Close: 2})

	aligned, err := Align([]types.PriceSeries{a, b})
	require.NoError(t, err)
	assert.Equal(t, []string{"ZZZ", "AAA"}, aligned.Tickers)
	assert.Equal(t, []float64{1, 2}, aligned.Closes[0])
}

func TestAlignNormalizesIntradayTimestamps(t *testing.T) {
	a := seriesOf("AAA",
		types.ClosePoint{Date: d(1).Add(15 * time.Hour), Close: 10},
	)
	b := seriesOf("BBB",
		types.ClosePoint{Date: d(1).Add(3 * time.Minute), Close: 20},
	)

	aligned, err := Align([]types.PriceSeries{a, b})
	require.NoError(t, err)
	require.Equal(t, 1, aligned.Len())
	assert.Equal(t, d(1), aligned.Dates[0])
}

func TestAlignDropsDaysCoveredByOneAssetOnly(t *testing.T) {
	// Two intraday observations on the same day for AAA must not stand in
	// for BBB's missing day.
	a := seriesOf("AAA",
		types.ClosePoint{Date: d(1), Close: 10},
		types.ClosePoint{Date: d(2).Add(9 * time.Hour), Close: 11},
		types.ClosePoint{Date: d(2).Add(15 * time.Hour), Close: 12},
		types.ClosePoint{Date: d(3), Close: 13},
	)
	b := seriesOf("BBB",
		types.ClosePoint{Date: d(1), Close: 20},
		types.ClosePoint{Date: d(3), Close: 22},
	)

	aligned, err := Align([]types.PriceSeries{a, b})
	require.NoError(t, err)

	require.Equal(t, 2, aligned.Len())
	assert.Equal(t, []time.Time{d(1), d(3)}, aligned.Dates)
	assert.Equal(t, []float64{10, 13}, aligned.Column(0))
	assert.Equal(t, []float64{20, 22}, aligned.Column(1))
	for i := range aligned.Closes {
		for j, close := range aligned.Closes[i] {
			assert.Greater(t, close, 0.0, "row %d asset %d", i, j)
		}
	}
}

func TestAlignKeepsLastIntradayCloseOfDay(t *testing.T) {
	a := seriesOf("AAA",
		types.ClosePoint{Date: d(1).Add(9 * time.Hour), Close: 10},
		types.ClosePoint{Date: d(1).Add(16 * time.Hour), Close: 11},
	)
	b := seriesOf("BBB", types.ClosePoint{Date: d(1), Close: 20})

	aligned, err := Align([]types.PriceSeries{a, b})
	require.NoError(t, err)
	require.Equal(t, 1, aligned.Len())
	assert.Equal(t, []float64{11, 20}, aligned.Closes[0])
}

func TestAlignErrors(t *testing.T) {
	t.Run("no series", func(t *testing.T) {
		_, err := Align(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, engerrors.ErrInsufficientData))
	})

	t.Run("no common dates", func(t *testing.T) {
		a := seriesOf("AAA", types.ClosePoint{Date: d(1), Close: 10})
		b := seriesOf("BBB", types.ClosePoint{Date: d(2), Close: 20})
		_, err := Align([]types.PriceSeries{a, b})
		require.Error(t, err)
		assert.True(t, errors.Is(err, engerrors.ErrInsufficientData))
	})

	t.Run("invalid member series", func(t *testing.T) {
		a := seriesOf("AAA", types.ClosePoint{Date: d(1), Close: 10})
		bad := seriesOf("BBB", types.ClosePoint{Date: d(1), Close: -5})
		_, err := Align([]types.PriceSeries{a, bad})
		assert.Error(t, err)
	})
}
