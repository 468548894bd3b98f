package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

func flatPrices(n int, level float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = level
	}
	return prices
}

func risingPrices(n int, start, step float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = start + float64(i)*step
	}
	return prices
}

// On a constant series both means are equal, and equality is flat by the
// strict-inequality rule.
func TestPositions_FlatSeriesStaysFlat(t *testing.T) {
	pos, err := Positions(flatPrices(60, 100), types.WindowPair{Lower: 5, Higher: 20})
	require.NoError(t, err)

	assert.Equal(t, 19, pos.Offset)
	assert.Equal(t, 41, pos.Len())
	for _, v := range pos.Values {
		assert.Equal(t, 0, v)
	}
}

// On a strictly rising series the shorter mean leads the longer one at every
// defined index.
func TestPositions_MonotoneRiseStaysLong(t *testing.T) {
	pos, err := Positions(risingPrices(60, 100, 1), types.WindowPair{Lower: 5, Higher: 20})
	require.NoError(t, err)

	assert.Equal(t, 19, pos.Offset)
	for _, v := range pos.Values {
		assert.Equal(t, 1, v)
	}
}

func TestPositions_SeriesShorterThanHigherWindow(t *testing.T) {
	pos, err := Positions(flatPrices(10, 100), types.WindowPair{Lower: 3, Higher: 20})
	require.NoError(t, err)

	assert.Equal(t, 0, pos.Len())
}

func TestPositions_InvalidPair(t *testing.T) {
	_, err := Positions(flatPrices(50, 100), types.WindowPair{Lower: 20, Higher: 20})
	assert.Error(t, err)

	_, err = Positions(flatPrices(50, 100), types.WindowPair{Lower: 0, Higher: 20})
	assert.Error(t, err)
}

// A rise into a fall produces one golden cross and one death cross, in that
// order.
func TestCrossovers_RoundTrip(t *testing.T) {
	prices := append(risingPrices(30, 100, 2), risingPrices(30, 158, -2)...)

	pos, err := Positions(prices, types.WindowPair{Lower: 3, Higher: 10})
	require.NoError(t, err)

	sig := Crossovers(pos)
	assert.Equal(t, pos.Offset+1, sig.Offset)
	assert.Equal(t, pos.Len()-1, sig.Len())

	var ups, downs int
	lastChange := 0
	for _, v := range sig.Values {
		switch v {
		case 1:
			ups++
			lastChange = 1
		case -1:
			downs++
			lastChange = -1
		}
	}
	assert.GreaterOrEqual(t, ups, 1)
	assert.Equal(t, 1, downs)
	assert.Equal(t, -1, lastChange)
}

func TestCrossovers_TooShortForDiff(t *testing.T) {
	sig := Crossovers(IntSeries{Offset: 7, Values: []int{1}})
	assert.Equal(t, 0, sig.Len())

	sig = Crossovers(IntSeries{Offset: 7})
	assert.Equal(t, 0, sig.Len())
}
