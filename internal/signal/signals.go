package signal

import (
	"fmt"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

// IntSeries is an integer-valued series restricted to its defined range,
// with the same Offset convention as Series.
type IntSeries struct {
	Offset int
	Values []int
}

// Len returns the number of defined points.
func (s IntSeries) Len() int {
	return len(s.Values)
}

// Positions derives the long/flat state for a window pair: 1 when the lower
// mean is strictly above the higher mean, 0 otherwise (equality is flat).
// Both means are undefined before index Higher-1, so positions are defined
// from there; a series shorter than Higher yields an empty result.
func Positions(prices []float64, pair types.WindowPair) (IntSeries, error) {
	if !pair.Valid() {
		return IntSeries{}, engerrors.NewValidationError("signal", "positions",
			fmt.Sprintf("window pair must satisfy 0 < lower < higher, got (%d, %d)", pair.Lower, pair.Higher))
	}

	lower, err := RollingMean(prices, pair.Lower)
	if err != nil {
		return IntSeries{}, err
	}
	higher, err := RollingMean(prices, pair.Higher)
	if err != nil {
		return IntSeries{}, err
	}
	if higher.Len() == 0 {
		return IntSeries{Offset: len(prices)}, nil
	}

	// The higher window dominates the warmup.
	positions := make([]int, higher.Len())
	for i := range positions {
		t := higher.Offset + i
		if lower.Values[t-lower.Offset] > higher.Values[i] {
			positions[i] = 1
		}
	}

	return IntSeries{Offset: higher.Offset, Values: positions}, nil
}

// Crossovers diffs consecutive positions: +1 marks a golden cross (flat to
// long), -1 a death cross (long to flat), 0 no change. The first defined
// position has no prior to diff against, so the result starts one index
// later.
func Crossovers(positions IntSeries) IntSeries {
	if positions.Len() < 2 {
		return IntSeries{Offset: positions.Offset + positions.Len()}
	}

	values := make([]int, positions.Len()-1)
	for i := 1; i < positions.Len(); i++ {
		values[i-1] = positions.Values[i] - positions.Values[i-1]
	}

	return IntSeries{Offset: positions.Offset + 1, Values: values}
}
