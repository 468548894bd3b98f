package signal

import (
	"fmt"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
)

// Series is a rolling statistic restricted to its defined range. Values[i]
// belongs to index Offset+i of the source series; nothing is defined before
// Offset. An empty Values slice means the window never filled.
type Series struct {
	Offset int
	Values []float64
}

// Len returns the number of defined points.
func (s Series) Len() int {
	return len(s.Values)
}

// At returns the value at source index t and whether it is defined.
func (s Series) At(t int) (float64, bool) {
	if t < s.Offset || t >= s.Offset+len(s.Values) {
		return 0, false
	}
	return s.Values[t-s.Offset], true
}

// RollingMean computes the trailing arithmetic mean over the given window.
// The result is defined from source index window-1 onward; a window longer
// than the series yields an empty Series. The sum is maintained
// incrementally, one add and one subtract per step.
func RollingMean(prices []float64, window int) (Series, error) {
	if window < 1 {
		return Series{}, engerrors.NewValidationError("signal", "rolling_mean",
			fmt.Sprintf("window must be positive, got %d", window))
	}
	if len(prices) < window {
		return Series{Offset: len(prices)}, nil
	}

	values := make([]float64, 0, len(prices)-window+1)
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			values = append(values, sum/float64(window))
		}
	}

	return Series{Offset: window - 1, Values: values}, nil
}
