package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engerrors "github.com/NeelakandanNC/Modern-Portfolio-Theory/internal/errors"
	"github.com/NeelakandanNC/Modern-Portfolio-Theory/pkg/types"
)

func TestValidate_AcceptsUnitSum(t *testing.T) {
	weights := types.WeightVector{"AAA": 0.6, "BBB": 0.4}
	assert.NoError(t, Validate(weights, []string{"AAA", "BBB"}))
}

func TestValidate_RejectsBadSum(t *testing.T) {
	weights := types.WeightVector{"AAA": 0.6, "BBB": 0.6}

	err := Validate(weights, []string{"AAA", "BBB"})
	assert.True(t, errors.Is(err, engerrors.ErrInvalidWeights))
}

func TestValidate_RejectsOutOfBounds(t *testing.T) {
	weights := types.WeightVector{"AAA": 1.5, "BBB": -0.5}

	err := Validate(weights, []string{"AAA", "BBB"})
	assert.True(t, errors.Is(err, engerrors.ErrInvalidWeights))
}

func TestValidate_RejectsMissingTicker(t *testing.T) {
	weights := types.WeightVector{"AAA": 1.0}

	err := Validate(weights, []string{"AAA", "BBB"})
	assert.True(t, errors.Is(err, engerrors.ErrInvalidWeights))
}

func TestEqual_SumsToOne(t *testing.T) {
	weights := Equal([]string{"AAA", "BBB", "CCC"})

	sum := 0.0
	for _, w := range weights {
		sum += w
		assert.GreaterOrEqual(t, w, 0.0)
		assert.LessOrEqual(t, w, 1.0)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestCombinedValue_WeightedSum(t *testing.T) {
	prices := alignedFixture([]string{"AAA", "BBB"}, [][]float64{
		{100, 200},
		{110, 190},
	})
	weights := types.WeightVector{"AAA": 0.25, "BBB": 0.75}

	values, err := CombinedValue(prices, weights)
	require.NoError(t, err)

	assert.InDelta(t, 0.25*100+0.75*200, values[0], 1e-12)
	assert.InDelta(t, 0.25*110+0.75*190, values[1], 1e-12)
}

func TestCombinedValue_RejectsInvalidWeights(t *testing.T) {
	prices := alignedFixture([]string{"AAA", "BBB"}, [][]float64{{100, 200}})

	_, err := CombinedValue(prices, types.WeightVector{"AAA": 0.9, "BBB": 0.9})
	assert.True(t, errors.Is(err, engerrors.ErrInvalidWeights))
}
