package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineError_SentinelMatching(t *testing.T) {
	err := NewInvalidWeights("portfolio", "weights sum to 1.2")

	assert.True(t, errors.Is(err, ErrInvalidWeights))
	assert.False(t, errors.Is(err, ErrInsufficientData))
}

func TestEngineError_UnderlyingMatching(t *testing.T) {
	cause := errors.New("line search failed")
	err := NewOptimizationFailure("optimizer", "BFGS did not converge", cause)

	assert.True(t, errors.Is(err, ErrOptimizationFailure))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "OPTIMIZATION")
	assert.Contains(t, err.Error(), "line search failed")
}

func TestEngineError_WrappedThroughFmt(t *testing.T) {
	inner := NewDegenerateObjective("optimizer", "zero covariance")
	outer := fmt.Errorf("solving max-Sharpe weights: %w", inner)

	assert.True(t, errors.Is(outer, ErrDegenerateObjective))

	var engineErr *EngineError
	assert.True(t, errors.As(outer, &engineErr))
	assert.Equal(t, ErrorCategoryDegenerate, engineErr.Category)
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorCategoryData, "data", "load"))
}
