package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies engine errors by origin
type ErrorCategory string

const (
	ErrorCategoryValidation   ErrorCategory = "VALIDATION"
	ErrorCategoryData         ErrorCategory = "DATA"
	ErrorCategoryOptimization ErrorCategory = "OPTIMIZATION"
	ErrorCategoryDegenerate   ErrorCategory = "DEGENERATE"
)

// Sentinel kinds, matchable with errors.Is across package boundaries.
var (
	ErrInvalidWeights      = errors.New("invalid weight vector")
	ErrInsufficientData    = errors.New("insufficient data")
	ErrOptimizationFailure = errors.New("optimizer failed to converge")
	ErrDegenerateObjective = errors.New("degenerate objective: zero volatility")
)

// EngineError is a categorized error with component context. Expected numeric
// edge cases (empty defined window, zero trades) never produce one of these;
// they resolve to sentinel values inside the engine.
type EngineError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Kind       error
	Underlying error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap exposes both the sentinel kind and the underlying cause so that
// errors.Is matches either.
func (e *EngineError) Unwrap() []error {
	var chain []error
	if e.Kind != nil {
		chain = append(chain, e.Kind)
	}
	if e.Underlying != nil {
		chain = append(chain, e.Underlying)
	}
	return chain
}

// NewInvalidWeights reports a weight vector that violates bounds or unit sum.
func NewInvalidWeights(component, message string) *EngineError {
	return &EngineError{
		Category:  ErrorCategoryValidation,
		Component: component,
		Operation: "validate_weights",
		Message:   message,
		Kind:      ErrInvalidWeights,
	}
}

// NewInsufficientData reports inputs too short or malformed for the requested
// computation.
func NewInsufficientData(component, operation, message string) *EngineError {
	return &EngineError{
		Category:  ErrorCategoryData,
		Component: component,
		Operation: operation,
		Message:   message,
		Kind:      ErrInsufficientData,
	}
}

// NewOptimizationFailure reports solver non-convergence with its diagnostic.
func NewOptimizationFailure(component, diagnostic string, underlying error) *EngineError {
	return &EngineError{
		Category:   ErrorCategoryOptimization,
		Component:  component,
		Operation:  "optimize",
		Message:    diagnostic,
		Kind:       ErrOptimizationFailure,
		Underlying: underlying,
	}
}

// NewDegenerateObjective reports a Sharpe objective undefined because the
// portfolio volatility is zero.
func NewDegenerateObjective(component, message string) *EngineError {
	return &EngineError{
		Category:  ErrorCategoryDegenerate,
		Component: component,
		Operation: "optimize",
		Message:   message,
		Kind:      ErrDegenerateObjective,
	}
}

// NewValidationError reports malformed input outside the weight path.
func NewValidationError(component, operation, message string) *EngineError {
	return &EngineError{
		Category:  ErrorCategoryValidation,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// Wrap attaches category and component context to an existing error.
func Wrap(err error, category ErrorCategory, component, operation string) *EngineError {
	if err == nil {
		return nil
	}
	return &EngineError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}
