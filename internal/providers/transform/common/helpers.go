package common

import (
	"fmt"

	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
)

// DefaultMaxBatch bounds the size of array parameters accepted by batch
// tools when no explicit limit is configured.
const DefaultMaxBatch = 100000

// TransformOps provides common transform helpers
type TransformOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// SuccessNumber wraps a scalar numeric result, failing when the value is
// not finite so it can round-trip through JSON.
func SuccessNumber(x float64) (*types.Result, error) {
	if err := ValidateNumber(x, "result"); err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": x})
}

// SuccessNumbers wraps an array result, failing when any value is not
// finite so it can round-trip through JSON.
func SuccessNumbers(xs []float64) (*types.Result, error) {
	if err := ValidateNumbers(xs, "result"); err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"result": xs,
		"count":  len(xs),
	})
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		switch num := v.(type) {
		case float64:
			numbers = append(numbers, num)
		case int:
			numbers = append(numbers, float64(num))
		case int64:
			numbers = append(numbers, float64(num))
		case float32:
			numbers = append(numbers, float64(num))
		default:
			return nil, false
		}
	}
	return numbers, true
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if x != x { // NaN check
		return fmt.Errorf("%s is NaN", name)
	}
	if x > 1e308 || x < -1e308 { // Infinity check
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}
