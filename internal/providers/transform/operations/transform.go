package operations

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/PowerTransform/internal/providers/transform/common"
	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
	"github.com/GriffinCanCode/PowerTransform/pkg/yeojohnson"
)

// PowerOps handles Yeo-Johnson transform evaluation
type PowerOps struct {
	*common.TransformOps
	MaxBatch int
}

// GetTools returns transform tool definitions
func (p *PowerOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "transform.forward",
			Name:        "Forward Transform",
			Description: "Apply the Yeo-Johnson transform to a value",
			Parameters: []types.Parameter{
				{Name: "y", Type: "number", Description: "Value to transform", Required: true},
				{Name: "theta", Type: "number", Description: "Shape parameter", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "transform.inverse",
			Name:        "Inverse Transform",
			Description: "Map a transformed value back to the original scale",
			Parameters: []types.Parameter{
				{Name: "y", Type: "number", Description: "Transformed value", Required: true},
				{Name: "theta", Type: "number", Description: "Shape parameter", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "transform.derivative",
			Name:        "Transform Derivative",
			Description: "Evaluate the first derivative of the Yeo-Johnson transform",
			Parameters: []types.Parameter{
				{Name: "y", Type: "number", Description: "Evaluation point", Required: true},
				{Name: "theta", Type: "number", Description: "Shape parameter", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "transform.forward.batch",
			Name:        "Forward Transform (Batch)",
			Description: "Apply the Yeo-Johnson transform elementwise to an array",
			Parameters: []types.Parameter{
				{Name: "ys", Type: "array", Description: "Values to transform", Required: true},
				{Name: "theta", Type: "number", Description: "Shape parameter", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "transform.inverse.batch",
			Name:        "Inverse Transform (Batch)",
			Description: "Map transformed values back to the original scale elementwise",
			Parameters: []types.Parameter{
				{Name: "ys", Type: "array", Description: "Transformed values", Required: true},
				{Name: "theta", Type: "number", Description: "Shape parameter", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "transform.derivative.batch",
			Name:        "Transform Derivative (Batch)",
			Description: "Evaluate the transform derivative elementwise over an array",
			Parameters: []types.Parameter{
				{Name: "ys", Type: "array", Description: "Evaluation points", Required: true},
				{Name: "theta", Type: "number", Description: "Shape parameter", Required: true},
			},
			Returns: "array",
		},
	}
}

// Forward applies the transform to a single value
func (p *PowerOps) Forward(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	theta, ok := common.GetNumber(params, "theta")
	if !ok {
		return common.Failure("theta parameter required")
	}

	return common.SuccessNumber(yeojohnson.Transform(y, theta))
}

// Inverse maps a transformed value back to the original scale
func (p *PowerOps) Inverse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	theta, ok := common.GetNumber(params, "theta")
	if !ok {
		return common.Failure("theta parameter required")
	}

	return common.SuccessNumber(yeojohnson.Inverse(y, theta))
}

// Derivative evaluates the transform derivative at a single value
func (p *PowerOps) Derivative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	theta, ok := common.GetNumber(params, "theta")
	if !ok {
		return common.Failure("theta parameter required")
	}

	return common.SuccessNumber(yeojohnson.Derivative(y, theta))
}

// ForwardBatch applies the transform elementwise
func (p *PowerOps) ForwardBatch(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ys, ok := common.GetNumbers(params, "ys")
	if !ok || len(ys) == 0 {
		return common.Failure("ys array required")
	}
	if len(ys) > p.MaxBatch {
		return common.Failure(fmt.Sprintf("batch size %d exceeds limit %d", len(ys), p.MaxBatch))
	}
	theta, ok := common.GetNumber(params, "theta")
	if !ok {
		return common.Failure("theta parameter required")
	}

	return common.SuccessNumbers(yeojohnson.TransformSlice(nil, ys, theta))
}

// InverseBatch maps transformed values back elementwise
func (p *PowerOps) InverseBatch(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ys, ok := common.GetNumbers(params, "ys")
	if !ok || len(ys) == 0 {
		return common.Failure("ys array required")
	}
	if len(ys) > p.MaxBatch {
		return common.Failure(fmt.Sprintf("batch size %d exceeds limit %d", len(ys), p.MaxBatch))
	}
	theta, ok := common.GetNumber(params, "theta")
	if !ok {
		return common.Failure("theta parameter required")
	}

	return common.SuccessNumbers(yeojohnson.InverseSlice(nil, ys, theta))
}

// DerivativeBatch evaluates the derivative elementwise
func (p *PowerOps) DerivativeBatch(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ys, ok := common.GetNumbers(params, "ys")
	if !ok || len(ys) == 0 {
		return common.Failure("ys array required")
	}
	if len(ys) > p.MaxBatch {
		return common.Failure(fmt.Sprintf("batch size %d exceeds limit %d", len(ys), p.MaxBatch))
	}
	theta, ok := common.GetNumber(params, "theta")
	if !ok {
		return common.Failure("theta parameter required")
	}

	return common.SuccessNumbers(yeojohnson.DerivativeSlice(nil, ys, theta))
}
