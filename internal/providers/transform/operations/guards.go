package operations

import (
	"context"

	"github.com/GriffinCanCode/PowerTransform/internal/providers/transform/common"
	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
	"github.com/GriffinCanCode/PowerTransform/pkg/yeojohnson"
)

// GuardOps exposes the domain-guarded log and power primitives
type GuardOps struct {
	*common.TransformOps
}

// GetTools returns guard tool definitions
func (g *GuardOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "transform.slog",
			Name:        "Safe Logarithm",
			Description: "Natural log with non-positive inputs substituted by 1",
			Parameters: []types.Parameter{
				{Name: "y", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "transform.spower",
			Name:        "Safe Power",
			Description: "Power with non-positive bases substituted by 1",
			Parameters: []types.Parameter{
				{Name: "y", Type: "number", Description: "Base value", Required: true},
				{Name: "pw", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
	}
}

// SLog computes the guarded natural logarithm
func (g *GuardOps) SLog(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}

	return common.SuccessNumber(yeojohnson.SafeLog(y))
}

// SPower computes the guarded power
func (g *GuardOps) SPower(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	pw, ok := common.GetNumber(params, "pw")
	if !ok {
		return common.Failure("pw parameter required")
	}

	return common.SuccessNumber(yeojohnson.SafePow(y, pw))
}
