package transform

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/PowerTransform/internal/providers/transform/common"
	"github.com/GriffinCanCode/PowerTransform/internal/providers/transform/diagnostics"
	"github.com/GriffinCanCode/PowerTransform/internal/providers/transform/operations"
	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
)

// Provider implements the Yeo-Johnson transform service
type Provider struct {
	power  *operations.PowerOps
	guards *operations.GuardOps
	diag   *diagnostics.DiagnosticOps
}

// NewProvider creates a modular transform provider. maxBatch bounds every
// array parameter; values <= 0 select the default limit.
func NewProvider(maxBatch int) *Provider {
	if maxBatch <= 0 {
		maxBatch = common.DefaultMaxBatch
	}
	ops := &common.TransformOps{}

	return &Provider{
		power:  &operations.PowerOps{TransformOps: ops, MaxBatch: maxBatch},
		guards: &operations.GuardOps{TransformOps: ops},
		diag:   &diagnostics.DiagnosticOps{TransformOps: ops, MaxBatch: maxBatch},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.power.GetTools()...)
	tools = append(tools, p.guards.GetTools()...)
	tools = append(tools, p.diag.GetTools()...)

	return types.Service{
		ID:          "transform",
		Name:        "Transform Service",
		Description: "Yeo-Johnson power transforms (forward, inverse, derivative, guarded primitives, diagnostics)",
		Category:    types.CategoryTransform,
		Capabilities: []string{
			"forward",
			"inverse",
			"derivative",
			"guards",
			"diagnostics",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Transform evaluation
	case "transform.forward":
		return p.power.Forward(ctx, params, appCtx)
	case "transform.inverse":
		return p.power.Inverse(ctx, params, appCtx)
	case "transform.derivative":
		return p.power.Derivative(ctx, params, appCtx)
	case "transform.forward.batch":
		return p.power.ForwardBatch(ctx, params, appCtx)
	case "transform.inverse.batch":
		return p.power.InverseBatch(ctx, params, appCtx)
	case "transform.derivative.batch":
		return p.power.DerivativeBatch(ctx, params, appCtx)

	// Guarded primitives
	case "transform.slog":
		return p.guards.SLog(ctx, params, appCtx)
	case "transform.spower":
		return p.guards.SPower(ctx, params, appCtx)

	// Diagnostics
	case "transform.skewness":
		return p.diag.Skewness(ctx, params, appCtx)
	case "transform.moments":
		return p.diag.Moments(ctx, params, appCtx)
	case "transform.compare":
		return p.diag.Compare(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
