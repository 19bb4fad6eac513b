package diagnostics

import (
	"context"
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/PowerTransform/internal/providers/transform/common"
	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
	"github.com/GriffinCanCode/PowerTransform/pkg/yeojohnson"
)

// DiagnosticOps handles distribution diagnostics around the transform
type DiagnosticOps struct {
	*common.TransformOps
	MaxBatch int
}

// GetTools returns diagnostic tool definitions
func (d *DiagnosticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "transform.skewness",
			Name:        "Skewness",
			Description: "Sample skewness of a dataset",
			Parameters: []types.Parameter{
				{Name: "ys", Type: "array", Description: "Data values (at least 3)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "transform.moments",
			Name:        "Moments",
			Description: "Mean, variance, skewness, and excess kurtosis of a dataset",
			Parameters: []types.Parameter{
				{Name: "ys", Type: "array", Description: "Data values (at least 4)", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "transform.compare",
			Name:        "Compare Skewness",
			Description: "Sample skewness before and after the Yeo-Johnson transform",
			Parameters: []types.Parameter{
				{Name: "ys", Type: "array", Description: "Data values (at least 3)", Required: true},
				{Name: "theta", Type: "number", Description: "Shape parameter", Required: true},
			},
			Returns: "object",
		},
	}
}

// Skewness computes sample skewness using gonum
func (d *DiagnosticOps) Skewness(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ys, ok := common.GetNumbers(params, "ys")
	if !ok || len(ys) < 3 {
		return common.Failure("ys array with at least 3 elements required")
	}
	if len(ys) > d.MaxBatch {
		return common.Failure(fmt.Sprintf("batch size %d exceeds limit %d", len(ys), d.MaxBatch))
	}

	if err := common.ValidateNumbers(ys, "ys"); err != nil {
		return common.Failure(err.Error())
	}

	skew := stat.Skew(ys, nil)
	if gomath.IsNaN(skew) {
		return common.Failure("skewness undefined for constant data")
	}

	return common.Success(map[string]interface{}{"result": skew})
}

// Moments computes the first four sample moments using gonum
func (d *DiagnosticOps) Moments(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ys, ok := common.GetNumbers(params, "ys")
	if !ok || len(ys) < 4 {
		return common.Failure("ys array with at least 4 elements required")
	}
	if len(ys) > d.MaxBatch {
		return common.Failure(fmt.Sprintf("batch size %d exceeds limit %d", len(ys), d.MaxBatch))
	}

	if err := common.ValidateNumbers(ys, "ys"); err != nil {
		return common.Failure(err.Error())
	}

	mean := stat.Mean(ys, nil)
	variance := stat.Variance(ys, nil)
	stdev := gomath.Sqrt(variance)
	skew := stat.Skew(ys, nil)
	kurtosis := stat.ExKurtosis(ys, nil)

	if gomath.IsNaN(skew) || gomath.IsNaN(kurtosis) {
		return common.Failure("moments undefined for constant data")
	}

	return common.Success(map[string]interface{}{
		"mean":        mean,
		"variance":    variance,
		"stdev":       stdev,
		"skewness":    skew,
		"ex_kurtosis": kurtosis,
		"count":       len(ys),
	})
}

// Compare computes sample skewness before and after the transform
func (d *DiagnosticOps) Compare(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ys, ok := common.GetNumbers(params, "ys")
	if !ok || len(ys) < 3 {
		return common.Failure("ys array with at least 3 elements required")
	}
	if len(ys) > d.MaxBatch {
		return common.Failure(fmt.Sprintf("batch size %d exceeds limit %d", len(ys), d.MaxBatch))
	}
	theta, ok := common.GetNumber(params, "theta")
	if !ok {
		return common.Failure("theta parameter required")
	}

	if err := common.ValidateNumbers(ys, "ys"); err != nil {
		return common.Failure(err.Error())
	}

	before := stat.Skew(ys, nil)
	if gomath.IsNaN(before) {
		return common.Failure("skewness undefined for constant data")
	}

	transformed := yeojohnson.TransformSlice(nil, ys, theta)
	if err := common.ValidateNumbers(transformed, "transformed"); err != nil {
		return common.Failure(err.Error())
	}

	after := stat.Skew(transformed, nil)
	if gomath.IsNaN(after) {
		return common.Failure("skewness undefined for transformed data")
	}

	return common.Success(map[string]interface{}{
		"skewness_before": before,
		"skewness_after":  after,
		"improved":        gomath.Abs(after) < gomath.Abs(before),
	})
}
