// Package common provides shared helpers for the transform provider modules.
//
// The transform provider is organized into specialized modules:
//   - operations: Yeo-Johnson forward, inverse, and derivative evaluation
//   - guards: Domain-guarded log and power primitives (slog, spower)
//   - diagnostics: Skewness and moment statistics around the transform
//
// Built on gonum.org/v1/gonum for the statistical pieces:
//   - IEEE 754 floating-point accuracy
//   - Sample statistics matching R and NumPy conventions
//
// Features:
//   - Typed parameter extraction with numeric coercion
//   - Input validation for non-finite values
//   - Consistent JSON result format across all tools
//   - Scalar and batch tool variants
//
// Example Usage:
//
//	power := &operations.PowerOps{TransformOps: &common.TransformOps{}}
//	result, err := power.Forward(ctx, params, appCtx)
package common
