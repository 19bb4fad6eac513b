// Package yeojohnson implements the Yeo-Johnson power-transformation family.
//
// The Yeo-Johnson transform maps real-valued data through a piecewise power
// function controlled by a single shape parameter theta. It is the standard
// tool for reducing skewness in continuous data and, unlike Box-Cox, is
// well-defined for zero and negative inputs.
//
// Entry points:
//   - Transform: forward transform
//   - Inverse: exact inverse of Transform
//   - Derivative: first derivative of Transform with respect to y
//   - SafeLog, SafePow: domain-guarded log and power helpers
//
// Numerical behavior:
//   - theta == 0 and theta == 2 select dedicated closed forms by exact
//     float equality; nearby values take the general power formula
//   - IEEE 754 special values (NaN, ±Inf) propagate through ordinary
//     floating-point arithmetic; no function panics or returns an error
//   - SafeLog and SafePow substitute a neutral base of 1 for non-positive
//     inputs, so the branch arithmetic never produces a domain error
//
// All functions are pure and stateless; concurrent calls need no
// synchronization. Slice variants (TransformSlice, InverseSlice,
// DerivativeSlice) apply the scalar functions elementwise.
//
// Example Usage:
//
//	z := yeojohnson.Transform(5, 0.2)
//	y := yeojohnson.Inverse(z, 0.2) // y ≈ 5
//	s := yeojohnson.Derivative(5, 0.2)
package yeojohnson
