package yeojohnson

import (
	gomath "math"
)

// SafeLog returns the natural logarithm of y for y > 0.
// Non-positive inputs are substituted with 1 before taking the log,
// so the result is 0 rather than NaN or -Inf.
func SafeLog(y float64) float64 {
	if y > 0 {
		return gomath.Log(y)
	}
	return 0
}

// SafePow raises y to the power pw for y > 0.
// Non-positive bases are substituted with 1 before exponentiation,
// so the result is 1 for any pw, fractional and negative included.
func SafePow(y, pw float64) float64 {
	if y > 0 {
		return gomath.Pow(y, pw)
	}
	return 1
}

// Transform applies the Yeo-Johnson transform with shape parameter theta.
//
// The input range splits at zero and theta selects one of three regimes.
// theta == 0 and theta == 2 are exact float comparisons; any other value,
// however close, takes the general power formula.
//
//	y >= 0, theta == 0:  log(y+1)
//	y >= 0, theta == 2:  ((y+1)^2 - 1) / 2
//	y >= 0, otherwise:   ((y+1)^theta - 1) / theta
//	y <  0, theta == 0:  (1 - (1-y)^2) / 2
//	y <  0, theta == 2:  -log(1-y)
//	y <  0, otherwise:   (1 - (1-y)^(2-theta)) / (2-theta)
//
// theta is not validated; theta == 1 reproduces the identity on both
// branches. Transform(0, theta) is exactly 0 for every theta.
func Transform(y, theta float64) float64 {
	switch {
	case theta == 0:
		if y >= 0 {
			return SafeLog(y + 1)
		}
		return 0.5 - 0.5*(y-1)*(y-1)
	case theta == 2:
		if y >= 0 {
			return -0.5 + 0.5*(y+1)*(y+1)
		}
		return -SafeLog(-y + 1)
	default:
		if y >= 0 {
			return (SafePow(y+1, theta) - 1) / theta
		}
		return (1 - SafePow(-y+1, 2-theta)) / (2 - theta)
	}
}

// Inverse maps a transformed value back to the original scale, undoing
// Transform for the same theta on both sign branches. Values outside the
// range Transform can produce for the given theta are not rejected; the
// SafePow guard absorbs the resulting domain violations silently.
func Inverse(y, theta float64) float64 {
	switch {
	case theta == 0:
		if y >= 0 {
			return gomath.Exp(y) - 1
		}
		return 1 - SafePow(-2*y+1, 0.5)
	case theta == 2:
		if y >= 0 {
			return -1 + SafePow(2*y+1, 0.5)
		}
		return 1 - gomath.Exp(-y)
	default:
		if y >= 0 {
			return SafePow(theta*y+1, 1/theta) - 1
		}
		return 1 - SafePow(1-(2-theta)*y, 1/(2-theta))
	}
}

// Derivative evaluates d/dy of Transform at y. A single power expression
// per sign branch covers all theta, the theta == 0 and theta == 2 closed
// forms included.
//
//	y >= 0:  (y+1)^(theta-1)
//	y <  0:  (1-y)^(1-theta)
//
// Derivative(0, theta) is exactly 1 and the two branches meet smoothly
// there, which makes the transform monotone increasing in y.
func Derivative(y, theta float64) float64 {
	if y >= 0 {
		return SafePow(y+1, theta-1)
	}
	return SafePow(-y+1, 1-theta)
}
