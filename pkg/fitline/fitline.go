// Package fitline provides descriptive statistics for simple linear
// regression over paired samples: least-squares fitting, line evaluation,
// and fit-quality scoring via R-squared, MSE, and RMSE.
//
// All functions are pure and safe for concurrent use. Degenerate inputs
// (constant x in Fit, constant y in RSquared) are not guarded; the
// resulting division by zero propagates as NaN or Inf per IEEE-754 and is
// never reported as an error.
package fitline

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument reports a violated precondition: paired sequences of
// different length, an empty sequence, or a wrong-sized coefficient slice.
// Callers test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Coefficients is a fitted line y = Slope*x + Intercept.
type Coefficients struct {
	Slope     float64 // b1
	Intercept float64 // b0
}

// Fit computes least-squares line coefficients for the paired samples x, y.
//
// The slope is sum(x[i]*(y[i]-mean(y))) / sum((x[i]-mean(x))^2). The
// numerator deliberately uses the raw x values, not centered ones; the two
// forms agree algebraically but not bit-for-bit, and this is the form whose
// rounding behavior downstream consumers rely on.
func Fit(x, y []float64) (Coefficients, error) {
	if err := checkPaired(x, y); err != nil {
		return Coefficients{}, err
	}

	xMean := mean(x)
	yMean := mean(y)

	var num, den float64
	for i := range x {
		num += x[i] * (y[i] - yMean)
		dx := x[i] - xMean
		den += dx * dx
	}

	// Constant x leaves den at zero; the division propagates NaN or Inf
	// instead of failing.
	slope := num / den
	return Coefficients{Slope: slope, Intercept: yMean - slope*xMean}, nil
}

// Predict evaluates the fitted line at every point of x. The result has the
// same length and order as x; an empty x yields an empty result.
func Predict(x []float64, coef Coefficients) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = coef.Slope*v + coef.Intercept
	}
	return out
}

// PredictSlice is Predict for a raw [b1, b0] coefficient slice, as produced
// by decoding external data. It fails unless the slice has exactly two
// elements.
func PredictSlice(x, coef []float64) ([]float64, error) {
	if len(coef) != 2 {
		return nil, fmt.Errorf("%w: coefficients must have exactly two elements [b1 b0], got %d", ErrInvalidArgument, len(coef))
	}
	return Predict(x, Coefficients{Slope: coef[0], Intercept: coef[1]}), nil
}

// RSquared reports the fraction of variance in y explained by the line:
// 1 - SSE/SST, with predictions taken from Predict(x, coef). A constant y
// leaves SST at zero and the result is non-finite; the value is not clamped
// to [0, 1].
func RSquared(x, y []float64, coef Coefficients) (float64, error) {
	if err := checkPaired(x, y); err != nil {
		return 0, err
	}

	pred := Predict(x, coef)
	yMean := mean(y)

	var sst, sse float64
	for i := range y {
		dt := y[i] - yMean
		sst += dt * dt
		dr := y[i] - pred[i]
		sse += dr * dr
	}
	return 1 - sse/sst, nil
}

// MeanSquaredError returns the mean squared deviation between paired
// sequences of observed and predicted values.
func MeanSquaredError(yTrue, yPred []float64) (float64, error) {
	if err := checkPaired(yTrue, yPred); err != nil {
		return 0, err
	}

	var sum float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum / float64(len(yTrue)), nil
}

// RootMeanSquaredError returns the square root of MeanSquaredError.
// Validation is delegated to MeanSquaredError and fails identically.
func RootMeanSquaredError(yTrue, yPred []float64) (float64, error) {
	mse, err := MeanSquaredError(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

func checkPaired(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: sequence length mismatch: %d != %d", ErrInvalidArgument, len(a), len(b))
	}
	if len(a) == 0 {
		return fmt.Errorf("%w: sequences must not be empty", ErrInvalidArgument)
	}
	return nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
