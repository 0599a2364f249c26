package fitline

import (
	"errors"
	"math"
	"testing"
)

func TestFitWorkedExample(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	coef, err := Fit(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(coef.Slope-0.6) > 1e-12 {
		t.Fatalf("unexpected slope: %v", coef.Slope)
	}
	if math.Abs(coef.Intercept-2.2) > 1e-12 {
		t.Fatalf("unexpected intercept: %v", coef.Intercept)
	}
}

func TestFitLeastSquaresOptimality(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	y := []float64{1.1, 2.9, 5.2, 6.8, 9.1, 11.2, 12.8}

	coef, err := Fit(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	best := residualSumSquares(x, y, coef)

	// Brute-force search around the fitted line must not find a lower
	// residual sum of squares.
	for ds := -1.0; ds <= 1.0; ds += 0.05 {
		for di := -1.0; di <= 1.0; di += 0.05 {
			if ds == 0 && di == 0 {
				continue
			}
			alt := Coefficients{Slope: coef.Slope + ds, Intercept: coef.Intercept + di}
			if residualSumSquares(x, y, alt) < best-1e-9 {
				t.Fatalf("found better coefficients: %+v", alt)
			}
		}
	}
}

func residualSumSquares(x, y []float64, coef Coefficients) float64 {
	pred := Predict(x, coef)
	sum := 0.0
	for i := range y {
		d := y[i] - pred[i]
		sum += d * d
	}
	return sum
}

func TestFitValidation(t *testing.T) {
	if _, err := Fit([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for length mismatch, got %v", err)
	}
	if _, err := Fit(nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for empty input, got %v", err)
	}
}

func TestFitConstantXPropagatesNonFinite(t *testing.T) {
	coef, err := Fit([]float64{2, 2, 2}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if !math.IsNaN(coef.Slope) && !math.IsInf(coef.Slope, 0) {
		t.Fatalf("expected non-finite slope for constant x, got %v", coef.Slope)
	}
}

func TestPredict(t *testing.T) {
	got := Predict([]float64{1, 2, 3, 4, 5}, Coefficients{Slope: 0.2, Intercept: 2.0})
	want := []float64{2.2, 2.4, 2.6, 2.8, 3.0}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: %d", len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("unexpected prediction at %d: got=%v want=%v", i, got[i], want[i])
		}
	}

	if out := Predict(nil, Coefficients{Slope: 1}); len(out) != 0 {
		t.Fatalf("expected empty output for empty input, got %v", out)
	}
}

func TestPredictSlice(t *testing.T) {
	got, err := PredictSlice([]float64{0, 1}, []float64{2, 3})
	if err != nil {
		t.Fatalf("predict slice: %v", err)
	}
	if got[0] != 3 || got[1] != 5 {
		t.Fatalf("unexpected predictions: %v", got)
	}

	if _, err := PredictSlice([]float64{1}, []float64{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for one coefficient, got %v", err)
	}
	if _, err := PredictSlice([]float64{1}, []float64{1, 2, 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for three coefficients, got %v", err)
	}
}

func TestRSquaredWorkedExample(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	coef, err := Fit(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	r2, err := RSquared(x, y, coef)
	if err != nil {
		t.Fatalf("r squared: %v", err)
	}
	if math.Abs(r2-0.6) > 1e-12 {
		t.Fatalf("unexpected r squared: %v", r2)
	}
}

func TestRSquaredPerfectFit(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9} // y = 2x + 1 exactly

	coef, err := Fit(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	r2, err := RSquared(x, y, coef)
	if err != nil {
		t.Fatalf("r squared: %v", err)
	}
	if r2 != 1 {
		t.Fatalf("expected r squared of 1 for exact line, got %v", r2)
	}
}

func TestRSquaredConstantY(t *testing.T) {
	r2, err := RSquared([]float64{1, 2, 3}, []float64{4, 4, 4}, Coefficients{Intercept: 4})
	if err != nil {
		t.Fatalf("r squared: %v", err)
	}
	if !math.IsNaN(r2) && !math.IsInf(r2, 0) {
		t.Fatalf("expected non-finite r squared for constant y, got %v", r2)
	}
}

func TestRSquaredValidation(t *testing.T) {
	if _, err := RSquared([]float64{1}, []float64{1, 2}, Coefficients{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for length mismatch, got %v", err)
	}
	if _, err := RSquared(nil, nil, Coefficients{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for empty input, got %v", err)
	}
}

func TestMeanSquaredError(t *testing.T) {
	mse, err := MeanSquaredError([]float64{2, 4, 5, 4, 5}, []float64{2.2, 2.4, 2.6, 2.8, 3.0})
	if err != nil {
		t.Fatalf("mse: %v", err)
	}
	if math.Abs(mse-2.76) > 1e-12 {
		t.Fatalf("unexpected mse: %v", mse)
	}
}

func TestMeanSquaredErrorIdenticalInputs(t *testing.T) {
	y := []float64{1.5, -2, 0, 42}
	mse, err := MeanSquaredError(y, y)
	if err != nil {
		t.Fatalf("mse: %v", err)
	}
	if mse != 0 {
		t.Fatalf("expected zero mse for identical inputs, got %v", mse)
	}
}

func TestMeanSquaredErrorValidation(t *testing.T) {
	if _, err := MeanSquaredError([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for length mismatch, got %v", err)
	}
	if _, err := MeanSquaredError(nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for empty input, got %v", err)
	}
}

func TestRootMeanSquaredErrorConsistency(t *testing.T) {
	cases := [][2][]float64{
		{{2, 4, 5, 4, 5}, {2.2, 2.4, 2.6, 2.8, 3.0}},
		{{1, 1, 1}, {1, 1, 1}},
		{{-3, 0.5}, {2, -0.5}},
	}
	for _, c := range cases {
		mse, err := MeanSquaredError(c[0], c[1])
		if err != nil {
			t.Fatalf("mse: %v", err)
		}
		rmse, err := RootMeanSquaredError(c[0], c[1])
		if err != nil {
			t.Fatalf("rmse: %v", err)
		}
		if rmse != math.Sqrt(mse) {
			t.Fatalf("rmse inconsistent with mse: rmse=%v mse=%v", rmse, mse)
		}
	}
}

func TestRootMeanSquaredErrorValidation(t *testing.T) {
	if _, err := RootMeanSquaredError([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for length mismatch, got %v", err)
	}
	if _, err := RootMeanSquaredError(nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for empty input, got %v", err)
	}
}
