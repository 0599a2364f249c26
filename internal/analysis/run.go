package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitline/internal/model"
	"fitline/pkg/fitline"
)

// RunResult bundles the persisted run record with the per-sample vectors
// that only live in the report artifacts.
type RunResult struct {
	Run       model.FitRun `json:"run"`
	Predicted []float64    `json:"predicted"`
	Residuals []float64    `json:"residuals"`
}

// RunFit fits a least-squares line to the series and scores it. The run id
// is a fresh UUID; the timestamp is UTC RFC3339.
func RunFit(series model.Series) (RunResult, error) {
	coef, err := fitline.Fit(series.X, series.Y)
	if err != nil {
		return RunResult{}, fmt.Errorf("fit series %s: %w", series.Name, err)
	}

	r2, err := fitline.RSquared(series.X, series.Y, coef)
	if err != nil {
		return RunResult{}, fmt.Errorf("score series %s: %w", series.Name, err)
	}
	predicted := fitline.Predict(series.X, coef)
	mse, err := fitline.MeanSquaredError(series.Y, predicted)
	if err != nil {
		return RunResult{}, fmt.Errorf("score series %s: %w", series.Name, err)
	}
	rmse, err := fitline.RootMeanSquaredError(series.Y, predicted)
	if err != nil {
		return RunResult{}, fmt.Errorf("score series %s: %w", series.Name, err)
	}

	residuals := make([]float64, len(series.Y))
	for i := range series.Y {
		residuals[i] = series.Y[i] - predicted[i]
	}

	run := model.FitRun{
		RunID:        uuid.NewString(),
		Series:       series.Name,
		XLabel:       series.XLabel,
		YLabel:       series.YLabel,
		Samples:      series.Len(),
		Slope:        coef.Slope,
		Intercept:    coef.Intercept,
		Metrics:      model.Metrics{RSquared: r2, MSE: mse, RMSE: rmse},
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339),
	}
	return RunResult{Run: run, Predicted: predicted, Residuals: residuals}, nil
}
