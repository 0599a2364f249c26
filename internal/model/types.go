package model

// Series is a named pair of equal-length sample sequences, paired by index.
type Series struct {
	Name   string    `json:"name"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

func (s Series) Len() int {
	return len(s.X)
}

// Metrics are the fit-quality scores of a single regression run.
type Metrics struct {
	RSquared float64 `json:"r_squared"`
	MSE      float64 `json:"mse"`
	RMSE     float64 `json:"rmse"`
}

// FitRun is the persisted record of one least-squares fit.
type FitRun struct {
	RunID        string  `json:"run_id"`
	Series       string  `json:"series"`
	XLabel       string  `json:"x_label,omitempty"`
	YLabel       string  `json:"y_label,omitempty"`
	Samples      int     `json:"samples"`
	Slope        float64 `json:"slope"`
	Intercept    float64 `json:"intercept"`
	Metrics      Metrics `json:"metrics"`
	CreatedAtUTC string  `json:"created_at_utc"`
}
