package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"fitline/internal/model"
)

type SeriesSummary struct {
	Name        string  `json:"name"`
	Samples     int     `json:"samples"`
	XMean       float64 `json:"x_mean"`
	XStdDev     float64 `json:"x_std_dev"`
	YMean       float64 `json:"y_mean"`
	YStdDev     float64 `json:"y_std_dev"`
	Correlation float64 `json:"correlation"`
}

// Summarize computes descriptive statistics for both sides of a series plus
// the Pearson correlation between them.
func Summarize(series model.Series) (SeriesSummary, error) {
	if len(series.X) != len(series.Y) {
		return SeriesSummary{}, fmt.Errorf("series %s: x/y length mismatch: %d != %d", series.Name, len(series.X), len(series.Y))
	}
	if len(series.X) == 0 {
		return SeriesSummary{}, fmt.Errorf("series %s is empty", series.Name)
	}

	return SeriesSummary{
		Name:        series.Name,
		Samples:     series.Len(),
		XMean:       stat.Mean(series.X, nil),
		XStdDev:     stat.StdDev(series.X, nil),
		YMean:       stat.Mean(series.Y, nil),
		YStdDev:     stat.StdDev(series.Y, nil),
		Correlation: stat.Correlation(series.X, series.Y, nil),
	}, nil
}
