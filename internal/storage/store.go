package storage

import (
	"context"

	"fitline/internal/model"
)

// Store defines persistence operations for series and fit runs.
type Store interface {
	Init(ctx context.Context) error
	SaveSeries(ctx context.Context, series model.Series) error
	GetSeries(ctx context.Context, name string) (model.Series, bool, error)
	SaveFitRun(ctx context.Context, run model.FitRun) error
	GetFitRun(ctx context.Context, runID string) (model.FitRun, bool, error)
	ListFitRuns(ctx context.Context, seriesName string) ([]model.FitRun, error)
}
