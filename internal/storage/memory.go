package storage

import (
	"context"
	"sort"
	"sync"

	"fitline/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	series      map[string]model.Series
	runs        map[string]model.FitRun
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.series = make(map[string]model.Series)
	s.runs = make(map[string]model.FitRun)
	return nil
}

func (s *MemoryStore) SaveSeries(_ context.Context, series model.Series) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := series
	copied.X = append([]float64(nil), series.X...)
	copied.Y = append([]float64(nil), series.Y...)
	s.series[series.Name] = copied
	return nil
}

func (s *MemoryStore) GetSeries(_ context.Context, name string) (model.Series, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series, ok := s.series[name]
	if !ok {
		return model.Series{}, false, nil
	}
	copied := series
	copied.X = append([]float64(nil), series.X...)
	copied.Y = append([]float64(nil), series.Y...)
	return copied, true, nil
}

func (s *MemoryStore) SaveFitRun(_ context.Context, run model.FitRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.RunID] = run
	return nil
}

func (s *MemoryStore) GetFitRun(_ context.Context, runID string) (model.FitRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[runID]
	return run, ok, nil
}

// ListFitRuns returns runs for a series, or all runs when seriesName is
// empty, newest first.
func (s *MemoryStore) ListFitRuns(_ context.Context, seriesName string) ([]model.FitRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]model.FitRun, 0, len(s.runs))
	for _, run := range s.runs {
		if seriesName != "" && run.Series != seriesName {
			continue
		}
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAtUTC == runs[j].CreatedAtUTC {
			return runs[i].RunID < runs[j].RunID
		}
		return runs[i].CreatedAtUTC > runs[j].CreatedAtUTC
	})
	return runs, nil
}
