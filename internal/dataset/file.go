package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fitline/internal/model"
)

func WriteSeriesFile(path string, series model.Series) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("series file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func ReadSeriesFile(path string) (model.Series, error) {
	if strings.TrimSpace(path) == "" {
		return model.Series{}, fmt.Errorf("series file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Series{}, err
	}
	var series model.Series
	if err := json.Unmarshal(data, &series); err != nil {
		return model.Series{}, err
	}
	if len(series.X) != len(series.Y) {
		return model.Series{}, fmt.Errorf("series file %s: x/y length mismatch: %d != %d", path, len(series.X), len(series.Y))
	}
	return series, nil
}
