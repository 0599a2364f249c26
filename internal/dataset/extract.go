package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fitline/internal/model"
)

type ExtractOptions struct {
	Name    string // series name; defaults to "series"
	XColumn string // header of the x column; defaults to the first column
	YColumn string // header of the y column; defaults to the second column
}

// ExtractSeriesFromCSV reads a headered CSV and builds a paired series from
// two of its columns. Column headers are matched case-insensitively; blank
// records are skipped. Equal x/y length is guaranteed by construction.
func ExtractSeriesFromCSV(in io.Reader, opts ExtractOptions) (model.Series, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = "series"
	}

	header, err := reader.Read()
	if err == io.EOF {
		return model.Series{Name: name}, nil
	}
	if err != nil {
		return model.Series{}, fmt.Errorf("read series csv header: %w", err)
	}

	xCol, err := resolveColumn(header, opts.XColumn, 0)
	if err != nil {
		return model.Series{}, err
	}
	yCol, err := resolveColumn(header, opts.YColumn, 1)
	if err != nil {
		return model.Series{}, err
	}

	series := model.Series{
		Name:   name,
		XLabel: strings.TrimSpace(header[xCol]),
		YLabel: strings.TrimSpace(header[yCol]),
	}

	rowIndex := 0
	for {
		rowIndex++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Series{}, fmt.Errorf("read series csv row %d: %w", rowIndex, err)
		}
		if blankRecord(record) {
			continue
		}
		if xCol >= len(record) || yCol >= len(record) {
			return model.Series{}, fmt.Errorf("series csv row %d has %d columns, need %d", rowIndex, len(record), max(xCol, yCol)+1)
		}

		xv, err := parseCell(record[xCol], rowIndex, xCol)
		if err != nil {
			return model.Series{}, err
		}
		yv, err := parseCell(record[yCol], rowIndex, yCol)
		if err != nil {
			return model.Series{}, err
		}
		series.X = append(series.X, xv)
		series.Y = append(series.Y, yv)
	}

	return series, nil
}

func resolveColumn(header []string, wanted string, fallback int) (int, error) {
	wanted = strings.TrimSpace(wanted)
	if wanted == "" {
		if fallback >= len(header) {
			return 0, fmt.Errorf("series csv header has %d columns, need at least %d", len(header), fallback+1)
		}
		return fallback, nil
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), wanted) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in series csv header", wanted)
}

func parseCell(raw string, row, col int) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse series row %d column %d: %w", row, col, err)
	}
	return value, nil
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
