package dataset

import (
	"math"
	"strings"
	"testing"
)

func TestExtractSeriesFromCSVDefaults(t *testing.T) {
	csv := "week,weight\n1,82.5\n2,81.9\n\n3,81.2\n"
	series, err := ExtractSeriesFromCSV(strings.NewReader(csv), ExtractOptions{Name: "weight"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if series.Name != "weight" {
		t.Fatalf("unexpected name: %s", series.Name)
	}
	if series.XLabel != "week" || series.YLabel != "weight" {
		t.Fatalf("unexpected labels: %s/%s", series.XLabel, series.YLabel)
	}
	if series.Len() != 3 {
		t.Fatalf("expected 3 samples after skipping blank record, got %d", series.Len())
	}
	if series.X[2] != 3 || math.Abs(series.Y[2]-81.2) > 1e-12 {
		t.Fatalf("unexpected third sample: %v/%v", series.X[2], series.Y[2])
	}
}

func TestExtractSeriesFromCSVNamedColumns(t *testing.T) {
	csv := "Day,Calories,Reps\n1,2100,30\n2,2300,35\n"
	series, err := ExtractSeriesFromCSV(strings.NewReader(csv), ExtractOptions{XColumn: "day", YColumn: "REPS"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if series.Len() != 2 {
		t.Fatalf("unexpected sample count: %d", series.Len())
	}
	if series.Y[1] != 35 {
		t.Fatalf("expected reps column, got %v", series.Y[1])
	}
}

func TestExtractSeriesFromCSVErrors(t *testing.T) {
	if _, err := ExtractSeriesFromCSV(strings.NewReader("a,b\n1,x\n"), ExtractOptions{}); err == nil {
		t.Fatal("expected parse error for non-numeric cell")
	}
	if _, err := ExtractSeriesFromCSV(strings.NewReader("a,b\n1,2\n"), ExtractOptions{YColumn: "missing"}); err == nil {
		t.Fatal("expected error for unknown column")
	}
	if _, err := ExtractSeriesFromCSV(strings.NewReader("only\n1\n"), ExtractOptions{}); err == nil {
		t.Fatal("expected error for single-column header with default y")
	}
}

func TestExtractSeriesFromCSVErrorRowNumbering(t *testing.T) {
	// The whitespace-only record is skipped but still counts toward row
	// numbers, so the parse error points at the record's real position.
	csv := "a,b\n1,2\n , \n3,x\n"
	_, err := ExtractSeriesFromCSV(strings.NewReader(csv), ExtractOptions{})
	if err == nil {
		t.Fatal("expected parse error for non-numeric cell")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("expected error to name row 3, got: %v", err)
	}
}

func TestExtractSeriesFromCSVEmptyInput(t *testing.T) {
	series, err := ExtractSeriesFromCSV(strings.NewReader(""), ExtractOptions{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if series.Len() != 0 {
		t.Fatalf("expected empty series, got %d samples", series.Len())
	}
}
