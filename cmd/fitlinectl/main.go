package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fitline/internal/analysis"
	"fitline/internal/dataset"
	"fitline/internal/storage"
	"fitline/pkg/fitline"
)

const (
	reportsDir = "reports"
	exportsDir = "exports"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "extract":
		return runExtract(ctx, args[1:])
	case "generate":
		return runGenerate(ctx, args[1:])
	case "summary":
		return runSummary(ctx, args[1:])
	case "fit":
		return runFit(ctx, args[1:])
	case "predict":
		return runPredict(ctx, args[1:])
	case "score":
		return runScore(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runExtract(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	csvPath := fs.String("csv", "", "input csv path")
	name := fs.String("name", "", "series name (default: csv file base name)")
	xColumn := fs.String("x", "", "x column header (default: first column)")
	yColumn := fs.String("y", "", "y column header (default: second column)")
	out := fs.String("out", "", "output series json path (default: <name>.series.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return errors.New("csv path is required")
	}

	seriesName := *name
	if seriesName == "" {
		seriesName = strings.TrimSuffix(filepath.Base(*csvPath), ".csv")
	}

	in, err := os.Open(*csvPath)
	if err != nil {
		return err
	}
	defer in.Close()

	series, err := dataset.ExtractSeriesFromCSV(in, dataset.ExtractOptions{
		Name:    seriesName,
		XColumn: *xColumn,
		YColumn: *yColumn,
	})
	if err != nil {
		return err
	}

	outPath := *out
	if outPath == "" {
		outPath = seriesName + ".series.json"
	}
	if err := dataset.WriteSeriesFile(outPath, series); err != nil {
		return err
	}

	fmt.Printf("extracted series=%s samples=%d -> %s\n", series.Name, series.Len(), outPath)
	return nil
}

func runGenerate(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	name := fs.String("name", "generated", "series name")
	samples := fs.Int("samples", 100, "sample count")
	slope := fs.Float64("slope", 1, "line slope")
	intercept := fs.Float64("intercept", 0, "line intercept")
	noise := fs.Float64("noise", 0, "gaussian noise standard deviation")
	seed := fs.Int64("seed", 0, "random seed")
	out := fs.String("out", "", "output series json path (default: <name>.series.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	series, err := dataset.Generate(dataset.GenerateOptions{
		Name:      *name,
		Samples:   *samples,
		Slope:     *slope,
		Intercept: *intercept,
		Noise:     *noise,
		Seed:      *seed,
	})
	if err != nil {
		return err
	}

	outPath := *out
	if outPath == "" {
		outPath = series.Name + ".series.json"
	}
	if err := dataset.WriteSeriesFile(outPath, series); err != nil {
		return err
	}

	fmt.Printf("generated series=%s samples=%d -> %s\n", series.Name, series.Len(), outPath)
	return nil
}

func runSummary(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	seriesPath := fs.String("series", "", "series json path")
	jsonOut := fs.Bool("json", false, "emit summary as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seriesPath == "" {
		return errors.New("series path is required")
	}

	series, err := dataset.ReadSeriesFile(*seriesPath)
	if err != nil {
		return err
	}
	summary, err := dataset.Summarize(series)
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(summary)
	}
	fmt.Printf("series=%s samples=%d\n", summary.Name, summary.Samples)
	fmt.Printf("x: mean=%.6f std=%.6f\n", summary.XMean, summary.XStdDev)
	fmt.Printf("y: mean=%.6f std=%.6f\n", summary.YMean, summary.YStdDev)
	fmt.Printf("correlation=%.6f\n", summary.Correlation)
	return nil
}

func runFit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	seriesPath := fs.String("series", "", "series json path")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "fitline.db", "sqlite database path")
	reports := fs.String("reports", reportsDir, "report artifacts directory")
	jsonOut := fs.Bool("json", false, "emit run record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seriesPath == "" {
		return errors.New("series path is required")
	}

	series, err := dataset.ReadSeriesFile(*seriesPath)
	if err != nil {
		return err
	}

	result, err := analysis.RunFit(series)
	if err != nil {
		return err
	}

	runDir, err := analysis.WriteRunArtifacts(*reports, result)
	if err != nil {
		return err
	}
	if err := analysis.AppendRunIndex(*reports, analysis.IndexEntryForRun(result.Run)); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}
	if err := store.SaveSeries(ctx, series); err != nil {
		return err
	}
	if err := store.SaveFitRun(ctx, result.Run); err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(result.Run)
	}
	fmt.Printf("run=%s series=%s samples=%d\n", result.Run.RunID, result.Run.Series, result.Run.Samples)
	fmt.Printf("line: y = %.6f*x + %.6f\n", result.Run.Slope, result.Run.Intercept)
	fmt.Printf("r2=%.6f mse=%.6f rmse=%.6f\n", result.Run.Metrics.RSquared, result.Run.Metrics.MSE, result.Run.Metrics.RMSE)
	fmt.Printf("artifacts: %s\n", runDir)
	return nil
}

func runPredict(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	coef := fs.String("coef", "", "comma-separated coefficients b1,b0")
	xs := fs.String("x", "", "comma-separated x values")
	if err := fs.Parse(args); err != nil {
		return err
	}

	coefValues, err := parseFloatList(*coef)
	if err != nil {
		return fmt.Errorf("parse coefficients: %w", err)
	}
	xValues, err := parseFloatList(*xs)
	if err != nil {
		return fmt.Errorf("parse x values: %w", err)
	}

	predicted, err := fitline.PredictSlice(xValues, coefValues)
	if err != nil {
		return err
	}
	for i, y := range predicted {
		fmt.Printf("%g -> %g\n", xValues[i], y)
	}
	return nil
}

func runScore(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	yTrue := fs.String("true", "", "comma-separated observed values")
	yPred := fs.String("pred", "", "comma-separated predicted values")
	if err := fs.Parse(args); err != nil {
		return err
	}

	trueValues, err := parseFloatList(*yTrue)
	if err != nil {
		return fmt.Errorf("parse observed values: %w", err)
	}
	predValues, err := parseFloatList(*yPred)
	if err != nil {
		return fmt.Errorf("parse predicted values: %w", err)
	}

	mse, err := fitline.MeanSquaredError(trueValues, predValues)
	if err != nil {
		return err
	}
	rmse, err := fitline.RootMeanSquaredError(trueValues, predValues)
	if err != nil {
		return err
	}
	fmt.Printf("mse=%g rmse=%g\n", mse, rmse)
	return nil
}

func runRuns(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "max runs to list")
	reports := fs.String("reports", reportsDir, "report artifacts directory")
	jsonOut := fs.Bool("json", false, "emit runs list as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	entries, err := analysis.ListRunIndex(*reports)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no runs found")
		return nil
	}
	if len(entries) > *limit {
		entries = entries[:*limit]
	}

	if *jsonOut {
		return printJSON(entries)
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  series=%s samples=%d slope=%.6f intercept=%.6f r2=%.6f\n",
			e.RunID, e.CreatedAtUTC, e.Series, e.Samples, e.Slope, e.Intercept, e.RSquared)
	}
	return nil
}

func runExport(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	runID := fs.String("run", "", "run id to export")
	latest := fs.Bool("latest", false, "export the most recent run")
	reports := fs.String("reports", reportsDir, "report artifacts directory")
	out := fs.String("out", exportsDir, "export directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id := *runID
	if *latest {
		entries, err := analysis.ListRunIndex(*reports)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return errors.New("no runs to export")
		}
		id = entries[0].RunID
	}
	if id == "" {
		return errors.New("run id is required (or use -latest)")
	}

	dst, err := analysis.ExportRunArtifacts(*reports, id, *out)
	if err != nil {
		return err
	}
	fmt.Printf("exported run=%s -> %s\n", id, dst)
	return nil
}

func parseFloatList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("value list is empty")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out = append(out, value)
	}
	return out, nil
}

func printJSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: fitlinectl <extract|generate|summary|fit|predict|score|runs|export> [flags]", msg)
}
