package dataset

import (
	"fmt"
	"math/rand"

	"fitline/internal/model"
)

type GenerateOptions struct {
	Name      string
	Samples   int
	Slope     float64
	Intercept float64
	Noise     float64 // standard deviation of gaussian noise added to y
	Seed      int64
}

// Generate builds a synthetic linear series y = Slope*x + Intercept with
// gaussian noise, for tests and the generate subcommand. x runs 1..Samples.
func Generate(opts GenerateOptions) (model.Series, error) {
	if opts.Samples <= 0 {
		return model.Series{}, fmt.Errorf("sample count must be positive, got %d", opts.Samples)
	}
	name := opts.Name
	if name == "" {
		name = "generated"
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	series := model.Series{
		Name: name,
		X:    make([]float64, opts.Samples),
		Y:    make([]float64, opts.Samples),
	}
	for i := 0; i < opts.Samples; i++ {
		x := float64(i + 1)
		series.X[i] = x
		series.Y[i] = opts.Slope*x + opts.Intercept + rng.NormFloat64()*opts.Noise
	}
	return series, nil
}
