package scenario

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/registry"
	"github.com/san-kum/algoviz/internal/step"
)

// Comparison is one algorithm's run over the shared input.
type Comparison struct {
	Algorithm string
	Steps     int
	Metrics   map[string]float64
	Final     step.Step
}

// Compare runs every named algorithm on the same input, each on its own
// driver and goroutine. Results keep the order of names.
func Compare(ctx context.Context, reg *registry.Registry, names []string, in registry.Input, maxSteps int) ([]Comparison, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("compare needs at least two algorithms, got %d", len(names))
	}
	if len(in.Values) == 0 {
		in.Values = registry.RandomValues(in.Seed)
	}

	results := make([]Comparison, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			p, err := reg.Producer(name, in)
			if err != nil {
				errs[idx] = err
				return
			}
			d := playback.New()
			for _, m := range metrics.Defaults() {
				d.AddMetric(m)
			}
			res, err := d.Run(ctx, p, playback.Config{MaxSteps: maxSteps})
			if err != nil {
				errs[idx] = fmt.Errorf("%s: %w", name, err)
				return
			}
			results[idx] = Comparison{
				Algorithm: name,
				Steps:     res.StepsTaken,
				Metrics:   res.Metrics,
				Final:     res.Final,
			}
		}(i, name)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
