package scenario

import (
	"context"
	"fmt"

	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/registry"
)

// Sweep runs one algorithm over growing random inputs.
type Sweep struct {
	Algorithm string
	MinSize   int
	MaxSize   int
	Points    int
	Seed      int64
}

type SweepResult struct {
	Size        int
	Steps       int
	Comparisons int
	Swaps       int
	Writes      int
	Probes      int
}

func RunSweep(ctx context.Context, sw *Sweep, reg *registry.Registry) ([]SweepResult, error) {
	if sw.MinSize < 1 || sw.MaxSize < sw.MinSize {
		return nil, fmt.Errorf("invalid size range %d..%d", sw.MinSize, sw.MaxSize)
	}
	if sw.Points < 2 {
		sw.Points = 2
	}
	a, err := reg.Get(sw.Algorithm)
	if err != nil {
		return nil, err
	}

	d := playback.New()
	d.AddMetric(metrics.NewStepCount())

	results := make([]SweepResult, 0, sw.Points)
	stride := float64(sw.MaxSize-sw.MinSize) / float64(sw.Points-1)
	for i := 0; i < sw.Points; i++ {
		size := sw.MinSize + int(float64(i)*stride+0.5)
		values := registry.RandomValues(sw.Seed + int64(i))
		for len(values) < size {
			values = append(values, registry.RandomValues(sw.Seed+int64(len(values)))...)
		}
		values = values[:size]

		p, err := a.New(registry.Input{Values: values, Target: values[size/2], Seed: sw.Seed})
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}
		res, err := d.Run(ctx, p, playback.Config{})
		if err != nil {
			return results, fmt.Errorf("size %d: %w", size, err)
		}

		c := res.Final.Counters
		results = append(results, SweepResult{
			Size:        size,
			Steps:       res.StepsTaken,
			Comparisons: c.Comparisons,
			Swaps:       c.Swaps,
			Writes:      c.Writes,
			Probes:      c.Probes,
		})
	}
	return results, nil
}
