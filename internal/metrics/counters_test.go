package metrics

import (
	"testing"

	"github.com/san-kum/algoviz/internal/step"
)

func TestCounters(t *testing.T) {
	steps := []step.Step{
		{Counters: step.Counters{Comparisons: 1}},
		{Counters: step.Counters{Comparisons: 2, Swaps: 1}, Frontier: []int{1, 2, 3}},
		{Counters: step.Counters{Comparisons: 3, Swaps: 1, Writes: 2, Probes: 1}, Frontier: []int{4}},
	}

	tests := []struct {
		metric   Metric
		name     string
		expected float64
	}{
		{NewComparisons(), "comparisons", 3},
		{NewSwaps(), "swaps", 1},
		{NewWrites(), "writes", 2},
		{NewProbes(), "probes", 1},
		{NewStepCount(), "steps", 3},
		{NewPeakFrontier(), "peak_frontier", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range steps {
				tt.metric.Observe(s)
			}
			if tt.metric.Name() != tt.name {
				t.Errorf("expected name %s, got %s", tt.name, tt.metric.Name())
			}
			if tt.metric.Value() != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, tt.metric.Value())
			}
			tt.metric.Reset()
			if tt.metric.Value() != 0 {
				t.Errorf("expected 0 after reset, got %f", tt.metric.Value())
			}
		})
	}
}

func TestSeries(t *testing.T) {
	s := NewSeries("swaps")
	for i := 0; i < 4; i++ {
		s.Observe(step.Step{Counters: step.Counters{Swaps: i * 2}})
	}

	if len(s.Points()) != 4 {
		t.Fatalf("expected 4 points, got %d", len(s.Points()))
	}
	if s.Value() != 6 {
		t.Errorf("expected last point 6, got %f", s.Value())
	}
	if s.Name() != "swaps_series" {
		t.Errorf("unexpected name %s", s.Name())
	}

	if NewSeries("bogus").Name() != "comparisons_series" {
		t.Error("unknown series should fall back to comparisons")
	}
}

func TestDefaults(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Defaults() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		seen[m.Name()] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 metrics, got %d", len(seen))
	}
}
