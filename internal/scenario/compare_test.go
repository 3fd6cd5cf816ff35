package scenario

import (
	"context"
	"slices"
	"testing"

	"github.com/san-kum/algoviz/internal/registry"
)

func TestCompare(t *testing.T) {
	names := []string{"bubble", "insertion", "quick"}
	in := registry.Input{Values: []int{5, 3, 8, 4, 2}}

	results, err := Compare(context.Background(), registry.NewRegistry(), names, in, 0)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Algorithm != names[i] {
			t.Errorf("expected %s at %d, got %s", names[i], i, r.Algorithm)
		}
		if !slices.Equal(r.Final.Array, []int{2, 3, 4, 5, 8}) {
			t.Errorf("%s: expected sorted output, got %v", r.Algorithm, r.Final.Array)
		}
		if r.Metrics["comparisons"] <= 0 {
			t.Errorf("%s: expected comparisons metric", r.Algorithm)
		}
		if r.Steps == 0 {
			t.Errorf("%s: expected steps", r.Algorithm)
		}
	}
}

func TestCompare_SharedRandomInput(t *testing.T) {
	results, err := Compare(context.Background(), registry.NewRegistry(), []string{"heap", "merge"}, registry.Input{Seed: 11}, 0)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !slices.Equal(results[0].Final.Array, results[1].Final.Array) {
		t.Errorf("expected identical sorted output, got %v and %v", results[0].Final.Array, results[1].Final.Array)
	}
}

func TestCompare_Errors(t *testing.T) {
	reg := registry.NewRegistry()
	if _, err := Compare(context.Background(), reg, []string{"bubble"}, registry.Input{}, 0); err == nil {
		t.Error("expected error for a single algorithm")
	}
	if _, err := Compare(context.Background(), reg, []string{"bubble", "bogo"}, registry.Input{}, 0); err == nil {
		t.Error("expected error for unknown algorithm")
	}
	if _, err := Compare(context.Background(), reg, []string{"bubble", "quick"}, registry.Input{Values: []int{9, 8, 7, 6, 5, 4}}, 3); err == nil {
		t.Error("expected step limit error")
	}
}
