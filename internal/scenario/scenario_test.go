package scenario

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/registry"
	"github.com/san-kum/algoviz/internal/structures"
)

const stackScenario = `
name: overflow
description: push past capacity then drain
structure: stack
capacity: 2
commands:
  - push 1
  - push 2
  - push 3
  - pop
  - pop
  - pop
  - push x
`

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")
	if err := os.WriteFile(path, []byte(stackScenario), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "overflow" || sc.Capacity != 2 || len(sc.Commands) != 7 {
		t.Errorf("unexpected scenario %+v", sc)
	}
}

func TestParse_Defaults(t *testing.T) {
	sc, err := Parse([]byte("structure: queue\ncommands: [enqueue 1]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Capacity != structures.DefaultCapacity {
		t.Errorf("expected default capacity, got %d", sc.Capacity)
	}

	if _, err := Parse([]byte("name: nothing\n")); err == nil {
		t.Error("expected error without structure")
	}
}

func TestRun_CollectsGuardErrors(t *testing.T) {
	sc, err := Parse([]byte(stackScenario))
	if err != nil {
		t.Fatal(err)
	}
	report, err := Run(sc)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(report.Results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(report.Results))
	}
	wantErr := []bool{false, false, true, false, false, true, true}
	for i, res := range report.Results {
		if (res.Err != "") != wantErr[i] {
			t.Errorf("command %q: error %q", res.Command, res.Err)
		}
	}
	if report.Failed != 3 {
		t.Errorf("expected 3 failures, got %d", report.Failed)
	}
	if !strings.Contains(report.Results[2].Err, "full") {
		t.Errorf("expected full error, got %q", report.Results[2].Err)
	}
	if got := report.Results[1].Snapshot.Items; len(got) != 2 {
		t.Errorf("expected 2 items after two pushes, got %v", got)
	}
	if got := report.Results[6].Snapshot.Items; len(got) != 0 {
		t.Errorf("expected empty stack at the end, got %v", got)
	}
}

func TestReplay_UnknownKind(t *testing.T) {
	if _, err := Replay("heap-of-stacks", 4, nil); err == nil {
		t.Error("expected error for unknown structure")
	}
	if _, err := Replay("stack", 0, nil); err == nil {
		t.Error("expected error for zero capacity")
	}
}

func TestRunSweep(t *testing.T) {
	sw := &Sweep{Algorithm: "insertion", MinSize: 4, MaxSize: 20, Points: 5, Seed: 3}
	results, err := RunSweep(context.Background(), sw, registry.NewRegistry())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 points, got %d", len(results))
	}
	if results[0].Size != 4 || results[4].Size != 20 {
		t.Errorf("unexpected sizes %d..%d", results[0].Size, results[4].Size)
	}
	for _, r := range results {
		if r.Comparisons < r.Size-1 {
			t.Errorf("size %d: expected at least %d comparisons, got %d", r.Size, r.Size-1, r.Comparisons)
		}
	}
}

func TestRunSweep_Invalid(t *testing.T) {
	reg := registry.NewRegistry()
	if _, err := RunSweep(context.Background(), &Sweep{Algorithm: "bubble", MinSize: 5, MaxSize: 2}, reg); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := RunSweep(context.Background(), &Sweep{Algorithm: "bogo", MinSize: 1, MaxSize: 2}, reg); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}
