package step

import (
	"errors"
	"testing"
)

func TestStep_Done(t *testing.T) {
	tests := []struct {
		phase Phase
		done  bool
	}{
		{PhaseCompare, false},
		{PhaseSwap, false},
		{PhaseDone, true},
		{PhaseFound, true},
		{PhaseNotFound, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			if got := (Step{Phase: tt.phase}).Done(); got != tt.done {
				t.Errorf("Done() = %v, want %v", got, tt.done)
			}
		})
	}
}

func TestStep_CloneIsIndependent(t *testing.T) {
	s := Step{
		Array:    []int{1, 2, 3},
		Marks:    Marks(RoleCompare, []int{0, 1}),
		Pointers: map[string]int{"top": 2},
		Buckets:  [][]int{{1}, {2}},
		Vars:     map[string]int{"i": 1},
	}

	c := s.Clone()
	c.Array[0] = 99
	c.Marks[RoleCompare][0] = 7
	c.Pointers["top"] = 0
	c.Buckets[0][0] = 42
	c.Vars["i"] = 5

	if s.Array[0] != 1 {
		t.Error("Clone shares Array")
	}
	if s.Marks[RoleCompare][0] != 0 {
		t.Error("Clone shares Marks")
	}
	if s.Pointers["top"] != 2 {
		t.Error("Clone shares Pointers")
	}
	if s.Buckets[0][0] != 1 {
		t.Error("Clone shares Buckets")
	}
	if s.Vars["i"] != 1 {
		t.Error("Clone shares Vars")
	}
}

func TestMarks(t *testing.T) {
	m := Marks(RolePivot, 4, RoleCompare, []int{1, 2}, "ignored", 3)

	if len(m) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(m))
	}
	s := Step{Marks: m}
	if !s.Marked(RolePivot, 4) {
		t.Error("pivot 4 not marked")
	}
	if !s.Marked(RoleCompare, 2) {
		t.Error("compare 2 not marked")
	}
	if s.Marked(RoleSwap, 1) {
		t.Error("swap should be empty")
	}

	r, ok := s.RoleOf(1, RoleSwap, RoleCompare)
	if !ok || r != RoleCompare {
		t.Errorf("RoleOf(1) = %q, %v", r, ok)
	}
}

func TestRange(t *testing.T) {
	if got := Range(2, 4); len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("Range(2,4) = %v", got)
	}
	if got := Range(3, 1); got != nil {
		t.Errorf("Range(3,1) = %v, want nil", got)
	}
}

func TestStepError(t *testing.T) {
	limit := errors.New("step limit")
	err := &StepError{Index: 3, Phase: PhaseSwap, Wrapped: limit}
	expected := "step 3 (swap): step limit"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, limit) {
		t.Error("StepError does not unwrap")
	}
}
