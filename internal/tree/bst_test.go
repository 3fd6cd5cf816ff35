package tree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/san-kum/algoviz/internal/step"
)

func TestInsert_Steps(t *testing.T) {
	tr := New(50, 30, 70)
	steps := step.Collect(tr.Insert(40))

	var phases []step.Phase
	for _, s := range steps {
		phases = append(phases, s.Phase)
	}
	expected := []step.Phase{step.PhaseStart, step.PhaseCompare, step.PhaseCompare, step.PhaseDone}
	if !slices.Equal(phases, expected) {
		t.Errorf("expected phases %v, got %v", expected, phases)
	}

	final := steps[len(steps)-1]
	if final.Result != 4 {
		t.Errorf("expected new node id 4, got %d", final.Result)
	}
	if !slices.Equal(tr.InOrder(), []int{30, 40, 50, 70}) {
		t.Errorf("unexpected in-order %v", tr.InOrder())
	}
}

func TestInsert_DuplicatesGoRight(t *testing.T) {
	tr := New(5)
	step.Collect(tr.Insert(5))

	if tr.Root().Right == nil || tr.Root().Right.Value != 5 {
		t.Error("duplicate should be the right child")
	}
	if tr.Root().Left != nil {
		t.Error("left child should be empty")
	}
}

func TestInsert_EmptyTree(t *testing.T) {
	tr := New()
	final, _ := step.Final(tr.Insert(9))

	if tr.Len() != 1 || tr.Root().Value != 9 {
		t.Fatalf("expected root 9, got len %d", tr.Len())
	}
	if final.Result != tr.Root().ID {
		t.Errorf("result %d does not match root id %d", final.Result, tr.Root().ID)
	}
}

func TestSearch(t *testing.T) {
	tr := New(50, 30, 70, 20, 40, 60, 80)

	tests := []struct {
		value int
		found bool
		path  int
	}{
		{50, true, 1},
		{40, true, 3},
		{80, true, 3},
		{65, false, 3},
		{10, false, 3},
	}

	for _, tt := range tests {
		final, _ := step.Final(tr.Search(tt.value))
		if final.Found != tt.found {
			t.Errorf("search %d: expected found=%v", tt.value, tt.found)
		}
		if got := len(final.Marks[step.RolePath]); got != tt.path {
			t.Errorf("search %d: expected path of %d, got %d", tt.value, tt.path, got)
		}
		if !tt.found && final.Phase != step.PhaseNotFound {
			t.Errorf("search %d: expected not_found, got %s", tt.value, final.Phase)
		}
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		value    int
		expected []int
		found    bool
	}{
		{"leaf", []int{50, 30, 70, 20, 40, 60, 80}, 20, []int{30, 40, 50, 60, 70, 80}, true},
		{"one child", []int{50, 30, 70, 20, 40, 60}, 70, []int{20, 30, 40, 50, 60}, true},
		{"two children", []int{50, 30, 70, 20, 40, 60, 80}, 30, []int{20, 40, 50, 60, 70, 80}, true},
		{"root", []int{50, 30, 70, 20, 40, 60, 80}, 50, []int{20, 30, 40, 60, 70, 80}, true},
		{"missing", []int{50, 30, 70, 20, 40, 60, 80}, 99, []int{20, 30, 40, 50, 60, 70, 80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(tt.values...)
			final, _ := step.Final(tr.Delete(tt.value))
			if final.Found != tt.found {
				t.Errorf("expected found=%v, got %v", tt.found, final.Found)
			}
			if !slices.Equal(tr.InOrder(), tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, tr.InOrder())
			}
			if !tr.Valid() {
				t.Error("tree lost ordering")
			}
			if tr.Len() != len(tt.expected) {
				t.Errorf("expected len %d, got %d", len(tt.expected), tr.Len())
			}
		})
	}
}

func TestDelete_TwoChildrenUsesSuccessor(t *testing.T) {
	tr := New(50, 30, 70, 60, 80, 65)
	var sawSuccessor bool
	for s := range tr.Delete(50) {
		if s.Phase == step.PhaseSuccessor {
			sawSuccessor = true
			if s.Message != "successor is 60" {
				t.Errorf("unexpected message %q", s.Message)
			}
		}
	}
	if !sawSuccessor {
		t.Fatal("expected a successor step")
	}
	if tr.Root().Value != 60 {
		t.Errorf("expected root 60, got %d", tr.Root().Value)
	}
	if !tr.Valid() {
		t.Error("tree lost ordering")
	}
}

func TestDelete_ResultIsDeletedNode(t *testing.T) {
	tr := New(50, 30, 70, 60, 80, 65)
	rootID := tr.Root().ID
	final, _ := step.Final(tr.Delete(50))
	if final.Result != rootID {
		t.Errorf("expected id %d of the node that held 50, got %d", rootID, final.Result)
	}

	tr = New(50, 30, 70)
	leafID := tr.Root().Left.ID
	final, _ = step.Final(tr.Delete(30))
	if final.Result != leafID {
		t.Errorf("expected leaf id %d, got %d", leafID, final.Result)
	}
	if !tr.Valid() {
		t.Error("tree lost ordering")
	}
}

func TestRandomOperationsStayValid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr := New()
	var values []int

	for i := 0; i < 300; i++ {
		v := rng.Intn(40)
		if rng.Intn(3) == 0 && len(values) > 0 {
			v = values[rng.Intn(len(values))]
			final, _ := step.Final(tr.Delete(v))
			if !final.Found {
				t.Fatalf("delete %d: value should be present", v)
			}
			idx := slices.Index(values, v)
			values = slices.Delete(values, idx, idx+1)
		} else {
			step.Collect(tr.Insert(v))
			values = append(values, v)
		}

		if !tr.Valid() {
			t.Fatalf("invalid tree after op %d", i)
		}
		want := slices.Clone(values)
		slices.Sort(want)
		if !slices.Equal(tr.InOrder(), want) {
			t.Fatalf("op %d: expected %v, got %v", i, want, tr.InOrder())
		}
	}
}

func TestLayout(t *testing.T) {
	tr := New(50, 30, 70, 20)
	layout := tr.Layout()

	if len(layout) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(layout))
	}
	for i, n := range layout {
		if n.Col != i {
			t.Errorf("node %d: expected col %d, got %d", n.ID, i, n.Col)
		}
	}
	if layout[0].Value != 20 || layout[0].Depth != 2 {
		t.Errorf("unexpected leftmost node %+v", layout[0])
	}
	if layout[2].Value != 50 || layout[2].Depth != 0 || layout[2].Left == 0 || layout[2].Right == 0 {
		t.Errorf("unexpected root %+v", layout[2])
	}
}

func TestStopEarlyLeavesTreeUnchanged(t *testing.T) {
	tr := New(50, 30)
	it := step.Pull(tr.Insert(10))
	it.Next()
	it.Stop()

	if tr.Len() != 2 {
		t.Errorf("expected len 2, got %d", tr.Len())
	}
}
