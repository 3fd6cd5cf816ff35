package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/search"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/structures"
	"github.com/san-kum/algoviz/internal/tree"
)

func TestCanvas(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Label(0, 0, "AB")
	c.DrawLine(0, 0, 19, 11)

	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "AB") {
		t.Errorf("label overwritten: %q", lines[0])
	}
	if strings.TrimSpace(lines[2]) == "" {
		t.Error("expected the line to reach the last row")
	}
}

func TestCanvas_OutOfBounds(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(-1, 0)
	c.Set(100, 100)
	c.Label(5, 5, "x")
	if strings.TrimSpace(c.String()) != "" {
		t.Errorf("expected empty canvas, got %q", c.String())
	}
}

func TestArrayView_SearchPointers(t *testing.T) {
	p, err := search.Binary([]int{1, 3, 5, 7, 9}, 7)
	if err != nil {
		t.Fatal(err)
	}
	steps := step.Collect(p)
	out := ArrayView(steps[1])
	for _, want := range []string{"[ 1]", "[ 9]", "lo", "hi"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}
}

func TestRender_Sorting(t *testing.T) {
	steps := step.Collect(sorting.Radix([]int{170, 45, 75, 90, 802, 24, 2, 66}))
	var bucket step.Step
	for _, s := range steps {
		if s.Phase == step.PhaseBucket {
			bucket = s
			break
		}
	}
	out := Render(bucket, ViewBars, 80)
	if !strings.Contains(out, "█") {
		t.Error("expected bars")
	}
	if !strings.Contains(out, "digit place 1") {
		t.Errorf("expected bucket header in\n%s", out)
	}
	if !strings.Contains(out, "0 |") || !strings.Contains(out, "9 |") {
		t.Error("expected all ten buckets")
	}
}

func TestStackView(t *testing.T) {
	s, _ := structures.NewStack(3)
	s.Push(4)
	s.Push(7)

	out := StackView(s.Snapshot())
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "|") || strings.Contains(lines[0], "7") {
		t.Errorf("expected an empty slot on top, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "7") || !strings.Contains(lines[1], "<- top") {
		t.Errorf("expected 7 at top, got %q", lines[1])
	}
	if !strings.Contains(out, "size 2/3") {
		t.Errorf("expected size line in\n%s", out)
	}
}

func TestQueueView_Pointers(t *testing.T) {
	q, _ := structures.NewQueue(4)
	q.Apply("enqueue 1")
	q.Apply("enqueue 2")

	out := RenderStructure(q.Snapshot(), structures.KindQueue)
	for _, want := range []string{"front", "rear", "size 2/4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}
}

func TestListView(t *testing.T) {
	tests := []struct {
		kind structures.Kind
		want string
	}{
		{structures.KindSinglyList, "[1] -> [2] -> nil"},
		{structures.KindDoublyList, "[1] <-> [2] <-> nil"},
		{structures.KindCircularList, "[1] -> [2] -> (head)"},
	}
	for _, tt := range tests {
		l := structures.NewList(tt.kind)
		l.Apply("insert tail 1")
		l.Apply("insert tail 2")
		out := RenderStructure(l.Snapshot(), tt.kind)
		if !strings.Contains(out, tt.want) {
			t.Errorf("%s: expected %q in\n%s", tt.kind, tt.want, out)
		}
	}
}

func TestRenderStructure_TreeAndGraph(t *testing.T) {
	bst := structures.NewTree()
	for _, c := range []string{"insert 50", "insert 30", "insert 70"} {
		if _, err := bst.Apply(c); err != nil {
			t.Fatal(err)
		}
	}
	out := RenderStructure(bst.Snapshot(), structures.KindBST)
	if lines := strings.Split(out, "\n"); len(lines) != 3 || strings.TrimSpace(lines[0]) != "50" {
		t.Errorf("expected a three line tree rooted at 50, got\n%s", out)
	}

	g := structures.NewGraph(1)
	for _, c := range []string{"add-node", "add-node", "add-edge 0 1"} {
		if _, err := g.Apply(c); err != nil {
			t.Fatal(err)
		}
	}
	out = RenderStructure(g.Snapshot(), structures.KindGraph)
	for _, want := range []string{"(0)", "(1)", "visited"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}
	if got := RenderStructure(structures.NewGraph(1).Snapshot(), structures.KindGraph); got != "(no nodes)" {
		t.Errorf("expected empty graph marker, got %q", got)
	}
}

func TestListView_Empty(t *testing.T) {
	if out := ListView(step.Step{}, structures.KindSinglyList); out != "head -> nil" {
		t.Errorf("expected empty list, got %q", out)
	}
}

func TestTreeView(t *testing.T) {
	bst := tree.New(50, 30, 70)
	final, _ := step.Final(bst.Search(30))

	lines := strings.Split(TreeView(final), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if strings.TrimSpace(lines[0]) != "50" {
		t.Errorf("expected root alone on first line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "/") || !strings.Contains(lines[1], "\\") {
		t.Errorf("expected both connectors, got %q", lines[1])
	}
	if strings.Index(lines[2], "30") > strings.Index(lines[2], "70") {
		t.Errorf("expected 30 left of 70, got %q", lines[2])
	}
}

func TestGraphView(t *testing.T) {
	g, err := graph.Parse(4, "0-1,1-2,2-3")
	if err != nil {
		t.Fatal(err)
	}
	p, err := graph.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	final, _ := step.Final(p)

	out := GraphView(final, 30, 10)
	for _, want := range []string{"(0)", "(3)", "visited", "0 1 2 3", "frontier"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}
}

func TestLoopView(t *testing.T) {
	out := LoopView(step.Step{Vars: map[string]int{"i": 2, "j": 1}, Output: "* \n* * "})
	if !strings.Contains(out, "i = 2   j = 1") {
		t.Errorf("expected sorted vars in\n%s", out)
	}
	if !strings.Contains(out, "* *") {
		t.Errorf("expected output in\n%s", out)
	}
}

func TestCountersView(t *testing.T) {
	out := CountersView(step.Step{Index: 4, Phase: step.PhaseFound, Result: 2, Counters: step.Counters{Probes: 3}})
	if !strings.Contains(out, "probes") || !strings.Contains(out, "result") {
		t.Errorf("unexpected counters\n%s", out)
	}
	if strings.Contains(out, "swaps") {
		t.Error("zero counters should be hidden")
	}
}

func TestViewFor(t *testing.T) {
	tests := map[string]View{
		"sorting": ViewBars,
		"search":  ViewArray,
		"graph":   ViewGraph,
		"tree":    ViewTree,
		"loops":   ViewLoops,
	}
	for category, want := range tests {
		if got := ViewFor(category); got != want {
			t.Errorf("%s: expected %s, got %s", category, want, got)
		}
	}
	if ViewForKind(structures.KindCircularQueue) != ViewQueue {
		t.Error("expected circular queue to use the queue view")
	}
	if ViewForKind(structures.KindBST) != ViewTree || ViewForKind(structures.KindGraph) != ViewGraph {
		t.Error("expected bst and graph to use the tree and graph views")
	}
}
