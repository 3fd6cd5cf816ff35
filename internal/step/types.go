package step

import (
	"iter"
	"slices"
)

type Phase string

const (
	PhaseStart     Phase = "start"
	PhaseCompare   Phase = "compare"
	PhaseSwap      Phase = "swap"
	PhaseSelect    Phase = "select"
	PhaseShift     Phase = "shift"
	PhaseInsert    Phase = "insert"
	PhasePivot     Phase = "pivot"
	PhaseHeapify   Phase = "heapify"
	PhaseBucket    Phase = "bucket"
	PhaseCollect   Phase = "collect"
	PhaseSplit     Phase = "split"
	PhaseMerge     Phase = "merge"
	PhaseWrite     Phase = "write"
	PhaseProbe     Phase = "probe"
	PhaseDiscard   Phase = "discard"
	PhaseFound     Phase = "found"
	PhaseNotFound  Phase = "not_found"
	PhaseVisit     Phase = "visit"
	PhaseEnqueue   Phase = "enqueue"
	PhaseDequeue   Phase = "dequeue"
	PhasePush      Phase = "push"
	PhasePop       Phase = "pop"
	PhasePath      Phase = "path"
	PhaseDescend   Phase = "descend"
	PhaseSuccessor Phase = "successor"
	PhaseReplace   Phase = "replace"
	PhaseRemove    Phase = "remove"
	PhaseOuter     Phase = "outer"
	PhaseInner     Phase = "inner"
	PhaseCondition Phase = "condition"
	PhaseBody      Phase = "body"
	PhasePointer   Phase = "pointer"
	PhaseDone      Phase = "done"
)

// Role names what a highlighted index or node id means to the view.
type Role string

const (
	RoleCompare   Role = "compare"
	RoleSwap      Role = "swap"
	RolePivot     Role = "pivot"
	RoleMin       Role = "min"
	RoleKey       Role = "key"
	RoleLow       Role = "low"
	RoleMid       Role = "mid"
	RoleHigh      Role = "high"
	RoleDiscard   Role = "discard"
	RoleSorted    Role = "sorted"
	RoleCurrent   Role = "current"
	RoleVisited   Role = "visited"
	RoleQueued    Role = "queued"
	RoleFound     Role = "found"
	RoleSuccessor Role = "successor"
	RolePath      Role = "path"
	RolePointer   Role = "pointer"
	RoleRemoved   Role = "removed"
)

type Counters struct {
	Pass        int `json:"pass"`
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
	Writes      int `json:"writes"`
	Probes      int `json:"probes"`
}

// TreeNode is one node of a laid-out tree snapshot. Col is the in-order
// position, Depth the distance from the root. Left and Right hold child ids,
// zero when absent.
type TreeNode struct {
	ID    int `json:"id"`
	Value int `json:"value"`
	Depth int `json:"depth"`
	Col   int `json:"col"`
	Left  int `json:"left,omitempty"`
	Right int `json:"right,omitempty"`
}

type Edge [2]int

// Step is one discrete, renderable snapshot of algorithm progress.
// Producers hand out fresh slices and maps for every step; consumers must
// not mutate them.
type Step struct {
	Index    int              `json:"index"`
	Phase    Phase            `json:"phase"`
	Message  string           `json:"message,omitempty"`
	Array    []int            `json:"array,omitempty"`
	Items    []string         `json:"items,omitempty"`
	Marks    map[Role][]int   `json:"marks,omitempty"`
	Pointers map[string]int   `json:"pointers,omitempty"`
	Aux      map[string][]int `json:"aux,omitempty"`
	Buckets  [][]int          `json:"buckets,omitempty"`
	Frontier []int            `json:"frontier,omitempty"`
	Visited  []int            `json:"visited,omitempty"`
	Edges    []Edge           `json:"edges,omitempty"`
	Tree     []TreeNode       `json:"tree,omitempty"`
	Vars     map[string]int   `json:"vars,omitempty"`
	Output   string           `json:"output,omitempty"`
	Counters Counters         `json:"counters"`
	Result   int              `json:"result"`
	Found    bool             `json:"found"`
}

// Producer is a lazy sequence of steps. Each pull performs one unit of
// algorithmic work.
type Producer = iter.Seq[Step]

// Done reports whether s is the terminal step of a run.
func (s Step) Done() bool {
	return s.Phase == PhaseDone || s.Phase == PhaseFound || s.Phase == PhaseNotFound
}

// Marked reports whether i carries role r.
func (s Step) Marked(r Role, i int) bool {
	return slices.Contains(s.Marks[r], i)
}

// RoleOf returns the first role in priority order that marks i.
func (s Step) RoleOf(i int, priority ...Role) (Role, bool) {
	for _, r := range priority {
		if s.Marked(r, i) {
			return r, true
		}
	}
	return "", false
}

func (s Step) Clone() Step {
	c := s
	c.Array = slices.Clone(s.Array)
	c.Items = slices.Clone(s.Items)
	c.Frontier = slices.Clone(s.Frontier)
	c.Visited = slices.Clone(s.Visited)
	c.Edges = slices.Clone(s.Edges)
	c.Tree = slices.Clone(s.Tree)
	c.Marks = cloneMap(s.Marks)
	c.Aux = cloneMap(s.Aux)
	if s.Pointers != nil {
		c.Pointers = make(map[string]int, len(s.Pointers))
		for k, v := range s.Pointers {
			c.Pointers[k] = v
		}
	}
	if s.Vars != nil {
		c.Vars = make(map[string]int, len(s.Vars))
		for k, v := range s.Vars {
			c.Vars[k] = v
		}
	}
	if s.Buckets != nil {
		c.Buckets = make([][]int, len(s.Buckets))
		for i, b := range s.Buckets {
			c.Buckets[i] = slices.Clone(b)
		}
	}
	return c
}

func cloneMap[K comparable](m map[K][]int) map[K][]int {
	if m == nil {
		return nil
	}
	c := make(map[K][]int, len(m))
	for k, v := range m {
		c[k] = slices.Clone(v)
	}
	return c
}

// Marks builds a role map from alternating role/index-slice pairs.
func Marks(pairs ...any) map[Role][]int {
	m := make(map[Role][]int, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		r, ok := pairs[i].(Role)
		if !ok {
			continue
		}
		switch v := pairs[i+1].(type) {
		case int:
			m[r] = []int{v}
		case []int:
			m[r] = slices.Clone(v)
		}
	}
	return m
}

// Range returns the indices lo..hi inclusive.
func Range(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
