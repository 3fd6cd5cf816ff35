package graph

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

// walk is the traversal state shared by the producers. Node ids are used
// directly as mark values.
type walk struct {
	g        *Graph
	frontier []int
	order    []int
	seen     map[int]bool
	parent   map[int]int
	c        step.Counters
}

func newWalk(g *Graph) *walk {
	return &walk{g: g, seen: make(map[int]bool), parent: make(map[int]int)}
}

func (w *walk) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	if marks == nil {
		marks = make(map[step.Role][]int)
	}
	marks[step.RoleVisited] = slices.Clone(w.order)
	marks[step.RoleQueued] = slices.Clone(w.frontier)

	tree := make([]int, 0, 2*len(w.parent))
	for _, n := range w.g.nodes {
		if p, ok := w.parent[n]; ok {
			tree = append(tree, p, n)
		}
	}

	return step.Step{
		Phase:    phase,
		Message:  msg,
		Marks:    marks,
		Frontier: slices.Clone(w.frontier),
		Visited:  slices.Clone(w.order),
		Edges:    w.g.Edges(),
		Aux:      map[string][]int{"nodes": w.g.Nodes(), "tree": tree},
		Counters: w.c,
		Result:   -1,
	}
}

// Snapshot draws g with no traversal in progress.
func (g *Graph) Snapshot(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	return newWalk(g).snap(phase, msg, marks)
}

func (g *Graph) checkNode(id int) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return nil
}

// BFS marks a node visited when it is enqueued, so each node enters the
// queue once.
func BFS(g *Graph, start int) (step.Producer, error) {
	if err := g.checkNode(start); err != nil {
		return nil, err
	}
	return func(yield func(step.Step) bool) {
		w := newWalk(g)
		w.seen[start] = true
		w.frontier = append(w.frontier, start)
		if !yield(w.snap(step.PhaseEnqueue, fmt.Sprintf("enqueue %d", start), step.Marks(step.RoleCurrent, start))) {
			return
		}

		for len(w.frontier) > 0 {
			u := w.frontier[0]
			w.frontier = w.frontier[1:]
			w.order = append(w.order, u)
			w.c.Pass++
			if !yield(w.snap(step.PhaseDequeue, fmt.Sprintf("dequeue %d", u), step.Marks(step.RoleCurrent, u))) {
				return
			}

			for _, v := range g.adj[u] {
				w.c.Comparisons++
				if w.seen[v] {
					continue
				}
				w.seen[v] = true
				w.parent[v] = u
				w.frontier = append(w.frontier, v)
				if !yield(w.snap(step.PhaseEnqueue, fmt.Sprintf("enqueue %d from %d", v, u), step.Marks(step.RoleCurrent, u, step.RoleCompare, v))) {
					return
				}
			}
		}

		s := w.snap(step.PhaseDone, fmt.Sprintf("visited %d nodes", len(w.order)), nil)
		s.Result = len(w.order)
		yield(s)
	}, nil
}

// DFS is iterative. Neighbors are pushed in reverse so they pop in insertion
// order; pops of already visited nodes are skipped.
func DFS(g *Graph, start int) (step.Producer, error) {
	if err := g.checkNode(start); err != nil {
		return nil, err
	}
	return func(yield func(step.Step) bool) {
		w := newWalk(g)
		w.frontier = append(w.frontier, start)
		from := []int{-1}
		if !yield(w.snap(step.PhasePush, fmt.Sprintf("push %d", start), step.Marks(step.RoleCurrent, start))) {
			return
		}

		for len(w.frontier) > 0 {
			top := len(w.frontier) - 1
			u, p := w.frontier[top], from[top]
			w.frontier, from = w.frontier[:top], from[:top]
			if w.seen[u] {
				if !yield(w.snap(step.PhaseDiscard, fmt.Sprintf("skip %d, already visited", u), step.Marks(step.RoleCompare, u))) {
					return
				}
				continue
			}

			w.seen[u] = true
			if u != start {
				w.parent[u] = p
			}
			w.order = append(w.order, u)
			w.c.Pass++
			if !yield(w.snap(step.PhaseVisit, fmt.Sprintf("visit %d", u), step.Marks(step.RoleCurrent, u))) {
				return
			}

			next := g.adj[u]
			for i := len(next) - 1; i >= 0; i-- {
				v := next[i]
				w.c.Comparisons++
				if w.seen[v] {
					continue
				}
				w.frontier = append(w.frontier, v)
				from = append(from, u)
				if !yield(w.snap(step.PhasePush, fmt.Sprintf("push %d", v), step.Marks(step.RoleCurrent, u, step.RoleCompare, v))) {
					return
				}
			}
		}

		s := w.snap(step.PhaseDone, fmt.Sprintf("visited %d nodes", len(w.order)), nil)
		s.Result = len(w.order)
		yield(s)
	}, nil
}

// ShortestPath runs BFS from start with parent links and stops when end is
// reached. The found step lists the path under Aux["path"] and reports its
// edge count as the result; an unreachable end yields a not found step.
func ShortestPath(g *Graph, start, end int) (step.Producer, error) {
	if err := g.checkNode(start); err != nil {
		return nil, err
	}
	if err := g.checkNode(end); err != nil {
		return nil, err
	}
	return func(yield func(step.Step) bool) {
		w := newWalk(g)
		w.seen[start] = true
		w.frontier = append(w.frontier, start)
		marks := func(cur int, extra ...any) map[step.Role][]int {
			return step.Marks(append([]any{step.RoleCurrent, cur, step.RoleFound, end}, extra...)...)
		}
		if !yield(w.snap(step.PhaseEnqueue, fmt.Sprintf("path %d to %d", start, end), marks(start))) {
			return
		}

		reached := start == end
		for len(w.frontier) > 0 && !reached {
			u := w.frontier[0]
			w.frontier = w.frontier[1:]
			w.order = append(w.order, u)
			w.c.Pass++
			if !yield(w.snap(step.PhaseDequeue, fmt.Sprintf("dequeue %d", u), marks(u))) {
				return
			}
			for _, v := range g.adj[u] {
				w.c.Comparisons++
				if w.seen[v] {
					continue
				}
				w.seen[v] = true
				w.parent[v] = u
				w.frontier = append(w.frontier, v)
				if !yield(w.snap(step.PhaseEnqueue, fmt.Sprintf("enqueue %d from %d", v, u), marks(u, step.RoleCompare, v))) {
					return
				}
				if v == end {
					reached = true
					break
				}
			}
		}

		if !reached {
			yield(w.snap(step.PhaseNotFound, fmt.Sprintf("no path from %d to %d", start, end), nil))
			return
		}

		path := []int{end}
		for n := end; n != start; {
			n = w.parent[n]
			path = append(path, n)
		}
		slices.Reverse(path)

		for i := range path {
			if !yield(w.snap(step.PhasePath, fmt.Sprintf("path through %d", path[i]), step.Marks(step.RolePath, path[:i+1]))) {
				return
			}
		}

		s := w.snap(step.PhaseFound, fmt.Sprintf("shortest path has %d edges", len(path)-1), step.Marks(step.RolePath, path))
		s.Aux["path"] = path
		s.Result = len(path) - 1
		s.Found = true
		yield(s)
	}, nil
}
