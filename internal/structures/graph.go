package structures

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/step"
)

// Graph edits an undirected graph by hand and runs the traversals on its
// current shape. Node ids start at 0 and a new node takes the largest id
// plus one.
type Graph struct {
	base *graph.Graph
	rng  *rand.Rand
}

// NewGraph starts empty; seed drives the random command.
func NewGraph(seed int64) *Graph {
	return &Graph{base: graph.New(), rng: rand.New(rand.NewSource(seed))}
}

func (g *Graph) Kind() Kind         { return KindGraph }
func (g *Graph) Len() int           { return g.base.Len() }
func (g *Graph) Nodes() []int       { return g.base.Nodes() }
func (g *Graph) Edges() []step.Edge { return g.base.Edges() }
func (g *Graph) Usage() []string {
	return []string{
		"add-node", "add-edge <a> <b>", "remove-edge <a> <b>", "remove-node <id>",
		"random [nodes]", "bfs <start>", "dfs <start>", "path <start> <end>", "clear",
	}
}

func (g *Graph) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	return sized(g.base.Snapshot(phase, msg, marks), g.base.Len())
}

func (g *Graph) Snapshot() step.Step {
	return g.snap(step.PhaseDone, g.base.String(), nil)
}

func (g *Graph) AddNode() ([]step.Step, error) {
	if g.base.Len() >= graph.MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes", ErrFull, graph.MaxNodes)
	}
	id := g.base.AddNode()
	return []step.Step{
		g.snap(step.PhaseInsert, fmt.Sprintf("add node %d", id), step.Marks(step.RoleFound, id)),
		withValue(g.Snapshot(), id),
	}, nil
}

func (g *Graph) AddEdge(a, b int) ([]step.Step, error) {
	if err := g.base.AddEdge(a, b); err != nil {
		return nil, err
	}
	return []step.Step{
		g.snap(step.PhaseInsert, fmt.Sprintf("join %d and %d", a, b), step.Marks(step.RoleFound, []int{a, b})),
		g.Snapshot(),
	}, nil
}

func (g *Graph) RemoveEdge(a, b int) ([]step.Step, error) {
	if !g.base.HasEdge(a, b) {
		return nil, g.base.RemoveEdge(a, b)
	}
	first := g.snap(step.PhaseRemove, fmt.Sprintf("cut %d-%d", a, b), step.Marks(step.RoleRemoved, []int{a, b}))
	if err := g.base.RemoveEdge(a, b); err != nil {
		return nil, err
	}
	return []step.Step{first, g.Snapshot()}, nil
}

func (g *Graph) RemoveNode(id int) ([]step.Step, error) {
	if !g.base.HasNode(id) {
		return nil, g.base.RemoveNode(id)
	}
	first := g.snap(step.PhaseRemove, fmt.Sprintf("remove node %d and its edges", id), step.Marks(step.RoleRemoved, id))
	if err := g.base.RemoveNode(id); err != nil {
		return nil, err
	}
	return []step.Step{first, withValue(g.Snapshot(), id)}, nil
}

// Randomize replaces the graph with count nodes joined at the default edge
// probability.
func (g *Graph) Randomize(count int) ([]step.Step, error) {
	if err := graph.CheckNodes(count); err != nil {
		return nil, err
	}
	g.base = graph.Random(count, graph.DefaultEdgeProb, g.rng.Int63())
	return []step.Step{g.Snapshot()}, nil
}

// run drains a traversal over the current graph. The graph itself is not
// changed, so the last step is the traversal's own result.
func (g *Graph) run(p step.Producer, err error) ([]step.Step, error) {
	if err != nil {
		return nil, err
	}
	steps := step.Collect(p)
	for i := range steps {
		steps[i] = sized(steps[i], g.base.Len())
	}
	return steps, nil
}

func (g *Graph) Apply(line string) ([]step.Step, error) {
	c, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	ints := func(k int) ([]int, error) {
		out := make([]int, k)
		for i := range out {
			v, err := c.value(i)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	switch c.op {
	case "add-node", "node":
		return g.AddNode()
	case "add-edge", "edge", "remove-edge", "cut", "path":
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		switch c.op {
		case "remove-edge", "cut":
			return g.RemoveEdge(v[0], v[1])
		case "path":
			return g.run(graph.ShortestPath(g.base, v[0], v[1]))
		}
		return g.AddEdge(v[0], v[1])
	case "remove-node", "bfs", "dfs":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		switch c.op {
		case "bfs":
			return g.run(graph.BFS(g.base, v))
		case "dfs":
			return g.run(graph.DFS(g.base, v))
		}
		return g.RemoveNode(v)
	case "random":
		count := graph.DefaultNodes
		if c.arg(0) != "" {
			v, err := c.value(0)
			if err != nil {
				return nil, err
			}
			count = v
		}
		return g.Randomize(count)
	case "clear":
		g.base = graph.New()
		return []step.Step{g.Snapshot()}, nil
	}
	return nil, c.unknown()
}
