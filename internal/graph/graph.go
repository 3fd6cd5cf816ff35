package graph

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

var (
	ErrSelfLoop      = errors.New("graph: self loop")
	ErrNodeNotFound  = errors.New("graph: node not found")
	ErrDuplicateEdge = errors.New("graph: duplicate edge")
	ErrEdgeNotFound  = errors.New("graph: edge not found")
	ErrBadEdge       = errors.New("graph: malformed edge")
	ErrNodeCount     = errors.New("graph: node count out of range")
)

const (
	DefaultNodes    = 8
	DefaultEdgeProb = 0.4
	MaxNodes        = 50
	minConnected    = 6
	maxConnected    = 10
)

// Graph is an undirected simple graph. Neighbor order follows edge
// insertion order, which fixes the visiting order of the traversals.
type Graph struct {
	nodes []int
	adj   map[int][]int
	edges []step.Edge
}

func New() *Graph {
	return &Graph{adj: make(map[int][]int)}
}

// AddNode adds a node with the next id (largest id + 1) and returns it.
func (g *Graph) AddNode() int {
	id := 0
	if len(g.nodes) > 0 {
		id = slices.Max(g.nodes) + 1
	}
	g.nodes = append(g.nodes, id)
	g.adj[id] = nil
	return id
}

func (g *Graph) AddEdge(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	for _, id := range []int{a, b} {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
	}
	if g.HasEdge(a, b) {
		return fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, a, b)
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.edges = append(g.edges, step.Edge{a, b})
	return nil
}

func (g *Graph) RemoveEdge(a, b int) error {
	if !g.HasEdge(a, b) {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, a, b)
	}
	g.adj[a] = slices.DeleteFunc(g.adj[a], func(n int) bool { return n == b })
	g.adj[b] = slices.DeleteFunc(g.adj[b], func(n int) bool { return n == a })
	g.edges = slices.DeleteFunc(g.edges, func(e step.Edge) bool {
		return (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a)
	})
	return nil
}

// RemoveNode drops id and every edge touching it.
func (g *Graph) RemoveNode(id int) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	for _, n := range slices.Clone(g.adj[id]) {
		_ = g.RemoveEdge(id, n)
	}
	delete(g.adj, id)
	g.nodes = slices.DeleteFunc(g.nodes, func(n int) bool { return n == id })
	return nil
}

func (g *Graph) HasNode(id int) bool {
	_, ok := g.adj[id]
	return ok
}

func (g *Graph) HasEdge(a, b int) bool {
	return slices.Contains(g.adj[a], b)
}

func (g *Graph) Neighbors(id int) []int { return slices.Clone(g.adj[id]) }
func (g *Graph) Nodes() []int           { return slices.Clone(g.nodes) }
func (g *Graph) Edges() []step.Edge     { return slices.Clone(g.edges) }
func (g *Graph) Len() int               { return len(g.nodes) }

// WithNodes returns a graph holding nodes 0..n-1 and no edges.
func WithNodes(n int) *Graph {
	g := New()
	for range n {
		g.AddNode()
	}
	return g
}

// Parse builds a graph of n nodes from a list such as "0-1,1-2 2-3".
// CheckNodes rejects node counts outside 1..MaxNodes.
func CheckNodes(n int) error {
	if n < 1 || n > MaxNodes {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrNodeCount, n, MaxNodes)
	}
	return nil
}

func Parse(n int, edges string) (*Graph, error) {
	if err := CheckNodes(n); err != nil {
		return nil, err
	}
	g := WithNodes(n)
	fields := strings.FieldsFunc(edges, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	for _, f := range fields {
		a, b, ok := strings.Cut(f, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, f)
		}
		x, errA := strconv.Atoi(strings.TrimSpace(a))
		y, errB := strconv.Atoi(strings.TrimSpace(b))
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, f)
		}
		if err := g.AddEdge(x, y); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Random returns n nodes where each unordered pair is joined with
// probability p.
func Random(n int, p float64, seed int64) *Graph {
	rng := rand.New(rand.NewSource(seed))
	g := WithNodes(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(i, j)
			}
		}
	}
	return g
}

// RandomConnected returns a random tree of 6 to 10 nodes, so every node is
// reachable from every other.
func RandomConnected(seed int64) *Graph {
	rng := rand.New(rand.NewSource(seed))
	n := minConnected + rng.Intn(maxConnected-minConnected+1)
	g := WithNodes(n)
	for i := 1; i < n; i++ {
		_ = g.AddEdge(rng.Intn(i), i)
	}
	return g
}

func (g *Graph) String() string {
	parts := make([]string, len(g.edges))
	for i, e := range g.edges {
		parts[i] = fmt.Sprintf("%d-%d", e[0], e[1])
	}
	return fmt.Sprintf("%d nodes [%s]", len(g.nodes), strings.Join(parts, " "))
}
