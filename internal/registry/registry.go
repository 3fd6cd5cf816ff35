package registry

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/loops"
	"github.com/san-kum/algoviz/internal/search"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/tree"
)

type Category string

const (
	Sorting Category = "sorting"
	Search  Category = "search"
	Graph   Category = "graph"
	Tree    Category = "tree"
	Loops   Category = "loops"
)

const (
	DefaultLimit = 5
	DefaultInner = 3
)

// Input is everything a visualizer may need. Zero fields fall back to
// defaults; empty Values are replaced by RandomValues(Seed).
type Input struct {
	Values   []int
	Target   int
	Nodes    int
	Edges    string
	EdgeProb float64
	Start    int
	End      int
	// HasEnd marks End as set; node 0 is a valid end.
	HasEnd   bool
	Limit    int
	Inner    int
	Pattern  string
	Seed     int64
}

type Algorithm struct {
	Name        string
	Category    Category
	Description string
	New         func(Input) (step.Producer, error)
}

type Registry struct {
	algorithms map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}

	r.addSort("bubble", "repeatedly swap adjacent out-of-order pairs", sorting.Bubble)
	r.addSort("insertion", "grow a sorted prefix by shifting larger values right", sorting.Insertion)
	r.addSort("selection", "select the minimum of the unsorted suffix each pass", sorting.Selection)
	r.addSort("heap", "build a max-heap then extract the root", sorting.Heap)
	r.addSort("radix", "LSD base-10 bucketing and collecting", sorting.Radix)
	r.addSort("merge", "top-down split and merge through a buffer", sorting.Merge)
	r.addSort("quick", "Lomuto partition around the last element", sorting.Quick)

	r.add(Algorithm{
		Name:        "linear",
		Category:    Search,
		Description: "probe every element in order",
		New: func(in Input) (step.Producer, error) {
			return search.Linear(values(in), in.Target), nil
		},
	})
	r.add(Algorithm{
		Name:        "binary",
		Category:    Search,
		Description: "halve a sorted range around the middle probe",
		New: func(in Input) (step.Producer, error) {
			v := values(in)
			slices.Sort(v)
			return search.Binary(v, in.Target)
		},
	})

	r.add(Algorithm{
		Name:        "bfs",
		Category:    Graph,
		Description: "breadth-first traversal with a queue",
		New: func(in Input) (step.Producer, error) {
			g, err := buildGraph(in, false)
			if err != nil {
				return nil, err
			}
			return graph.BFS(g, in.Start)
		},
	})
	r.add(Algorithm{
		Name:        "dfs",
		Category:    Graph,
		Description: "depth-first traversal with an explicit stack",
		New: func(in Input) (step.Producer, error) {
			g, err := buildGraph(in, false)
			if err != nil {
				return nil, err
			}
			return graph.DFS(g, in.Start)
		},
	})
	r.add(Algorithm{
		Name:        "shortest-path",
		Category:    Graph,
		Description: "unweighted shortest path by BFS parent links",
		New: func(in Input) (step.Producer, error) {
			g, err := buildGraph(in, true)
			if err != nil {
				return nil, err
			}
			end := in.End
			if !in.HasEnd {
				end = slices.Max(g.Nodes())
			}
			return graph.ShortestPath(g, in.Start, end)
		},
	})

	r.add(Algorithm{
		Name:        "bst-insert",
		Category:    Tree,
		Description: "insert the target into a binary search tree",
		New: func(in Input) (step.Producer, error) {
			return tree.New(values(in)...).Insert(in.Target), nil
		},
	})
	r.add(Algorithm{
		Name:        "bst-search",
		Category:    Tree,
		Description: "search a binary search tree for the target",
		New: func(in Input) (step.Producer, error) {
			return tree.New(values(in)...).Search(in.Target), nil
		},
	})
	r.add(Algorithm{
		Name:        "bst-delete",
		Category:    Tree,
		Description: "delete the target from a binary search tree",
		New: func(in Input) (step.Producer, error) {
			return tree.New(values(in)...).Delete(in.Target), nil
		},
	})

	r.add(Algorithm{
		Name:        "for",
		Category:    Loops,
		Description: "count from 1 to the limit",
		New: func(in Input) (step.Producer, error) {
			return loops.For(orDefault(in.Limit, DefaultLimit))
		},
	})
	r.add(Algorithm{
		Name:        "nested",
		Category:    Loops,
		Description: "outer and inner loop printing products",
		New: func(in Input) (step.Producer, error) {
			return loops.Nested(orDefault(in.Limit, DefaultInner), orDefault(in.Inner, DefaultInner))
		},
	})
	r.add(Algorithm{
		Name:        "while",
		Category:    Loops,
		Description: "count down from the limit",
		New: func(in Input) (step.Producer, error) {
			return loops.While(orDefault(in.Limit, DefaultLimit))
		},
	})
	r.add(Algorithm{
		Name:        "pattern",
		Category:    Loops,
		Description: "star and number patterns with nested loops",
		New: func(in Input) (step.Producer, error) {
			p := loops.Pattern(in.Pattern)
			if p == "" {
				p = loops.RightTriangle
			}
			return loops.Stars(p, orDefault(in.Limit, DefaultLimit))
		},
	})

	return r
}

func (r *Registry) add(a Algorithm) { r.algorithms[a.Name] = a }

func (r *Registry) addSort(name, desc string, fn func([]int) step.Producer) {
	r.add(Algorithm{
		Name:        name,
		Category:    Sorting,
		Description: desc,
		New: func(in Input) (step.Producer, error) {
			return fn(values(in)), nil
		},
	})
}

func (r *Registry) Get(name string) (Algorithm, error) {
	a, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("unknown algorithm: %s", name)
	}
	return a, nil
}

// Producer looks up name and builds its producer from in.
func (r *Registry) Producer(name string, in Input) (step.Producer, error) {
	a, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	p, err := a.New(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// List returns every algorithm ordered by category, then name.
func (r *Registry) List() []Algorithm {
	out := make([]Algorithm, 0, len(r.algorithms))
	for _, a := range r.algorithms {
		out = append(out, a)
	}
	order := map[Category]int{Sorting: 0, Search: 1, Graph: 2, Tree: 3, Loops: 4}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return order[out[i].Category] < order[out[j].Category]
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for _, a := range r.List() {
		names = append(names, a.Name)
	}
	return names
}

// RandomValues returns 6 to 12 values in 10..99.
func RandomValues(seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, 6+rng.Intn(7))
	for i := range out {
		out[i] = 10 + rng.Intn(90)
	}
	return out
}

func values(in Input) []int {
	if len(in.Values) == 0 {
		return RandomValues(in.Seed)
	}
	return slices.Clone(in.Values)
}

// buildGraph parses an explicit edge list when given. Otherwise it generates
// a seeded random graph, or a random connected tree when connected is set
// and no node count was requested.
func buildGraph(in Input, connected bool) (*graph.Graph, error) {
	n := orDefault(in.Nodes, graph.DefaultNodes)
	if err := graph.CheckNodes(n); err != nil {
		return nil, err
	}
	if in.Edges != "" {
		return graph.Parse(n, in.Edges)
	}
	if connected && in.Nodes == 0 {
		return graph.RandomConnected(in.Seed), nil
	}
	p := in.EdgeProb
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("edge probability must be in [0, 1], got %g", p)
	}
	if p == 0 {
		p = graph.DefaultEdgeProb
	}
	return graph.Random(n, p, in.Seed), nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
