package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/san-kum/algoviz/internal/step"
)

var ErrNotRenderable = errors.New("render: step has no tree or graph")

// fill colors in priority order; the first role that marks a node wins.
var fills = []struct {
	role  step.Role
	color string
}{
	{step.RoleCurrent, "gold"},
	{step.RoleFound, "palegreen"},
	{step.RoleSuccessor, "orange"},
	{step.RoleRemoved, "salmon"},
	{step.RolePath, "palegreen"},
	{step.RoleCompare, "khaki"},
	{step.RoleVisited, "lightblue"},
	{step.RoleQueued, "lightgrey"},
}

func fillFor(s step.Step, id int) string {
	for _, f := range fills {
		if s.Marked(f.role, id) {
			return f.color
		}
	}
	return "white"
}

func header(buf *bytes.Buffer, kind string) {
	fmt.Fprintf(buf, "%s G {\n", kind)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
}

// TreeDOT draws the laid-out tree of s top-down. Node names are node ids,
// labels are values.
func TreeDOT(s step.Step) string {
	var buf bytes.Buffer
	header(&buf, "digraph")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  edge [arrowhead=none];\n")

	nodes := slices.Clone(s.Tree)
	slices.SortFunc(nodes, func(a, b step.TreeNode) int { return a.Col - b.Col })

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  n%d [label=\"%d\", fillcolor=%s];\n", n.ID, n.Value, fillFor(s, n.ID))
	}
	for _, n := range nodes {
		// Invisible placeholders keep a lone right child on the right.
		switch {
		case n.Left != 0 && n.Right != 0:
			fmt.Fprintf(&buf, "  n%d -> n%d;\n  n%d -> n%d;\n", n.ID, n.Left, n.ID, n.Right)
		case n.Left != 0:
			fmt.Fprintf(&buf, "  n%d -> n%d;\n  n%dr [style=invis];\n  n%d -> n%dr [style=invis];\n", n.ID, n.Left, n.ID, n.ID, n.ID)
		case n.Right != 0:
			fmt.Fprintf(&buf, "  n%dl [style=invis];\n  n%d -> n%dl [style=invis];\n  n%d -> n%d;\n", n.ID, n.ID, n.ID, n.ID, n.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// GraphDOT draws the undirected graph carried by s. Edges of the BFS/DFS
// tree and of a found path are drawn bold.
func GraphDOT(s step.Step) string {
	var buf bytes.Buffer
	header(&buf, "graph")
	buf.WriteString("  layout=circo;\n")

	for _, id := range s.Aux["nodes"] {
		fmt.Fprintf(&buf, "  %d [fillcolor=%s];\n", id, fillFor(s, id))
	}

	bold := make(map[step.Edge]bool)
	mark := func(pairs []int) {
		for i := 0; i+1 < len(pairs); i += 2 {
			a, b := min(pairs[i], pairs[i+1]), max(pairs[i], pairs[i+1])
			bold[step.Edge{a, b}] = true
		}
	}
	mark(s.Aux["tree"])
	if path := s.Aux["path"]; len(path) > 1 {
		pairs := make([]int, 0, 2*len(path))
		for i := 1; i < len(path); i++ {
			pairs = append(pairs, path[i-1], path[i])
		}
		mark(pairs)
	}

	for _, e := range s.Edges {
		a, b := min(e[0], e[1]), max(e[0], e[1])
		if bold[step.Edge{a, b}] {
			fmt.Fprintf(&buf, "  %d -- %d [penwidth=3];\n", e[0], e[1])
		} else {
			fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// DOT picks the drawing that fits s.
func DOT(s step.Step) (string, error) {
	if _, ok := s.Aux["nodes"]; ok {
		return GraphDOT(s), nil
	}
	if len(s.Tree) > 0 {
		return TreeDOT(s), nil
	}
	return "", fmt.Errorf("%w: phase %s", ErrNotRenderable, s.Phase)
}

// RenderSVG renders DOT text to SVG with the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
