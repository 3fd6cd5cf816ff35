package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/tree"
)

func TestTreeDOT(t *testing.T) {
	bst := tree.New(50, 30, 70, 60)
	final, ok := step.Final(bst.Search(60))
	require.True(t, ok)

	dot := TreeDOT(final)
	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	for _, v := range []string{`label="50"`, `label="30"`, `label="70"`, `label="60"`} {
		assert.Contains(t, dot, v)
	}
	assert.Contains(t, dot, "fillcolor=palegreen", "found node should be highlighted")
	assert.Contains(t, dot, "n1 -> n2;")
	assert.Contains(t, dot, "n1 -> n3;")
	assert.Contains(t, dot, "n3 -> n4;")
	assert.Contains(t, dot, "n3r [style=invis]")
}

func TestTreeDOT_LoneChildPlaceholder(t *testing.T) {
	s := step.Step{Tree: []step.TreeNode{
		{ID: 1, Value: 10, Col: 0, Right: 2},
		{ID: 2, Value: 20, Col: 1, Depth: 1},
	}}
	dot := TreeDOT(s)
	assert.Contains(t, dot, "n1l [style=invis]")
	assert.Contains(t, dot, "n1 -> n2;")
}

func TestGraphDOT(t *testing.T) {
	g, err := graph.Parse(4, "0-1,1-2,0-3")
	require.NoError(t, err)
	p, err := graph.ShortestPath(g, 2, 3)
	require.NoError(t, err)
	final, _ := step.Final(p)

	dot := GraphDOT(final)
	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.Contains(t, dot, "0 -- 1 [penwidth=3];")
	assert.Contains(t, dot, "1 -- 2 [penwidth=3];")
	assert.Contains(t, dot, "0 -- 3 [penwidth=3];")
	for _, id := range []string{"  0 [", "  1 [", "  2 [", "  3 ["} {
		assert.Contains(t, dot, id)
	}
}

func TestDOT_PicksDrawing(t *testing.T) {
	_, err := DOT(step.Step{Array: []int{1, 2}})
	assert.ErrorIs(t, err, ErrNotRenderable)

	dot, err := DOT(step.Step{Aux: map[string][]int{"nodes": {0}}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "graph"))

	dot, err = DOT(step.Step{Tree: []step.TreeNode{{ID: 1, Value: 5}}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "digraph"))
}
