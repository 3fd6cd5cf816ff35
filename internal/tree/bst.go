// Package tree implements a binary search tree whose operations are step
// producers.
//
// Insert, Search and Delete do their work as the returned producer is
// drained. A consumer that stops early leaves the tree as the last applied
// step left it. Marks on tree steps hold node ids, not values.
package tree

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

type Node struct {
	ID    int
	Value int
	Left  *Node
	Right *Node
}

// BST keeps smaller values to the left and equal or larger values to the
// right. Node ids come from a counter that never repeats.
type BST struct {
	root   *Node
	nextID int
	size   int
}

func New(values ...int) *BST {
	t := &BST{nextID: 1}
	for _, v := range values {
		t.Add(v)
	}
	return t
}

func (t *BST) Len() int    { return t.size }
func (t *BST) Root() *Node { return t.root }

// Add inserts v without producing steps and returns the new node id.
func (t *BST) Add(v int) int {
	n := &Node{ID: t.nextID, Value: v}
	t.nextID++
	t.size++

	if t.root == nil {
		t.root = n
		return n.ID
	}
	cur := t.root
	for {
		if v < cur.Value {
			if cur.Left == nil {
				cur.Left = n
				return n.ID
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = n
				return n.ID
			}
			cur = cur.Right
		}
	}
}

func (t *BST) Contains(v int) bool {
	for cur := t.root; cur != nil; {
		switch {
		case v == cur.Value:
			return true
		case v < cur.Value:
			cur = cur.Left
		default:
			cur = cur.Right
		}
	}
	return false
}

func (t *BST) InOrder() []int {
	out := make([]int, 0, t.size)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(t.root)
	return out
}

func (t *BST) Height() int {
	var h func(n *Node) int
	h = func(n *Node) int {
		if n == nil {
			return 0
		}
		return 1 + max(h(n.Left), h(n.Right))
	}
	return h(t.root)
}

// Valid reports whether every left subtree holds smaller values and every
// right subtree equal or larger ones.
func (t *BST) Valid() bool {
	var check func(n *Node, lo, hi *int) bool
	check = func(n *Node, lo, hi *int) bool {
		if n == nil {
			return true
		}
		if (lo != nil && n.Value < *lo) || (hi != nil && n.Value >= *hi) {
			return false
		}
		return check(n.Left, lo, &n.Value) && check(n.Right, &n.Value, hi)
	}
	return check(t.root, nil, nil)
}

// Layout places each node at its in-order column and depth.
func (t *BST) Layout() []step.TreeNode {
	out := make([]step.TreeNode, 0, t.size)
	col := 0
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		walk(n.Left, depth+1)
		tn := step.TreeNode{ID: n.ID, Value: n.Value, Depth: depth, Col: col}
		if n.Left != nil {
			tn.Left = n.Left.ID
		}
		if n.Right != nil {
			tn.Right = n.Right.ID
		}
		out = append(out, tn)
		col++
		walk(n.Right, depth+1)
	}
	walk(t.root, 0)
	return out
}

func (t *BST) snap(phase step.Phase, msg string, marks map[step.Role][]int, c step.Counters) step.Step {
	return step.Step{
		Phase:    phase,
		Message:  msg,
		Tree:     t.Layout(),
		Array:    t.InOrder(),
		Marks:    marks,
		Counters: c,
		Result:   -1,
	}
}

// Snapshot is a done step showing the current shape.
func (t *BST) Snapshot() step.Step {
	return t.snap(step.PhaseDone, fmt.Sprintf("%d nodes", t.size), nil, step.Counters{})
}

func (t *BST) String() string {
	return fmt.Sprint(t.InOrder())
}
