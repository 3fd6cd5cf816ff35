package structures

import (
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/tree"
)

// Tree drives a binary search tree by hand. Its operations are the same
// producers the tree algorithms run, drained into a batch of steps.
type Tree struct {
	bst *tree.BST
}

func NewTree(values ...int) *Tree {
	return &Tree{bst: tree.New(values...)}
}

func (t *Tree) Kind() Kind    { return KindBST }
func (t *Tree) Len() int      { return t.bst.Len() }
func (t *Tree) Values() []int { return t.bst.InOrder() }
func (t *Tree) Usage() []string {
	return []string{"insert <value>", "search <value>", "delete <value>", "clear"}
}

func (t *Tree) Snapshot() step.Step {
	return sized(t.bst.Snapshot(), t.bst.Len())
}

// drain runs p to the end and stamps the size after the last step on it.
func (t *Tree) drain(p step.Producer) []step.Step {
	steps := step.Collect(p)
	if len(steps) == 0 {
		return []step.Step{t.Snapshot()}
	}
	last := len(steps) - 1
	steps[last] = sized(steps[last], t.bst.Len())
	return steps
}

func (t *Tree) Apply(line string) ([]step.Step, error) {
	c, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case "insert", "add":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		return t.drain(t.bst.Insert(v)), nil
	case "search", "find":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		return t.drain(t.bst.Search(v)), nil
	case "delete", "remove":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		if t.bst.Len() == 0 {
			return nil, ErrEmpty
		}
		return t.drain(t.bst.Delete(v)), nil
	case "clear", "destroy":
		t.bst = tree.New()
		return []step.Step{t.Snapshot()}, nil
	}
	return nil, c.unknown()
}

func sized(s step.Step, n int) step.Step {
	if s.Vars == nil {
		s.Vars = make(map[string]int, 2)
	}
	s.Vars["size"] = n
	return s
}
