package tree

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// Insert descends from the root comparing v with each node and attaches a
// new leaf. The done step reports the new node id as its result.
func (t *BST) Insert(v int) step.Producer {
	return func(yield func(step.Step) bool) {
		var c step.Counters
		if !yield(t.snap(step.PhaseStart, fmt.Sprintf("insert %d", v), nil, c)) {
			return
		}

		n := &Node{ID: t.nextID, Value: v}
		if t.root == nil {
			t.nextID++
			t.size++
			t.root = n
			s := t.snap(step.PhaseDone, fmt.Sprintf("%d becomes the root", v), step.Marks(step.RoleFound, n.ID), c)
			s.Result = n.ID
			yield(s)
			return
		}

		cur := t.root
		for {
			c.Comparisons++
			left := v < cur.Value
			dir := "right"
			if left {
				dir = "left"
			}
			msg := fmt.Sprintf("compare %d with %d, go %s", v, cur.Value, dir)
			if !yield(t.snap(step.PhaseCompare, msg, step.Marks(step.RoleCurrent, cur.ID), c)) {
				return
			}

			next := &cur.Right
			if left {
				next = &cur.Left
			}
			if *next == nil {
				t.nextID++
				t.size++
				c.Writes++
				*next = n
				s := t.snap(step.PhaseDone, fmt.Sprintf("insert %d %s of %d", v, dir, cur.Value), step.Marks(step.RoleFound, n.ID), c)
				s.Result = n.ID
				yield(s)
				return
			}
			cur = *next
		}
	}
}

// Search ends with a found step carrying the node id, or a not found step.
func (t *BST) Search(v int) step.Producer {
	return func(yield func(step.Step) bool) {
		var c step.Counters
		if !yield(t.snap(step.PhaseStart, fmt.Sprintf("search for %d", v), nil, c)) {
			return
		}

		var path []int
		for cur := t.root; cur != nil; {
			c.Comparisons++
			c.Probes++
			path = append(path, cur.ID)
			if v == cur.Value {
				s := t.snap(step.PhaseFound, fmt.Sprintf("found %d", v), step.Marks(step.RoleFound, cur.ID, step.RolePath, path), c)
				s.Result, s.Found = cur.ID, true
				yield(s)
				return
			}
			msg := fmt.Sprintf("%d > %d, go right", v, cur.Value)
			next := cur.Right
			if v < cur.Value {
				msg = fmt.Sprintf("%d < %d, go left", v, cur.Value)
				next = cur.Left
			}
			if !yield(t.snap(step.PhaseCompare, msg, step.Marks(step.RoleCurrent, cur.ID, step.RolePath, path), c)) {
				return
			}
			cur = next
		}
		yield(t.snap(step.PhaseNotFound, fmt.Sprintf("%d not in tree", v), step.Marks(step.RolePath, path), c))
	}
}

// Delete removes the first node holding v on the search path. A node with
// two children takes its in-order successor's value and the successor node
// is spliced out instead. The done step reports the id of the node that
// held v, not the spliced successor.
func (t *BST) Delete(v int) step.Producer {
	return func(yield func(step.Step) bool) {
		var c step.Counters
		if !yield(t.snap(step.PhaseStart, fmt.Sprintf("delete %d", v), nil, c)) {
			return
		}

		link := &t.root
		for *link != nil && (*link).Value != v {
			cur := *link
			c.Comparisons++
			msg := fmt.Sprintf("%d > %d, go right", v, cur.Value)
			next := &cur.Right
			if v < cur.Value {
				msg = fmt.Sprintf("%d < %d, go left", v, cur.Value)
				next = &cur.Left
			}
			if !yield(t.snap(step.PhaseCompare, msg, step.Marks(step.RoleCurrent, cur.ID), c)) {
				return
			}
			link = next
		}

		target := *link
		if target == nil {
			yield(t.snap(step.PhaseNotFound, fmt.Sprintf("%d not in tree", v), nil, c))
			return
		}

		c.Comparisons++
		removed := target.ID
		if !yield(t.snap(step.PhaseRemove, fmt.Sprintf("found %d, remove it", v), step.Marks(step.RoleFound, target.ID), c)) {
			return
		}

		if target.Left != nil && target.Right != nil {
			succLink := &target.Right
			for (*succLink).Left != nil {
				succ := *succLink
				if !yield(t.snap(step.PhaseDescend, fmt.Sprintf("look left of %d", succ.Value), step.Marks(step.RoleFound, target.ID, step.RoleCurrent, succ.ID), c)) {
					return
				}
				succLink = &succ.Left
			}
			succ := *succLink
			if !yield(t.snap(step.PhaseSuccessor, fmt.Sprintf("successor is %d", succ.Value), step.Marks(step.RoleFound, target.ID, step.RoleSuccessor, succ.ID), c)) {
				return
			}

			target.Value = succ.Value
			c.Writes++
			if !yield(t.snap(step.PhaseReplace, fmt.Sprintf("copy %d into deleted node", succ.Value), step.Marks(step.RoleFound, target.ID, step.RoleRemoved, succ.ID), c)) {
				return
			}
			link, target = succLink, succ
		}

		child := target.Left
		if child == nil {
			child = target.Right
		}
		*link = child
		t.size--
		c.Writes++

		s := t.snap(step.PhaseDone, fmt.Sprintf("removed %d", v), nil, c)
		s.Result = removed
		s.Found = true
		yield(s)
	}
}
