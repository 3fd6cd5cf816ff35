package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// Heap builds a max-heap in place, then repeatedly moves the root behind the
// shrinking heap boundary.
func Heap(input []int) step.Producer {
	return func(yield func(step.Step) bool) {
		r := newRun(input)
		if r.trivial(yield) {
			return
		}
		if !yield(r.start("heap sort")) {
			return
		}

		n := len(r.a)
		for i := n/2 - 1; i >= 0; i-- {
			if !siftDown(r, n, i, yield) {
				return
			}
		}

		for end := n - 1; end > 0; end-- {
			r.c.Pass++
			r.swap(0, end)
			r.markSorted(end)
			msg := fmt.Sprintf("move max %d to position %d", r.a[end], end)
			if !yield(r.snap(step.PhaseSwap, msg, step.Marks(step.RoleSwap, []int{0, end}))) {
				return
			}
			if !siftDown(r, end, 0, yield) {
				return
			}
		}
		yield(r.finish())
	}
}

func siftDown(r *run, size, root int, yield func(step.Step) bool) bool {
	for {
		largest := root
		var children []int
		for _, c := range []int{2*root + 1, 2*root + 2} {
			if c >= size {
				continue
			}
			children = append(children, c)
			r.c.Comparisons++
			if r.a[c] > r.a[largest] {
				largest = c
			}
		}
		if len(children) == 0 {
			return true
		}

		msg := fmt.Sprintf("heapify at %d", root)
		if !yield(r.snap(step.PhaseHeapify, msg, step.Marks(step.RoleCurrent, root, step.RoleCompare, children))) {
			return false
		}
		if largest == root {
			return true
		}

		r.swap(root, largest)
		msg = fmt.Sprintf("sift %d down", r.a[largest])
		if !yield(r.snap(step.PhaseSwap, msg, step.Marks(step.RoleSwap, []int{root, largest}))) {
			return false
		}
		root = largest
	}
}
