package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// Quick uses Lomuto partitioning with the last element of each range as the
// pivot.
func Quick(input []int) step.Producer {
	return func(yield func(step.Step) bool) {
		r := newRun(input)
		if r.trivial(yield) {
			return
		}
		if !yield(r.start("quick sort")) {
			return
		}

		var sortRange func(lo, hi int) bool
		sortRange = func(lo, hi int) bool {
			if lo > hi {
				return true
			}
			if lo == hi {
				r.markSorted(lo)
				return true
			}
			p, ok := partition(r, lo, hi, yield)
			if !ok {
				return false
			}
			return sortRange(lo, p-1) && sortRange(p+1, hi)
		}

		if sortRange(0, len(r.a)-1) {
			yield(r.finish())
		}
	}
}

func partition(r *run, lo, hi int, yield func(step.Step) bool) (int, bool) {
	r.c.Pass++
	pivot := r.a[hi]
	msg := fmt.Sprintf("pivot %d", pivot)
	if !yield(r.snap(step.PhasePivot, msg, step.Marks(step.RolePivot, hi, step.RoleLow, lo, step.RoleHigh, hi))) {
		return 0, false
	}

	i := lo - 1
	for j := lo; j < hi; j++ {
		r.c.Comparisons++
		msg := fmt.Sprintf("compare %d with pivot %d", r.a[j], pivot)
		if !yield(r.snap(step.PhaseCompare, msg, step.Marks(step.RoleCompare, j, step.RolePivot, hi))) {
			return 0, false
		}
		if r.a[j] < pivot {
			i++
			if i != j {
				r.swap(i, j)
				msg := fmt.Sprintf("swap %d and %d", r.a[j], r.a[i])
				if !yield(r.snap(step.PhaseSwap, msg, step.Marks(step.RoleSwap, []int{i, j}, step.RolePivot, hi))) {
					return 0, false
				}
			}
		}
	}

	p := i + 1
	if p != hi {
		r.swap(p, hi)
	}
	r.markSorted(p)
	msg = fmt.Sprintf("place pivot %d at %d", pivot, p)
	if !yield(r.snap(step.PhaseSwap, msg, step.Marks(step.RoleSwap, []int{p, hi}, step.RolePivot, p))) {
		return 0, false
	}
	return p, true
}
