package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

// Merge is a top-down merge sort. Steps carry the left and right halves still
// to merge and the merge buffer under Aux.
func Merge(input []int) step.Producer {
	return func(yield func(step.Step) bool) {
		r := newRun(input)
		if r.trivial(yield) {
			return
		}
		if !yield(r.start("merge sort")) {
			return
		}

		var sortRange func(lo, hi int) bool
		sortRange = func(lo, hi int) bool {
			if lo >= hi {
				return true
			}
			mid := (lo + hi) / 2
			msg := fmt.Sprintf("split [%d..%d] at %d", lo, hi, mid)
			if !yield(r.snap(step.PhaseSplit, msg, step.Marks(step.RoleLow, lo, step.RoleMid, mid, step.RoleHigh, hi))) {
				return false
			}
			return sortRange(lo, mid) && sortRange(mid+1, hi) && mergeRange(r, lo, mid, hi, yield)
		}

		if sortRange(0, len(r.a)-1) {
			yield(r.finish())
		}
	}
}

func mergeRange(r *run, lo, mid, hi int, yield func(step.Step) bool) bool {
	left := slices.Clone(r.a[lo : mid+1])
	right := slices.Clone(r.a[mid+1 : hi+1])
	buf := make([]int, 0, hi-lo+1)

	snap := func(phase step.Phase, msg string, marks map[step.Role][]int, i, j int) step.Step {
		s := r.snap(phase, msg, marks)
		s.Aux = map[string][]int{
			"left":   slices.Clone(left[i:]),
			"right":  slices.Clone(right[j:]),
			"buffer": slices.Clone(buf),
		}
		return s
	}

	i, j := 0, 0
	r.c.Pass++
	for i < len(left) && j < len(right) {
		r.c.Comparisons++
		msg := fmt.Sprintf("compare %d and %d", left[i], right[j])
		if !yield(snap(step.PhaseCompare, msg, step.Marks(step.RoleCompare, []int{lo + i, mid + 1 + j}), i, j)) {
			return false
		}
		if left[i] <= right[j] {
			buf = append(buf, left[i])
			i++
		} else {
			buf = append(buf, right[j])
			j++
		}
	}
	buf = append(buf, left[i:]...)
	buf = append(buf, right[j:]...)

	msg := fmt.Sprintf("merged [%d..%d]", lo, hi)
	if !yield(snap(step.PhaseMerge, msg, step.Marks(step.RoleLow, lo, step.RoleHigh, hi), len(left), len(right))) {
		return false
	}

	for k, v := range buf {
		r.a[lo+k] = v
		r.c.Writes++
		msg := fmt.Sprintf("write %d to %d", v, lo+k)
		if !yield(snap(step.PhaseWrite, msg, step.Marks(step.RoleSwap, lo+k), len(left), len(right))) {
			return false
		}
	}
	return true
}
