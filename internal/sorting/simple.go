package sorting

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// Bubble stops early after a pass without swaps.
func Bubble(input []int) step.Producer {
	return func(yield func(step.Step) bool) {
		r := newRun(input)
		if r.trivial(yield) {
			return
		}
		if !yield(r.start("bubble sort")) {
			return
		}

		n := len(r.a)
		for i := 0; i < n-1; i++ {
			r.c.Pass = i + 1
			swapped := false
			for j := 0; j < n-1-i; j++ {
				r.c.Comparisons++
				msg := fmt.Sprintf("compare %d and %d", r.a[j], r.a[j+1])
				if !yield(r.snap(step.PhaseCompare, msg, step.Marks(step.RoleCompare, []int{j, j + 1}))) {
					return
				}
				if r.a[j] > r.a[j+1] {
					r.swap(j, j+1)
					swapped = true
					msg = fmt.Sprintf("swap %d and %d", r.a[j+1], r.a[j])
					if !yield(r.snap(step.PhaseSwap, msg, step.Marks(step.RoleSwap, []int{j, j + 1}))) {
						return
					}
				}
			}
			r.markSorted(n - 1 - i)
			if !swapped {
				break
			}
		}
		yield(r.finish())
	}
}

func Insertion(input []int) step.Producer {
	return func(yield func(step.Step) bool) {
		r := newRun(input)
		if r.trivial(yield) {
			return
		}
		if !yield(r.start("insertion sort")) {
			return
		}

		for i := 1; i < len(r.a); i++ {
			r.c.Pass = i
			key := r.a[i]
			if !yield(r.snap(step.PhaseSelect, fmt.Sprintf("key %d", key), step.Marks(step.RoleKey, i))) {
				return
			}

			j := i - 1
			for j >= 0 {
				r.c.Comparisons++
				msg := fmt.Sprintf("compare %d with key %d", r.a[j], key)
				if !yield(r.snap(step.PhaseCompare, msg, step.Marks(step.RoleCompare, j, step.RoleKey, j+1))) {
					return
				}
				if r.a[j] <= key {
					break
				}
				r.a[j+1] = r.a[j]
				r.c.Writes++
				if !yield(r.snap(step.PhaseShift, fmt.Sprintf("shift %d right", r.a[j]), step.Marks(step.RoleSwap, []int{j, j + 1}))) {
					return
				}
				j--
			}

			r.a[j+1] = key
			r.c.Writes++
			if !yield(r.snap(step.PhaseInsert, fmt.Sprintf("insert %d at %d", key, j+1), step.Marks(step.RoleKey, j+1))) {
				return
			}
		}
		yield(r.finish())
	}
}

func Selection(input []int) step.Producer {
	return func(yield func(step.Step) bool) {
		r := newRun(input)
		if r.trivial(yield) {
			return
		}
		if !yield(r.start("selection sort")) {
			return
		}

		n := len(r.a)
		for i := 0; i < n-1; i++ {
			r.c.Pass = i + 1
			minIdx := i
			for j := i + 1; j < n; j++ {
				r.c.Comparisons++
				msg := fmt.Sprintf("compare %d with minimum %d", r.a[j], r.a[minIdx])
				if !yield(r.snap(step.PhaseCompare, msg, step.Marks(step.RoleCompare, j, step.RoleMin, minIdx))) {
					return
				}
				if r.a[j] < r.a[minIdx] {
					minIdx = j
				}
			}
			if minIdx != i {
				r.swap(i, minIdx)
				msg := fmt.Sprintf("swap %d into position %d", r.a[i], i)
				if !yield(r.snap(step.PhaseSwap, msg, step.Marks(step.RoleSwap, []int{i, minIdx}))) {
					return
				}
			}
			r.markSorted(i)
		}
		yield(r.finish())
	}
}
