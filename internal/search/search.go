// Package search provides step producers for linear and binary search.
package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

var ErrUnsorted = errors.New("search: binary search needs sorted input")

// Linear probes each element in order. The terminal step is found with the
// matching index, or not found with result -1.
func Linear(values []int, target int) step.Producer {
	return func(yield func(step.Step) bool) {
		a := slices.Clone(values)
		var c step.Counters
		snap := func(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
			return step.Step{
				Phase:    phase,
				Message:  msg,
				Array:    slices.Clone(a),
				Marks:    marks,
				Counters: c,
				Result:   -1,
				Vars:     map[string]int{"target": target},
			}
		}

		if len(a) == 0 {
			yield(snap(step.PhaseNotFound, "empty input", nil))
			return
		}
		if !yield(snap(step.PhaseStart, fmt.Sprintf("search for %d", target), nil)) {
			return
		}

		for i, v := range a {
			c.Probes++
			c.Comparisons++
			msg := fmt.Sprintf("check index %d", i)
			if !yield(snap(step.PhaseProbe, msg, step.Marks(step.RoleCurrent, i, step.RoleDiscard, step.Range(0, i-1)))) {
				return
			}
			if v == target {
				s := snap(step.PhaseFound, fmt.Sprintf("found %d at index %d", target, i), step.Marks(step.RoleFound, i))
				s.Result, s.Found = i, true
				yield(s)
				return
			}
		}
		yield(snap(step.PhaseNotFound, fmt.Sprintf("%d not found", target), step.Marks(step.RoleDiscard, step.Range(0, len(a)-1))))
	}
}

// Binary returns ErrUnsorted for input that is not in ascending order.
// Each probe yields one step, so a run takes at most floor(log2 n)+1 probes.
func Binary(values []int, target int) (step.Producer, error) {
	if !slices.IsSorted(values) {
		return nil, ErrUnsorted
	}
	a := slices.Clone(values)

	return func(yield func(step.Step) bool) {
		var c step.Counters
		lo, hi := 0, len(a)-1
		snap := func(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
			if marks == nil {
				marks = make(map[step.Role][]int)
			}
			discard := append(step.Range(0, lo-1), step.Range(hi+1, len(a)-1)...)
			if len(discard) > 0 {
				marks[step.RoleDiscard] = discard
			}
			return step.Step{
				Phase:    phase,
				Message:  msg,
				Array:    slices.Clone(a),
				Marks:    marks,
				Counters: c,
				Result:   -1,
				Vars:     map[string]int{"target": target, "low": lo, "high": hi},
			}
		}

		if len(a) == 0 {
			yield(snap(step.PhaseNotFound, "empty input", nil))
			return
		}
		if !yield(snap(step.PhaseStart, fmt.Sprintf("search for %d", target), step.Marks(step.RoleLow, lo, step.RoleHigh, hi))) {
			return
		}

		for lo <= hi {
			mid := (lo + hi) / 2
			c.Probes++
			c.Comparisons++
			msg := fmt.Sprintf("probe index %d (%d)", mid, a[mid])
			if !yield(snap(step.PhaseProbe, msg, step.Marks(step.RoleLow, lo, step.RoleMid, mid, step.RoleHigh, hi))) {
				return
			}

			switch {
			case a[mid] == target:
				s := snap(step.PhaseFound, fmt.Sprintf("found %d at index %d", target, mid), step.Marks(step.RoleFound, mid))
				s.Result, s.Found = mid, true
				yield(s)
				return
			case a[mid] < target:
				lo = mid + 1
				msg = fmt.Sprintf("%d < %d, discard left half", a[mid], target)
			default:
				hi = mid - 1
				msg = fmt.Sprintf("%d > %d, discard right half", a[mid], target)
			}
			if lo <= hi {
				if !yield(snap(step.PhaseDiscard, msg, step.Marks(step.RoleLow, lo, step.RoleHigh, hi))) {
					return
				}
			}
		}
		yield(snap(step.PhaseNotFound, fmt.Sprintf("%d not found", target), nil))
	}, nil
}
