package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

// run holds the working copy and counters shared by every sort producer.
type run struct {
	a      []int
	c      step.Counters
	sorted []int
}

func newRun(input []int) *run {
	return &run{a: slices.Clone(input)}
}

func (r *run) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	if marks == nil {
		marks = make(map[step.Role][]int)
	}
	if len(r.sorted) > 0 {
		marks[step.RoleSorted] = slices.Clone(r.sorted)
	}
	return step.Step{
		Phase:    phase,
		Message:  msg,
		Array:    slices.Clone(r.a),
		Marks:    marks,
		Counters: r.c,
	}
}

func (r *run) start(name string) step.Step {
	return r.snap(step.PhaseStart, fmt.Sprintf("%s on %d values", name, len(r.a)), nil)
}

func (r *run) finish() step.Step {
	r.sorted = step.Range(0, len(r.a)-1)
	return r.snap(step.PhaseDone, "sorted", nil)
}

func (r *run) markSorted(i int) {
	if !slices.Contains(r.sorted, i) {
		r.sorted = append(r.sorted, i)
	}
}

func (r *run) swap(i, j int) {
	r.a[i], r.a[j] = r.a[j], r.a[i]
	r.c.Swaps++
}

// trivial short-circuits empty and single-element inputs to one done step.
func (r *run) trivial(yield func(step.Step) bool) bool {
	if len(r.a) > 1 {
		return false
	}
	yield(r.finish())
	return true
}
