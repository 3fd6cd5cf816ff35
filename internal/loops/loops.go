// Package loops provides step producers for the basic control-flow
// visualizers: counting loops and star patterns.
package loops

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

var (
	ErrLimit   = errors.New("loops: limit must be between 1 and 50")
	ErrRows    = errors.New("loops: rows must be between 1 and 20")
	ErrPattern = errors.New("loops: unknown pattern")
)

const (
	MaxLimit = 50
	MaxRows  = 20
)

func checkLimit(n int) error {
	if n < 1 || n > MaxLimit {
		return fmt.Errorf("%w: %d", ErrLimit, n)
	}
	return nil
}

type trace struct {
	out  strings.Builder
	vars map[string]int
	c    step.Counters
}

func newTrace() *trace {
	return &trace{vars: make(map[string]int)}
}

func (t *trace) snap(phase step.Phase, msg string) step.Step {
	vars := make(map[string]int, len(t.vars))
	for k, v := range t.vars {
		vars[k] = v
	}
	return step.Step{
		Phase:    phase,
		Message:  msg,
		Vars:     vars,
		Output:   t.out.String(),
		Counters: t.c,
		Result:   -1,
	}
}

// For counts i from 1 to limit. Every iteration yields a condition check
// and a body step that appends i to the output.
func For(limit int) (step.Producer, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return func(yield func(step.Step) bool) {
		t := newTrace()
		t.vars["limit"] = limit
		if !yield(t.snap(step.PhaseStart, fmt.Sprintf("for i := 1; i <= %d; i++", limit))) {
			return
		}
		for i := 1; ; i++ {
			t.vars["i"] = i
			t.c.Comparisons++
			if !yield(t.snap(step.PhaseCondition, fmt.Sprintf("%d <= %d is %t", i, limit, i <= limit))) {
				return
			}
			if i > limit {
				break
			}
			t.c.Pass++
			t.out.WriteString(strconv.Itoa(i) + " ")
			if !yield(t.snap(step.PhaseBody, fmt.Sprintf("print %d", i))) {
				return
			}
		}
		yield(t.snap(step.PhaseDone, fmt.Sprintf("loop ran %d times", limit)))
	}, nil
}

// Nested runs an inner loop of inner iterations for each of outer rows,
// printing i*j.
func Nested(outer, inner int) (step.Producer, error) {
	if err := checkLimit(outer); err != nil {
		return nil, err
	}
	if err := checkLimit(inner); err != nil {
		return nil, err
	}
	return func(yield func(step.Step) bool) {
		t := newTrace()
		t.vars["outer"], t.vars["inner"] = outer, inner
		if !yield(t.snap(step.PhaseStart, fmt.Sprintf("nested loop %dx%d", outer, inner))) {
			return
		}
		for i := 1; i <= outer; i++ {
			t.vars["i"] = i
			delete(t.vars, "j")
			t.c.Pass++
			if !yield(t.snap(step.PhaseOuter, fmt.Sprintf("outer i = %d", i))) {
				return
			}
			for j := 1; j <= inner; j++ {
				t.vars["j"] = j
				t.c.Comparisons++
				t.out.WriteString(strconv.Itoa(i*j) + " ")
				if !yield(t.snap(step.PhaseInner, fmt.Sprintf("inner j = %d, print %d", j, i*j))) {
					return
				}
			}
			t.out.WriteString("\n")
		}
		yield(t.snap(step.PhaseDone, fmt.Sprintf("%d inner iterations", outer*inner)))
	}, nil
}

// While counts n down from limit until the condition n > 0 fails.
func While(limit int) (step.Producer, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return func(yield func(step.Step) bool) {
		t := newTrace()
		n := limit
		t.vars["n"] = n
		if !yield(t.snap(step.PhaseStart, fmt.Sprintf("n := %d; for n > 0", limit))) {
			return
		}
		for {
			t.vars["n"] = n
			t.c.Comparisons++
			if !yield(t.snap(step.PhaseCondition, fmt.Sprintf("%d > 0 is %t", n, n > 0))) {
				return
			}
			if n <= 0 {
				break
			}
			t.out.WriteString(strconv.Itoa(n) + " ")
			n--
			t.c.Pass++
			t.vars["n"] = n
			if !yield(t.snap(step.PhaseBody, fmt.Sprintf("print, then n = %d", n))) {
				return
			}
		}
		yield(t.snap(step.PhaseDone, fmt.Sprintf("loop ran %d times", limit)))
	}, nil
}
