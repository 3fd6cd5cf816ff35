package structures

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

// Array is a fixed-capacity array. Inserts shift the tail right one slot at
// a time and deletes shift it back left.
type Array struct {
	data     []int
	capacity int
}

func NewArray(capacity int) (*Array, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Array{capacity: capacity}, nil
}

func (a *Array) Kind() Kind      { return KindArray }
func (a *Array) Len() int        { return len(a.data) }
func (a *Array) Values() []int   { return slices.Clone(a.data) }
func (a *Array) Capacity() int   { return a.capacity }
func (a *Array) Usage() []string { return arrayUsage }

var arrayUsage = []string{
	"insert start|middle|end|<index> <value>",
	"delete start|middle|end|<index>",
	"search <value>",
	"clear",
}

func (a *Array) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	s := frame{items: itemStrings(a.data), size: len(a.data), capacity: a.capacity}.step(phase, msg, marks)
	s.Array = slices.Clone(a.data)
	return s
}

func (a *Array) Snapshot() step.Step {
	return a.snap(step.PhaseDone, fmt.Sprintf("%d of %d slots used", len(a.data), a.capacity), nil)
}

// position maps start, middle and end to indexes; anything else must be
// numeric. limit is the largest valid index.
func (a *Array) position(s string, limit int) (int, error) {
	switch s {
	case "start":
		return 0, nil
	case "middle":
		return (limit + 1) / 2, nil
	case "end":
		return limit, nil
	}
	i, err := parseValue(s)
	if err != nil {
		return 0, err
	}
	if i < 0 || i > limit {
		return 0, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	return i, nil
}

func (a *Array) Insert(i, v int) ([]step.Step, error) {
	if len(a.data) >= a.capacity {
		return nil, ErrFull
	}
	if i < 0 || i > len(a.data) {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}

	var steps []step.Step
	a.data = append(a.data, 0)
	for k := len(a.data) - 1; k > i; k-- {
		a.data[k] = a.data[k-1]
		steps = append(steps, a.snap(step.PhaseShift, fmt.Sprintf("shift index %d right", k-1), step.Marks(step.RoleSwap, []int{k - 1, k})))
	}
	a.data[i] = v
	steps = append(steps, a.snap(step.PhaseInsert, fmt.Sprintf("write %d at %d", v, i), step.Marks(step.RoleFound, i)))
	steps = append(steps, withValue(a.Snapshot(), v))
	return steps, nil
}

func (a *Array) Delete(i int) ([]step.Step, error) {
	if len(a.data) == 0 {
		return nil, ErrEmpty
	}
	if i < 0 || i >= len(a.data) {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}

	v := a.data[i]
	steps := []step.Step{a.snap(step.PhaseRemove, fmt.Sprintf("remove %d at %d", v, i), step.Marks(step.RoleRemoved, i))}
	for k := i; k < len(a.data)-1; k++ {
		a.data[k] = a.data[k+1]
		steps = append(steps, a.snap(step.PhaseShift, fmt.Sprintf("shift index %d left", k+1), step.Marks(step.RoleSwap, []int{k, k + 1})))
	}
	a.data = a.data[:len(a.data)-1]
	steps = append(steps, withValue(a.Snapshot(), v))
	return steps, nil
}

// Search probes left to right; a miss is reported by the final step, not as
// an error.
func (a *Array) Search(v int) []step.Step {
	var steps []step.Step
	for i, x := range a.data {
		steps = append(steps, a.snap(step.PhaseProbe, fmt.Sprintf("check index %d", i), step.Marks(step.RoleCurrent, i)))
		if x == v {
			s := a.snap(step.PhaseFound, fmt.Sprintf("found %d at %d", v, i), step.Marks(step.RoleFound, i))
			s.Result, s.Found = i, true
			return append(steps, s)
		}
	}
	return append(steps, a.snap(step.PhaseNotFound, fmt.Sprintf("%d not found", v), nil))
}

func (a *Array) Apply(line string) ([]step.Step, error) {
	c, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case "insert":
		v, err := c.value(1)
		if err != nil {
			return nil, err
		}
		if len(a.data) >= a.capacity {
			return nil, ErrFull
		}
		i, err := a.position(c.arg(0), len(a.data))
		if err != nil {
			return nil, err
		}
		return a.Insert(i, v)
	case "delete", "remove":
		if len(a.data) == 0 {
			return nil, ErrEmpty
		}
		i, err := a.position(c.arg(0), len(a.data)-1)
		if err != nil {
			return nil, err
		}
		return a.Delete(i)
	case "search", "find":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		return a.Search(v), nil
	case "clear":
		a.data = nil
		return []step.Step{a.Snapshot()}, nil
	}
	return nil, c.unknown()
}
