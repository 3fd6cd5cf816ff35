package structures

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

type Stack struct {
	items    []int
	capacity int
}

func NewStack(capacity int) (*Stack, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Stack{capacity: capacity}, nil
}

func (s *Stack) Kind() Kind    { return KindStack }
func (s *Stack) Len() int      { return len(s.items) }
func (s *Stack) Values() []int { return slices.Clone(s.items) }
func (s *Stack) Usage() []string {
	return []string{"push <value>", "pop", "peek", "clear"}
}

func (s *Stack) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	f := frame{
		items:    itemStrings(s.items),
		pointers: map[string]int{"top": len(s.items) - 1},
		size:     len(s.items),
		capacity: s.capacity,
	}
	return f.step(phase, msg, marks)
}

func (s *Stack) Snapshot() step.Step {
	return s.snap(step.PhaseDone, fmt.Sprintf("%d of %d", len(s.items), s.capacity), nil)
}

func (s *Stack) Push(v int) ([]step.Step, error) {
	if len(s.items) >= s.capacity {
		return nil, fmt.Errorf("%w: stack overflow", ErrFull)
	}
	s.items = append(s.items, v)
	top := len(s.items) - 1
	return []step.Step{
		s.snap(step.PhasePush, fmt.Sprintf("push %d", v), step.Marks(step.RoleFound, top)),
		withValue(s.Snapshot(), v),
	}, nil
}

func (s *Stack) Pop() ([]step.Step, error) {
	if len(s.items) == 0 {
		return nil, fmt.Errorf("%w: stack underflow", ErrEmpty)
	}
	top := len(s.items) - 1
	v := s.items[top]
	steps := []step.Step{s.snap(step.PhasePop, fmt.Sprintf("pop %d", v), step.Marks(step.RoleRemoved, top))}
	s.items = s.items[:top]
	return append(steps, withValue(s.Snapshot(), v)), nil
}

func (s *Stack) Peek() ([]step.Step, error) {
	if len(s.items) == 0 {
		return nil, ErrEmpty
	}
	top := len(s.items) - 1
	v := s.items[top]
	return []step.Step{
		withValue(s.snap(step.PhaseDone, fmt.Sprintf("top is %d", v), step.Marks(step.RoleCurrent, top)), v),
	}, nil
}

func (s *Stack) Apply(line string) ([]step.Step, error) {
	c, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case "push":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		return s.Push(v)
	case "pop":
		return s.Pop()
	case "peek", "top":
		return s.Peek()
	case "clear":
		s.items = nil
		return []step.Step{s.Snapshot()}, nil
	}
	return nil, c.unknown()
}
