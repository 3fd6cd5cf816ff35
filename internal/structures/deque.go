package structures

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/san-kum/algoviz/internal/step"
)

type Deque struct {
	items    []int
	capacity int
}

func NewDeque(capacity int) (*Deque, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Deque{capacity: capacity}, nil
}

func (d *Deque) Kind() Kind    { return KindDeque }
func (d *Deque) Len() int      { return len(d.items) }
func (d *Deque) Values() []int { return slices.Clone(d.items) }
func (d *Deque) Usage() []string {
	return []string{
		"push-front <value>", "push-back <value>",
		"pop-front", "pop-back", "peek-front", "peek-back", "clear",
	}
}

func (d *Deque) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	f := frame{
		items:    itemStrings(d.items),
		pointers: map[string]int{"front": 0, "rear": len(d.items) - 1},
		size:     len(d.items),
		capacity: d.capacity,
	}
	if len(d.items) == 0 {
		f.pointers["front"] = -1
	}
	return f.step(phase, msg, marks)
}

func (d *Deque) Snapshot() step.Step {
	return d.snap(step.PhaseDone, fmt.Sprintf("%d of %d", len(d.items), d.capacity), nil)
}

func (d *Deque) PushFront(v int) ([]step.Step, error) {
	if len(d.items) >= d.capacity {
		return nil, ErrFull
	}
	d.items = slices.Insert(d.items, 0, v)
	return []step.Step{
		d.snap(step.PhaseEnqueue, fmt.Sprintf("push %d at front", v), step.Marks(step.RoleFound, 0)),
		withValue(d.Snapshot(), v),
	}, nil
}

func (d *Deque) PushBack(v int) ([]step.Step, error) {
	if len(d.items) >= d.capacity {
		return nil, ErrFull
	}
	d.items = append(d.items, v)
	return []step.Step{
		d.snap(step.PhaseEnqueue, fmt.Sprintf("push %d at back", v), step.Marks(step.RoleFound, len(d.items)-1)),
		withValue(d.Snapshot(), v),
	}, nil
}

func (d *Deque) PopFront() ([]step.Step, error) {
	if len(d.items) == 0 {
		return nil, ErrEmpty
	}
	v := d.items[0]
	steps := []step.Step{d.snap(step.PhaseDequeue, fmt.Sprintf("pop %d from front", v), step.Marks(step.RoleRemoved, 0))}
	d.items = d.items[1:]
	return append(steps, withValue(d.Snapshot(), v)), nil
}

func (d *Deque) PopBack() ([]step.Step, error) {
	if len(d.items) == 0 {
		return nil, ErrEmpty
	}
	last := len(d.items) - 1
	v := d.items[last]
	steps := []step.Step{d.snap(step.PhaseDequeue, fmt.Sprintf("pop %d from back", v), step.Marks(step.RoleRemoved, last))}
	d.items = d.items[:last]
	return append(steps, withValue(d.Snapshot(), v)), nil
}

func (d *Deque) peek(i int) ([]step.Step, error) {
	if len(d.items) == 0 {
		return nil, ErrEmpty
	}
	v := d.items[i]
	return []step.Step{withValue(d.snap(step.PhaseDone, "peek "+strconv.Itoa(v), step.Marks(step.RoleCurrent, i)), v)}, nil
}

func (d *Deque) Apply(line string) ([]step.Step, error) {
	c, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case "push-front", "pushfront", "push-back", "pushback":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		if c.op == "push-front" || c.op == "pushfront" {
			return d.PushFront(v)
		}
		return d.PushBack(v)
	case "pop-front", "popfront":
		return d.PopFront()
	case "pop-back", "popback":
		return d.PopBack()
	case "peek-front":
		return d.peek(0)
	case "peek-back":
		return d.peek(len(d.items) - 1)
	case "clear":
		d.items = nil
		return []step.Step{d.Snapshot()}, nil
	}
	return nil, c.unknown()
}

type pqEntry struct {
	value    int
	priority int
	seq      int
}

// PriorityQueue dequeues the lowest priority number first. Equal priorities
// leave in arrival order.
type PriorityQueue struct {
	entries  []pqEntry
	capacity int
	seq      int
}

func NewPriorityQueue(capacity int) (*PriorityQueue, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &PriorityQueue{capacity: capacity}, nil
}

func (p *PriorityQueue) Kind() Kind { return KindPriorityQueue }
func (p *PriorityQueue) Len() int   { return len(p.entries) }
func (p *PriorityQueue) Usage() []string {
	return []string{"enqueue <value> <priority>", "dequeue", "peek", "clear"}
}

func (p *PriorityQueue) Values() []int {
	out := make([]int, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.value
	}
	return out
}

func (p *PriorityQueue) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	items := make([]string, len(p.entries))
	for i, e := range p.entries {
		items[i] = fmt.Sprintf("%d:p%d", e.value, e.priority)
	}
	f := frame{
		items:    items,
		pointers: map[string]int{"front": 0, "rear": len(p.entries) - 1},
		size:     len(p.entries),
		capacity: p.capacity,
	}
	if len(p.entries) == 0 {
		f.pointers["front"] = -1
	}
	return f.step(phase, msg, marks)
}

func (p *PriorityQueue) Snapshot() step.Step {
	return p.snap(step.PhaseDone, fmt.Sprintf("%d of %d", len(p.entries), p.capacity), nil)
}

func (p *PriorityQueue) Enqueue(v, priority int) ([]step.Step, error) {
	if len(p.entries) >= p.capacity {
		return nil, ErrFull
	}
	p.seq++
	seq := p.seq
	p.entries = append(p.entries, pqEntry{value: v, priority: priority, seq: seq})
	steps := []step.Step{p.snap(step.PhaseEnqueue, fmt.Sprintf("enqueue %d with priority %d", v, priority), step.Marks(step.RoleFound, len(p.entries)-1))}

	slices.SortStableFunc(p.entries, func(a, b pqEntry) int { return cmp.Compare(a.priority, b.priority) })
	pos := slices.IndexFunc(p.entries, func(e pqEntry) bool { return e.seq == seq })
	steps = append(steps, p.snap(step.PhaseInsert, fmt.Sprintf("%d settles at %d", v, pos), step.Marks(step.RoleFound, pos)))
	return append(steps, withValue(p.Snapshot(), v)), nil
}

func (p *PriorityQueue) Dequeue() ([]step.Step, error) {
	if len(p.entries) == 0 {
		return nil, ErrEmpty
	}
	e := p.entries[0]
	steps := []step.Step{p.snap(step.PhaseDequeue, fmt.Sprintf("dequeue %d (priority %d)", e.value, e.priority), step.Marks(step.RoleRemoved, 0))}
	p.entries = p.entries[1:]
	return append(steps, withValue(p.Snapshot(), e.value)), nil
}

func (p *PriorityQueue) Peek() ([]step.Step, error) {
	if len(p.entries) == 0 {
		return nil, ErrEmpty
	}
	e := p.entries[0]
	return []step.Step{withValue(p.snap(step.PhaseDone, fmt.Sprintf("next is %d", e.value), step.Marks(step.RoleCurrent, 0)), e.value)}, nil
}

func (p *PriorityQueue) Apply(line string) ([]step.Step, error) {
	c, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case "enqueue", "push":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		prio, err := c.value(1)
		if err != nil {
			return nil, err
		}
		return p.Enqueue(v, prio)
	case "dequeue", "pop":
		return p.Dequeue()
	case "peek":
		return p.Peek()
	case "clear":
		p.entries = nil
		return []step.Step{p.Snapshot()}, nil
	}
	return nil, c.unknown()
}
