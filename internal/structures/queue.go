package structures

import (
	"fmt"
	"strconv"

	"github.com/san-kum/algoviz/internal/step"
)

// Queue is a linear queue over a fixed buffer. Rear only moves forward, so
// the queue reports full once rear reaches the last slot; both pointers
// reset when the last element is dequeued.
type Queue struct {
	buf         []int
	front, rear int
}

func NewQueue(capacity int) (*Queue, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Queue{buf: make([]int, capacity), front: 0, rear: -1}, nil
}

func (q *Queue) Kind() Kind { return KindQueue }
func (q *Queue) Len() int   { return q.rear - q.front + 1 }
func (q *Queue) Usage() []string {
	return []string{"enqueue <value>", "dequeue", "peek", "clear"}
}

func (q *Queue) Values() []int {
	out := make([]int, 0, q.Len())
	for i := q.front; i <= q.rear; i++ {
		out = append(out, q.buf[i])
	}
	return out
}

func (q *Queue) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	items := make([]string, len(q.buf))
	for i := q.front; i <= q.rear; i++ {
		items[i] = strconv.Itoa(q.buf[i])
	}
	f := frame{
		items:    items,
		pointers: map[string]int{"front": q.front, "rear": q.rear},
		size:     q.Len(),
		capacity: len(q.buf),
	}
	return f.step(phase, msg, marks)
}

func (q *Queue) Snapshot() step.Step {
	return q.snap(step.PhaseDone, fmt.Sprintf("front=%d rear=%d", q.front, q.rear), nil)
}

func (q *Queue) Enqueue(v int) ([]step.Step, error) {
	if q.rear == len(q.buf)-1 {
		return nil, fmt.Errorf("%w: rear is at the last slot", ErrFull)
	}
	q.rear++
	q.buf[q.rear] = v
	return []step.Step{
		q.snap(step.PhaseEnqueue, fmt.Sprintf("enqueue %d at %d", v, q.rear), step.Marks(step.RoleFound, q.rear)),
		withValue(q.Snapshot(), v),
	}, nil
}

func (q *Queue) Dequeue() ([]step.Step, error) {
	if q.Len() == 0 {
		return nil, ErrEmpty
	}
	v := q.buf[q.front]
	steps := []step.Step{q.snap(step.PhaseDequeue, fmt.Sprintf("dequeue %d", v), step.Marks(step.RoleRemoved, q.front))}
	q.front++
	if q.front > q.rear {
		q.front, q.rear = 0, -1
		steps = append(steps, q.snap(step.PhasePointer, "queue empty, reset pointers", nil))
	}
	return append(steps, withValue(q.Snapshot(), v)), nil
}

func (q *Queue) Peek() ([]step.Step, error) {
	if q.Len() == 0 {
		return nil, ErrEmpty
	}
	v := q.buf[q.front]
	return []step.Step{withValue(q.snap(step.PhaseDone, fmt.Sprintf("front is %d", v), step.Marks(step.RoleCurrent, q.front)), v)}, nil
}

func (q *Queue) Apply(line string) ([]step.Step, error) {
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
		return q.Enqueue(v)
	case "dequeue", "pop":
		return q.Dequeue()
	case "peek", "front":
		return q.Peek()
	case "clear":
		q.front, q.rear = 0, -1
		return []step.Step{q.Snapshot()}, nil
	}
	return nil, c.unknown()
}

// CircularQueue wraps front and rear around the buffer. Both pointers are -1
// while empty.
type CircularQueue struct {
	buf         []int
	front, rear int
}

func NewCircularQueue(capacity int) (*CircularQueue, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &CircularQueue{buf: make([]int, capacity), front: -1, rear: -1}, nil
}

func (q *CircularQueue) Kind() Kind { return KindCircularQueue }
func (q *CircularQueue) Usage() []string {
	return []string{"enqueue <value>", "dequeue", "peek", "clear"}
}

func (q *CircularQueue) Len() int {
	switch {
	case q.front == -1:
		return 0
	case q.rear >= q.front:
		return q.rear - q.front + 1
	default:
		return len(q.buf) - q.front + q.rear + 1
	}
}

func (q *CircularQueue) Full() bool {
	return (q.front == 0 && q.rear == len(q.buf)-1) || q.front == q.rear+1
}

// slots returns the occupied buffer indexes from front to rear.
func (q *CircularQueue) slots() []int {
	n := q.Len()
	out := make([]int, n)
	for i := range n {
		out[i] = (q.front + i) % len(q.buf)
	}
	return out
}

func (q *CircularQueue) Values() []int {
	out := make([]int, 0, q.Len())
	for _, i := range q.slots() {
		out = append(out, q.buf[i])
	}
	return out
}

func (q *CircularQueue) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	items := make([]string, len(q.buf))
	for _, i := range q.slots() {
		items[i] = strconv.Itoa(q.buf[i])
	}
	f := frame{
		items:    items,
		pointers: map[string]int{"front": q.front, "rear": q.rear},
		size:     q.Len(),
		capacity: len(q.buf),
	}
	return f.step(phase, msg, marks)
}

func (q *CircularQueue) Snapshot() step.Step {
	return q.snap(step.PhaseDone, fmt.Sprintf("front=%d rear=%d", q.front, q.rear), nil)
}

func (q *CircularQueue) Enqueue(v int) ([]step.Step, error) {
	if q.Full() {
		return nil, ErrFull
	}
	if q.front == -1 {
		q.front = 0
	}
	q.rear = (q.rear + 1) % len(q.buf)
	q.buf[q.rear] = v
	return []step.Step{
		q.snap(step.PhaseEnqueue, fmt.Sprintf("enqueue %d at %d", v, q.rear), step.Marks(step.RoleFound, q.rear)),
		withValue(q.Snapshot(), v),
	}, nil
}

func (q *CircularQueue) Dequeue() ([]step.Step, error) {
	if q.front == -1 {
		return nil, ErrEmpty
	}
	v := q.buf[q.front]
	steps := []step.Step{q.snap(step.PhaseDequeue, fmt.Sprintf("dequeue %d", v), step.Marks(step.RoleRemoved, q.front))}
	if q.front == q.rear {
		q.front, q.rear = -1, -1
	} else {
		q.front = (q.front + 1) % len(q.buf)
	}
	return append(steps, withValue(q.Snapshot(), v)), nil
}

func (q *CircularQueue) Peek() ([]step.Step, error) {
	if q.front == -1 {
		return nil, ErrEmpty
	}
	v := q.buf[q.front]
	return []step.Step{withValue(q.snap(step.PhaseDone, fmt.Sprintf("front is %d", v), step.Marks(step.RoleCurrent, q.front)), v)}, nil
}

func (q *CircularQueue) Apply(line string) ([]step.Step, error) {
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
		return q.Enqueue(v)
	case "dequeue", "pop":
		return q.Dequeue()
	case "peek", "front":
		return q.Peek()
	case "clear":
		q.front, q.rear = -1, -1
		return []step.Step{q.Snapshot()}, nil
	}
	return nil, c.unknown()
}
