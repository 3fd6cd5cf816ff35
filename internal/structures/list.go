package structures

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

type listNode struct {
	value int
	next  *listNode
	prev  *listNode
}

// List is a singly, doubly or circular singly linked list. Operations at an
// index walk the next pointers from head and emit one pointer step per node
// passed; a doubly list walks from tail when that is shorter.
type List struct {
	kind Kind
	head *listNode
	tail *listNode
	size int
}

func NewList(kind Kind) *List {
	return &List{kind: kind}
}

func (l *List) Kind() Kind { return l.kind }
func (l *List) Len() int   { return l.size }
func (l *List) Usage() []string {
	return []string{
		"insert head|tail|<index> <value>",
		"delete head|tail|<index>",
		"search <value>",
		"clear",
	}
}

func (l *List) doubly() bool   { return l.kind == KindDoublyList }
func (l *List) circular() bool { return l.kind == KindCircularList }

// Values walks size nodes from head, which also terminates on the ring.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	n := l.head
	for range l.size {
		out = append(out, n.value)
		n = n.next
	}
	return out
}

// Backward walks prev pointers from tail. It is empty unless the list is
// doubly linked.
func (l *List) Backward() []int {
	if !l.doubly() {
		return nil
	}
	var out []int
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.value)
	}
	return out
}

func (l *List) snap(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	ptrs := map[string]int{"head": -1, "tail": -1}
	if l.size > 0 {
		ptrs["head"], ptrs["tail"] = 0, l.size-1
	}
	f := frame{items: itemStrings(l.Values()), pointers: ptrs, size: l.size}
	return f.step(phase, msg, marks)
}

func (l *List) Snapshot() step.Step {
	return l.snap(step.PhaseDone, fmt.Sprintf("%s with %d nodes", l.kind, l.size), nil)
}

// walk emits pointer steps for reaching index i and returns them.
func (l *List) walk(i int, steps []step.Step) []step.Step {
	if l.doubly() && i > l.size/2 {
		for k := l.size - 1; k >= i; k-- {
			steps = append(steps, l.snap(step.PhasePointer, fmt.Sprintf("tail walk at %d", k), step.Marks(step.RolePointer, k)))
		}
		return steps
	}
	for k := 0; k <= i && k < l.size; k++ {
		steps = append(steps, l.snap(step.PhasePointer, fmt.Sprintf("walk at %d", k), step.Marks(step.RolePointer, k)))
	}
	return steps
}

func (l *List) nodeAt(i int) *listNode {
	if l.doubly() && i > l.size/2 {
		n := l.tail
		for k := l.size - 1; k > i; k-- {
			n = n.prev
		}
		return n
	}
	n := l.head
	for range i {
		n = n.next
	}
	return n
}

// breakRing and joinRing let the splice logic work on a nil-terminated
// chain.
func (l *List) breakRing() {
	if l.circular() && l.tail != nil {
		l.tail.next = nil
	}
}

func (l *List) joinRing() {
	if l.circular() && l.tail != nil {
		l.tail.next = l.head
	}
}

func (l *List) InsertAt(i, v int) ([]step.Step, error) {
	if i < 0 || i > l.size {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}

	var steps []step.Step
	if i > 0 && i < l.size {
		steps = l.walk(i-1, steps)
	}

	l.breakRing()
	n := &listNode{value: v}
	if i == 0 {
		n.next = l.head
		if l.head != nil && l.doubly() {
			l.head.prev = n
		}
		l.head = n
		if l.tail == nil {
			l.tail = n
		}
	} else {
		prev := l.nodeAt(i - 1)
		n.next = prev.next
		if l.doubly() {
			n.prev = prev
			if prev.next != nil {
				prev.next.prev = n
			}
		}
		prev.next = n
		if prev == l.tail {
			l.tail = n
		}
	}
	l.size++
	l.joinRing()

	steps = append(steps, l.snap(step.PhaseInsert, fmt.Sprintf("link %d at %d", v, i), step.Marks(step.RoleFound, i)))
	return append(steps, withValue(l.Snapshot(), v)), nil
}

func (l *List) InsertHead(v int) ([]step.Step, error) { return l.InsertAt(0, v) }
func (l *List) InsertTail(v int) ([]step.Step, error) { return l.InsertAt(l.size, v) }

func (l *List) DeleteAt(i int) ([]step.Step, error) {
	if l.size == 0 {
		return nil, ErrEmpty
	}
	if i < 0 || i >= l.size {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}

	var steps []step.Step
	if i > 0 && !(l.doubly() && i == l.size-1) {
		steps = l.walk(i-1, steps)
	}
	steps = append(steps, l.snap(step.PhaseRemove, fmt.Sprintf("unlink node %d", i), step.Marks(step.RoleRemoved, i)))

	l.breakRing()
	var removed *listNode
	if i == 0 {
		removed = l.head
		l.head = removed.next
		if l.head != nil && l.doubly() {
			l.head.prev = nil
		}
	} else {
		prev := l.nodeAt(i - 1)
		removed = prev.next
		prev.next = removed.next
		if removed.next != nil && l.doubly() {
			removed.next.prev = prev
		}
		if removed == l.tail {
			l.tail = prev
		}
	}
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	l.joinRing()

	return append(steps, withValue(l.Snapshot(), removed.value)), nil
}

func (l *List) DeleteHead() ([]step.Step, error) { return l.DeleteAt(0) }
func (l *List) DeleteTail() ([]step.Step, error) { return l.DeleteAt(l.size - 1) }

// Search walks from head; a miss is the final step, not an error.
func (l *List) Search(v int) []step.Step {
	var steps []step.Step
	n := l.head
	for i := range l.size {
		steps = append(steps, l.snap(step.PhasePointer, fmt.Sprintf("check node %d", i), step.Marks(step.RolePointer, i)))
		if n.value == v {
			s := l.snap(step.PhaseFound, fmt.Sprintf("found %d at %d", v, i), step.Marks(step.RoleFound, i))
			s.Result, s.Found = i, true
			return append(steps, s)
		}
		n = n.next
	}
	return append(steps, l.snap(step.PhaseNotFound, fmt.Sprintf("%d not found", v), nil))
}

func (l *List) Apply(line string) ([]step.Step, error) {
	c, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case "insert", "add":
		v, err := c.value(1)
		if err != nil {
			return nil, err
		}
		switch c.arg(0) {
		case "head", "start":
			return l.InsertHead(v)
		case "tail", "end":
			return l.InsertTail(v)
		}
		i, err := c.value(0)
		if err != nil {
			return nil, err
		}
		return l.InsertAt(i, v)
	case "delete", "remove":
		switch c.arg(0) {
		case "head", "start":
			return l.DeleteHead()
		case "tail", "end":
			return l.DeleteTail()
		}
		i, err := c.value(0)
		if err != nil {
			return nil, err
		}
		return l.DeleteAt(i)
	case "search", "find":
		v, err := c.value(0)
		if err != nil {
			return nil, err
		}
		return l.Search(v), nil
	case "clear":
		l.head, l.tail, l.size = nil, nil, 0
		return []step.Step{l.Snapshot()}, nil
	}
	return nil, c.unknown()
}
