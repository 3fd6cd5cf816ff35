// Package structures models the containers behind the manual-control
// visualizers. Every operation validates its input, mutates the container
// and returns the highlight steps to animate; the last step always shows the
// resulting state.
package structures

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/algoviz/internal/step"
)

var (
	ErrNotNumeric      = errors.New("structures: value is not numeric")
	ErrIndexRange      = errors.New("structures: index out of range")
	ErrEmpty           = errors.New("structures: structure is empty")
	ErrFull            = errors.New("structures: structure is full")
	ErrInvalidCapacity = errors.New("structures: capacity must be positive")
	ErrUnknownKind     = errors.New("structures: unknown structure")
	ErrUnknownCommand  = errors.New("structures: unknown command")
)

const DefaultCapacity = 8

type Kind string

const (
	KindArray         Kind = "array"
	KindStack         Kind = "stack"
	KindQueue         Kind = "queue"
	KindCircularQueue Kind = "circular-queue"
	KindDeque         Kind = "deque"
	KindPriorityQueue Kind = "priority-queue"
	KindSinglyList    Kind = "singly-list"
	KindDoublyList    Kind = "doubly-list"
	KindCircularList  Kind = "circular-list"
	KindBST           Kind = "bst"
	KindGraph         Kind = "graph"
)

// Structure is a container driven by textual commands such as "push 5" or
// "insert head 7".
type Structure interface {
	Kind() Kind
	Len() int
	Snapshot() step.Step
	Apply(cmd string) ([]step.Step, error)
	Usage() []string
}

func Kinds() []Kind {
	return []Kind{
		KindArray, KindStack, KindQueue, KindCircularQueue, KindDeque,
		KindPriorityQueue, KindSinglyList, KindDoublyList, KindCircularList,
		KindBST, KindGraph,
	}
}

// New builds an empty structure. Linked lists and trees are unbounded and
// ignore capacity, a graph is bounded by graph.MaxNodes; every other kind
// rejects a capacity below one.
func New(kind Kind, capacity int) (Structure, error) {
	switch kind {
	case KindArray:
		return NewArray(capacity)
	case KindStack:
		return NewStack(capacity)
	case KindQueue:
		return NewQueue(capacity)
	case KindCircularQueue:
		return NewCircularQueue(capacity)
	case KindDeque:
		return NewDeque(capacity)
	case KindPriorityQueue:
		return NewPriorityQueue(capacity)
	case KindSinglyList, KindDoublyList, KindCircularList:
		return NewList(kind), nil
	case KindBST:
		return NewTree(), nil
	case KindGraph:
		return NewGraph(time.Now().UnixNano()), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func checkCapacity(c int) error {
	if c <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c)
	}
	return nil
}

func parseValue(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return v, nil
}

type command struct {
	op   string
	args []string
}

func parseCommand(line string) (command, error) {
	f := strings.Fields(strings.ToLower(line))
	if len(f) == 0 {
		return command{}, fmt.Errorf("%w: empty", ErrUnknownCommand)
	}
	return command{op: f[0], args: f[1:]}, nil
}

func (c command) arg(i int) string {
	if i < len(c.args) {
		return c.args[i]
	}
	return ""
}

func (c command) value(i int) (int, error) {
	return parseValue(c.arg(i))
}

func (c command) unknown() error {
	return fmt.Errorf("%w: %s", ErrUnknownCommand, c.op)
}

func itemStrings(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// frame is the snapshot every structure builds its steps from.
type frame struct {
	items    []string
	pointers map[string]int
	size     int
	capacity int
}

func (f frame) step(phase step.Phase, msg string, marks map[step.Role][]int) step.Step {
	vars := map[string]int{"size": f.size}
	if f.capacity > 0 {
		vars["capacity"] = f.capacity
	}
	return step.Step{
		Phase:    phase,
		Message:  msg,
		Items:    slices.Clone(f.items),
		Pointers: f.pointers,
		Marks:    marks,
		Vars:     vars,
		Result:   -1,
	}
}

func withValue(s step.Step, v int) step.Step {
	s.Vars["value"] = v
	return s
}
