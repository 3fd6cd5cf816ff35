package step

import "iter"

// Iterator pulls steps from a producer one at a time and numbers them.
type Iterator struct {
	next func() (Step, bool)
	stop func()
	last Step
	n    int
	done bool
}

func Pull(p Producer) *Iterator {
	next, stop := iter.Pull(p)
	return &Iterator{next: next, stop: stop}
}

// Next performs one unit of work and returns the resulting step. The second
// result is false once the producer has nothing left.
func (it *Iterator) Next() (Step, bool) {
	if it.done {
		return it.last, false
	}
	s, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		return it.last, false
	}
	s.Index = it.n
	it.n++
	it.last = s
	return s, true
}

// Stop releases the producer. Further calls to Next report completion.
func (it *Iterator) Stop() {
	if it.done {
		return
	}
	it.done = true
	it.stop()
}

func (it *Iterator) Last() Step { return it.last }
func (it *Iterator) Done() bool { return it.done }
func (it *Iterator) Count() int { return it.n }

// Collect drains p and returns every step it yields.
func Collect(p Producer) []Step {
	var out []Step
	for s := range p {
		s.Index = len(out)
		out = append(out, s)
	}
	return out
}

// Final drains p and returns its last step.
func Final(p Producer) (Step, bool) {
	var (
		last Step
		n    int
	)
	for s := range p {
		s.Index = n
		n++
		last = s
	}
	return last, n > 0
}

// Single returns a producer yielding exactly s.
func Single(s Step) Producer {
	return func(yield func(Step) bool) {
		yield(s)
	}
}
