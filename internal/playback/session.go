package playback

import (
	"errors"
	"sync"

	"github.com/san-kum/algoviz/internal/step"
)

var (
	ErrAlreadyRunning = errors.New("playback: a run is already in progress")
	ErrRunning        = errors.New("playback: pause before stepping manually")
	ErrFinished       = errors.New("playback: run finished, reset to replay")
	ErrMaxSteps       = errors.New("playback: step limit exceeded")
)

// Session is the single-run state machine behind a visualizer. The running
// flag is the only thing that gates controls: while it is set, Start and
// StepOnce are rejected and Tick advances the producer.
type Session struct {
	mu       sync.Mutex
	factory  func() step.Producer
	it       *step.Iterator
	current  step.Step
	running  bool
	finished bool
}

// NewSession pulls the first step right away so Current shows the initial
// state before playback starts.
func NewSession(factory func() step.Producer) *Session {
	s := &Session{factory: factory}
	s.reset()
	return s
}

func (s *Session) reset() {
	if s.it != nil {
		s.it.Stop()
	}
	s.it = step.Pull(s.factory())
	s.running = false
	s.finished = false
	s.current = step.Step{}
	if first, ok := s.it.Next(); ok {
		s.current = first
		s.finished = first.Done()
	} else {
		s.finished = true
	}
}

// Start begins playback. A finished session restarts from a fresh producer.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}
	if s.finished {
		s.reset()
		if s.finished {
			return ErrFinished
		}
	}
	s.running = true
	return nil
}

// Pause clears the running flag. The current step stays as it is.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// Reset discards progress and rebuilds the producer.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Tick advances one step while running. It reports false when nothing was
// applied, either because the session is paused or the run just ended.
func (s *Session) Tick() (step.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return s.current, false
	}
	return s.advance()
}

// StepOnce advances one step manually while paused.
func (s *Session) StepOnce() (step.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.current, ErrRunning
	}
	if s.finished {
		return s.current, ErrFinished
	}
	st, _ := s.advance()
	return st, nil
}

func (s *Session) advance() (step.Step, bool) {
	next, ok := s.it.Next()
	if !ok {
		s.running = false
		s.finished = true
		return s.current, false
	}
	s.current = next
	if next.Done() {
		s.running = false
		s.finished = true
	}
	return next, true
}

func (s *Session) Current() step.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Applied is the number of steps applied since the last reset, counting the
// initial one.
func (s *Session) Applied() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.it.Count()
}

// Close releases the producer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.it.Stop()
	s.running = false
}
