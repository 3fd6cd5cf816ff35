package playback

import (
	"errors"
	"testing"

	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/step"
)

func bubble() step.Producer { return sorting.Bubble([]int{5, 3, 8, 4, 2}) }

func TestSession_InitialStep(t *testing.T) {
	s := NewSession(bubble)
	defer s.Close()

	cur := s.Current()
	if cur.Phase != step.PhaseStart {
		t.Errorf("expected start step, got %s", cur.Phase)
	}
	if s.Running() || s.Finished() {
		t.Error("new session should be idle")
	}
	if _, ok := s.Tick(); ok {
		t.Error("Tick should not advance while paused")
	}
}

func TestSession_StartTwice(t *testing.T) {
	s := NewSession(bubble)
	defer s.Close()

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
	if _, err := s.StepOnce(); !errors.Is(err, ErrRunning) {
		t.Errorf("expected ErrRunning, got %v", err)
	}
}

func TestSession_RunToCompletion(t *testing.T) {
	s := NewSession(bubble)
	defer s.Close()
	_ = s.Start()

	ticks := 0
	for {
		_, ok := s.Tick()
		if !ok {
			break
		}
		ticks++
		if ticks > 1000 {
			t.Fatal("session never finished")
		}
	}

	if s.Running() {
		t.Error("completion should clear the running flag")
	}
	if !s.Finished() {
		t.Error("expected finished")
	}
	final := s.Current()
	if final.Phase != step.PhaseDone {
		t.Errorf("expected done, got %s", final.Phase)
	}
	want := []int{2, 3, 4, 5, 8}
	for i, v := range want {
		if final.Array[i] != v {
			t.Fatalf("expected %v, got %v", want, final.Array)
		}
	}
	if s.Applied() != ticks+1 {
		t.Errorf("expected %d applied steps, got %d", ticks+1, s.Applied())
	}
}

func TestSession_PauseKeepsState(t *testing.T) {
	s := NewSession(bubble)
	defer s.Close()
	_ = s.Start()
	s.Tick()
	s.Tick()
	s.Pause()

	before := s.Current()
	if _, ok := s.Tick(); ok {
		t.Error("Tick advanced after Pause")
	}
	if s.Current().Index != before.Index {
		t.Error("pause changed the current step")
	}

	next, err := s.StepOnce()
	if err != nil {
		t.Fatal(err)
	}
	if next.Index != before.Index+1 {
		t.Errorf("expected index %d, got %d", before.Index+1, next.Index)
	}
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(bubble)
	defer s.Close()
	_ = s.Start()
	for range 5 {
		s.Tick()
	}
	s.Reset()

	if s.Running() {
		t.Error("reset should stop the run")
	}
	if s.Current().Index != 0 || s.Current().Phase != step.PhaseStart {
		t.Errorf("expected initial step after reset, got %+v", s.Current())
	}
}

func TestSession_StartAfterFinishRestarts(t *testing.T) {
	s := NewSession(bubble)
	defer s.Close()
	_ = s.Start()
	for {
		if _, ok := s.Tick(); !ok {
			break
		}
	}
	if _, err := s.StepOnce(); !errors.Is(err, ErrFinished) {
		t.Errorf("expected ErrFinished, got %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if !s.Running() || s.Current().Phase != step.PhaseStart {
		t.Error("expected a fresh run")
	}
}

func TestSession_TrivialInput(t *testing.T) {
	s := NewSession(func() step.Producer { return sorting.Bubble([]int{1}) })
	defer s.Close()

	if !s.Finished() {
		t.Error("single element input should finish immediately")
	}
	if err := s.Start(); !errors.Is(err, ErrFinished) {
		t.Errorf("expected ErrFinished, got %v", err)
	}
}
