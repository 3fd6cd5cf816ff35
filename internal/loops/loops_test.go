package loops

import (
	"errors"
	"testing"

	"github.com/san-kum/algoviz/internal/step"
)

func TestFor(t *testing.T) {
	p, err := For(3)
	if err != nil {
		t.Fatal(err)
	}
	steps := step.Collect(p)
	final := steps[len(steps)-1]

	if final.Output != "1 2 3 " {
		t.Errorf("expected output %q, got %q", "1 2 3 ", final.Output)
	}
	// start + 4 conditions + 3 bodies + done
	if len(steps) != 9 {
		t.Errorf("expected 9 steps, got %d", len(steps))
	}
	if final.Vars["i"] != 4 {
		t.Errorf("expected i to end at 4, got %d", final.Vars["i"])
	}
}

func TestLimits(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"for zero", func() error { _, err := For(0); return err }},
		{"for too large", func() error { _, err := For(51); return err }},
		{"while negative", func() error { _, err := While(-1); return err }},
		{"nested inner", func() error { _, err := Nested(2, 60); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrLimit) {
				t.Errorf("expected ErrLimit, got %v", err)
			}
		})
	}
}

func TestWhile(t *testing.T) {
	p, _ := While(3)
	final, _ := step.Final(p)

	if final.Output != "3 2 1 " {
		t.Errorf("unexpected output %q", final.Output)
	}
	if final.Vars["n"] != 0 {
		t.Errorf("expected n = 0, got %d", final.Vars["n"])
	}
	if final.Counters.Pass != 3 {
		t.Errorf("expected 3 iterations, got %d", final.Counters.Pass)
	}
}

func TestNested(t *testing.T) {
	p, _ := Nested(2, 3)
	final, _ := step.Final(p)

	expected := "1 2 3 \n2 4 6 \n"
	if final.Output != expected {
		t.Errorf("expected %q, got %q", expected, final.Output)
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		pattern  Pattern
		expected string
	}{
		{RightTriangle, "*\n* *\n* * *\n"},
		{Square, "* * *\n* * *\n* * *\n"},
		{InvertedTriangle, "* * *\n* *\n*\n"},
		{NumberTriangle, "1\n1 2\n1 2 3\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			p, err := Stars(tt.pattern, 3)
			if err != nil {
				t.Fatal(err)
			}
			steps := step.Collect(p)
			final := steps[len(steps)-1]
			if final.Output != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, final.Output)
			}
			if steps[0].Phase != step.PhaseOuter {
				t.Errorf("expected first step outer, got %s", steps[0].Phase)
			}
			if final.Phase != step.PhaseDone {
				t.Errorf("expected done, got %s", final.Phase)
			}
		})
	}
}

func TestStars_Errors(t *testing.T) {
	if _, err := Stars("diamond", 3); !errors.Is(err, ErrPattern) {
		t.Errorf("expected ErrPattern, got %v", err)
	}
	if _, err := Stars(Square, 21); !errors.Is(err, ErrRows) {
		t.Errorf("expected ErrRows, got %v", err)
	}
}
