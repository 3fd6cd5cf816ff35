package playback

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/algoviz/internal/step"
)

type Metric interface {
	Name() string
	Observe(s step.Step)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s step.Step)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step.Step)

func (f ObserverFunc) OnStep(s step.Step) { f(s) }

type Config struct {
	// Delay between steps. Zero drains the producer as fast as possible.
	Delay    time.Duration
	MaxSteps int
	// Record keeps every applied step in Result.Steps.
	Record bool
}

type Result struct {
	Final      step.Step
	Steps      []step.Step
	StepsTaken int
	Metrics    map[string]float64
	Canceled   bool
}

// Driver plays a producer on a fixed-delay ticker. A driver runs one
// producer at a time.
type Driver struct {
	metrics   []Metric
	observers []Observer
	logger    *log.Logger
	busy      atomic.Bool
}

func New() *Driver {
	return &Driver{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) WithLogger(l *log.Logger) *Driver {
	d.logger = l
	return d
}

func (d *Driver) Run(ctx context.Context, p step.Producer, cfg Config) (*Result, error) {
	return d.run(ctx, p, cfg, nil)
}

// RunWithCallback is Run with a callback after every applied step. Returning
// false from fn ends the run early without error.
func (d *Driver) RunWithCallback(ctx context.Context, p step.Producer, cfg Config, fn func(step.Step) bool) (*Result, error) {
	return d.run(ctx, p, cfg, fn)
}

func (d *Driver) run(ctx context.Context, p step.Producer, cfg Config, fn func(step.Step) bool) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if !d.busy.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer d.busy.Store(false)

	for _, m := range d.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	sess := NewSession(func() step.Producer { return p })
	defer sess.Close()

	d.debug("run started", "delay", cfg.Delay, "max_steps", cfg.MaxSteps)

	apply := func(s step.Step) (bool, error) {
		result.StepsTaken++
		if cfg.MaxSteps > 0 && result.StepsTaken > cfg.MaxSteps {
			result.StepsTaken--
			return false, &step.StepError{Index: s.Index, Phase: s.Phase, Wrapped: ErrMaxSteps}
		}
		for _, m := range d.metrics {
			m.Observe(s)
		}
		for _, o := range d.observers {
			o.OnStep(s)
		}
		if cfg.Record {
			result.Steps = append(result.Steps, s)
		}
		result.Final = s
		if fn != nil {
			return fn(s), nil
		}
		return true, nil
	}

	finish := func() {
		for _, m := range d.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
		d.debug("run finished", "steps", result.StepsTaken, "canceled", result.Canceled)
	}

	if sess.Applied() > 0 {
		cont, err := apply(sess.Current())
		if err != nil || !cont {
			finish()
			return result, err
		}
	}
	if sess.Finished() {
		finish()
		return result, nil
	}
	if err := sess.Start(); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	var tick <-chan time.Time
	if cfg.Delay > 0 {
		ticker := time.NewTicker(cfg.Delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return d.cancel(sess, result, finish, err)
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return d.cancel(sess, result, finish, ctx.Err())
			case <-tick:
			}
		}

		s, ok := sess.Tick()
		if !ok {
			break
		}
		cont, err := apply(s)
		if err != nil {
			sess.Pause()
			finish()
			return result, err
		}
		if !cont {
			sess.Pause()
			break
		}
		if s.Done() {
			break
		}
	}

	finish()
	return result, nil
}

// cancel stops issuing steps. Whatever step was applied last stays as the
// result; nothing is rolled back.
func (d *Driver) cancel(sess *Session, result *Result, finish func(), err error) (*Result, error) {
	sess.Pause()
	result.Canceled = true
	finish()
	return result, err
}

func (d *Driver) debug(msg string, kv ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, kv...)
	}
}

func validateConfig(cfg Config) error {
	if cfg.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", cfg.Delay)
	}
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("max steps must not be negative, got %d", cfg.MaxSteps)
	}
	return nil
}
