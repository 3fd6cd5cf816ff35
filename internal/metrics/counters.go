package metrics

import "github.com/san-kum/algoviz/internal/step"

type Metric interface {
	Name() string
	Observe(s step.Step)
	Value() float64
	Reset()
}

// Counter reports the latest value of one cumulative step counter.
type Counter struct {
	name  string
	pick  func(step.Counters) int
	value int
}

func NewComparisons() *Counter {
	return &Counter{name: "comparisons", pick: func(c step.Counters) int { return c.Comparisons }}
}

func NewSwaps() *Counter {
	return &Counter{name: "swaps", pick: func(c step.Counters) int { return c.Swaps }}
}

func NewWrites() *Counter {
	return &Counter{name: "writes", pick: func(c step.Counters) int { return c.Writes }}
}

func NewProbes() *Counter {
	return &Counter{name: "probes", pick: func(c step.Counters) int { return c.Probes }}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(s step.Step) {
	c.value = c.pick(s.Counters)
}

func (c *Counter) Value() float64 { return float64(c.value) }
func (c *Counter) Reset()         { c.value = 0 }

type StepCount struct {
	n int
}

func NewStepCount() *StepCount { return &StepCount{} }

func (m *StepCount) Name() string      { return "steps" }
func (m *StepCount) Observe(step.Step) { m.n++ }
func (m *StepCount) Value() float64    { return float64(m.n) }
func (m *StepCount) Reset()            { m.n = 0 }

// PeakFrontier tracks the largest traversal frontier seen during a run.
type PeakFrontier struct {
	peak int
}

func NewPeakFrontier() *PeakFrontier { return &PeakFrontier{} }

func (m *PeakFrontier) Name() string { return "peak_frontier" }

func (m *PeakFrontier) Observe(s step.Step) {
	m.peak = max(m.peak, len(s.Frontier))
}

func (m *PeakFrontier) Value() float64 { return float64(m.peak) }
func (m *PeakFrontier) Reset()         { m.peak = 0 }

// Series records one counter per observed step, for plotting.
type Series struct {
	name   string
	pick   func(step.Counters) int
	points []float64
}

func NewSeries(name string) *Series {
	s := &Series{name: name}
	switch name {
	case "swaps":
		s.pick = func(c step.Counters) int { return c.Swaps }
	case "writes":
		s.pick = func(c step.Counters) int { return c.Writes }
	case "probes":
		s.pick = func(c step.Counters) int { return c.Probes }
	default:
		s.name = "comparisons"
		s.pick = func(c step.Counters) int { return c.Comparisons }
	}
	return s
}

func (s *Series) Name() string { return s.name + "_series" }

func (s *Series) Observe(st step.Step) {
	s.points = append(s.points, float64(s.pick(st.Counters)))
}

// Value is the last recorded point.
func (s *Series) Value() float64 {
	if len(s.points) == 0 {
		return 0
	}
	return s.points[len(s.points)-1]
}

func (s *Series) Reset()            { s.points = nil }
func (s *Series) Points() []float64 { return s.points }

// Defaults is the metric set every recorded run carries.
func Defaults() []Metric {
	return []Metric{
		NewComparisons(), NewSwaps(), NewWrites(), NewProbes(), NewStepCount(), NewPeakFrontier(),
	}
}
