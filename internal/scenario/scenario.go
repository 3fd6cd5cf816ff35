package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/structures"
)

// Scenario is a scripted structure session.
type Scenario struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Structure   string   `yaml:"structure" json:"structure"`
	Capacity    int      `yaml:"capacity" json:"capacity"`
	Commands    []string `yaml:"commands" json:"commands"`
}

// CommandResult is the outcome of one command. Err holds the guard message
// when the command was rejected; the snapshot is then the unchanged state.
type CommandResult struct {
	Command  string    `json:"command"`
	Steps    int       `json:"steps"`
	Snapshot step.Step `json:"snapshot"`
	Err      string    `json:"error,omitempty"`
}

type Report struct {
	Name    string          `json:"name"`
	Kind    string          `json:"kind"`
	Results []CommandResult `json:"results"`
	Failed  int             `json:"failed"`
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Structure == "" {
		return nil, errors.New("scenario: structure is required")
	}
	if sc.Capacity == 0 {
		sc.Capacity = structures.DefaultCapacity
	}
	return &sc, nil
}

// Run applies every command in order. Guard errors are recorded per command
// and never stop the run; only an unknown structure or bad capacity fails.
func Run(sc *Scenario) (*Report, error) {
	s, err := structures.New(structures.Kind(sc.Structure), sc.Capacity)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	report := &Report{
		Name:    sc.Name,
		Kind:    sc.Structure,
		Results: make([]CommandResult, 0, len(sc.Commands)),
	}
	for _, cmd := range sc.Commands {
		steps, err := s.Apply(cmd)
		res := CommandResult{Command: cmd, Steps: len(steps), Snapshot: s.Snapshot()}
		if err != nil {
			res.Err = err.Error()
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// Replay runs an ad hoc command list against a fresh structure.
func Replay(kind string, capacity int, commands []string) (*Report, error) {
	return Run(&Scenario{Name: kind, Structure: kind, Capacity: capacity, Commands: commands})
}
