package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/structures"
)

const maxHistory = 6

type animMsg struct{}

// StructureModel drives a container with typed commands. The highlight
// steps an operation returns are played back one per frame; input is
// blocked until the last one is shown.
type StructureModel struct {
	st      structures.Structure
	input   textinput.Model
	current step.Step
	pending []step.Step
	frame   time.Duration
	history []string

	keys   structureKeys
	help   help.Model
	errMsg string
	errID  int
}

func NewStructureModel(st structures.Structure, frame time.Duration) StructureModel {
	ti := textinput.New()
	ti.Placeholder = st.Usage()[0]
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Focus()

	return StructureModel{
		st:      st,
		input:   ti,
		current: st.Snapshot(),
		frame:   clampDelay(frame),
		keys:    newStructureKeys(),
		help:    help.New(),
	}
}

func (m StructureModel) Init() tea.Cmd { return textinput.Blink }

func (m StructureModel) Animating() bool { return len(m.pending) > 0 }

func (m StructureModel) Current() step.Step { return m.current }

func (m StructureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case animMsg:
		if len(m.pending) == 0 {
			return m, nil
		}
		m.current, m.pending = m.pending[0], m.pending[1:]
		if len(m.pending) > 0 {
			return m, m.nextFrame()
		}
		m.input.Focus()
		return m, textinput.Blink
	case clearErrMsg:
		if msg.id == m.errID {
			m.errMsg = ""
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.Animating() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if !m.Animating() {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m StructureModel) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(time.Time) tea.Msg { return animMsg{} })
}

func (m StructureModel) submit() (StructureModel, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.Reset()

	steps, err := m.st.Apply(line)
	if err != nil {
		m.errID++
		id := m.errID
		m.errMsg = err.Error()
		return m, tea.Tick(errorTTL, func(time.Time) tea.Msg { return clearErrMsg{id: id} })
	}

	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	if len(steps) == 0 {
		m.current = m.st.Snapshot()
		return m, nil
	}
	m.current, m.pending = steps[0], steps[1:]
	if len(m.pending) == 0 {
		return m, nil
	}
	m.input.Blur()
	return m, m.nextFrame()
}

func (m StructureModel) View() string {
	kind := m.st.Kind()
	header := titleStyle().Render(string(kind)) + "  " + mutedStyle().Render(fmt.Sprintf("%d elements", m.st.Len()))

	lines := []string{
		header,
		RenderStructure(m.current, kind),
		"",
		valueStyle.Render(m.current.Message),
		m.input.View(),
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle().Render(m.errMsg))
	}
	if len(m.history) > 0 {
		lines = append(lines, mutedStyle().Render("recent: "+strings.Join(m.history, ", ")))
	}
	lines = append(lines, mutedStyle().Render("commands: "+strings.Join(m.st.Usage(), " | ")))
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n") + "\n"
}
