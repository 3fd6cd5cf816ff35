package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	MinDelay     = 50 * time.Millisecond
	MaxDelay     = 2 * time.Second
	DefaultDelay = 500 * time.Millisecond
	errorTTL     = 1500 * time.Millisecond
)

// tickMsg carries the generation of the tick loop that scheduled it, so a
// stale loop from before a pause dies out.
type tickMsg struct{ gen int }

type clearErrMsg struct{ id int }

// PlayModel plays one algorithm with start/pause, single step, reset and
// speed controls.
type PlayModel struct {
	title  string
	view   View
	sess   *playback.Session
	series *metrics.Series
	delay  time.Duration
	gen    int

	keys   playKeys
	help   help.Model
	width  int
	errMsg string
	errID  int
}

func NewPlayModel(title, category string, factory func() step.Producer, delay time.Duration) PlayModel {
	m := PlayModel{
		title:  title,
		view:   ViewFor(category),
		sess:   playback.NewSession(factory),
		series: metrics.NewSeries("comparisons"),
		delay:  clampDelay(delay),
		keys:   newPlayKeys(),
		help:   help.New(),
		width:  80,
	}
	m.series.Observe(m.sess.Current())
	return m
}

func clampDelay(d time.Duration) time.Duration {
	return min(max(d, MinDelay), MaxDelay)
}

func (m PlayModel) Init() tea.Cmd { return nil }

func (m PlayModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tickMsg:
		if msg.gen != m.gen || !m.sess.Running() {
			break
		}
		if s, ok := m.sess.Tick(); ok {
			m.series.Observe(s)
		}
		if m.sess.Running() {
			cmd = m.tick()
		}
	case clearErrMsg:
		if msg.id == m.errID {
			m.errMsg = ""
		}
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}
	m.keys.running(m.sess.Running())
	return m, cmd
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (PlayModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sess.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		if m.sess.Running() {
			m.sess.Pause()
			return m, nil
		}
		finished := m.sess.Finished()
		if err := m.sess.Start(); err != nil {
			return m.fail(err)
		}
		if finished {
			m.series.Reset()
			m.series.Observe(m.sess.Current())
		}
		m.gen++
		return m, m.tick()
	case key.Matches(msg, m.keys.Step):
		s, err := m.sess.StepOnce()
		if err != nil {
			return m.fail(err)
		}
		m.series.Observe(s)
	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()
		m.series.Reset()
		m.series.Observe(m.sess.Current())
	case key.Matches(msg, m.keys.Faster):
		m.delay = clampDelay(m.delay / 2)
	case key.Matches(msg, m.keys.Slower):
		m.delay = clampDelay(m.delay * 2)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// fail shows err inline and schedules its removal.
func (m PlayModel) fail(err error) (PlayModel, tea.Cmd) {
	m.errID++
	id := m.errID
	m.errMsg = describe(err)
	return m, tea.Tick(errorTTL, func(time.Time) tea.Msg { return clearErrMsg{id: id} })
}

func describe(err error) string {
	switch {
	case errors.Is(err, playback.ErrFinished):
		return "finished, press r to reset"
	case errors.Is(err, playback.ErrRunning):
		return "pause before stepping"
	}
	return err.Error()
}

func (m PlayModel) Current() step.Step { return m.sess.Current() }
func (m PlayModel) Delay() time.Duration { return m.delay }

func (m PlayModel) status() string {
	switch {
	case m.sess.Running():
		return statusStyle(true).Render("running")
	case m.sess.Finished():
		return statusStyle(true).Render("done")
	}
	return statusStyle(false).Render("paused")
}

func (m PlayModel) View() string {
	cur := m.sess.Current()

	header := titleStyle().Render(m.title) + "  " + m.status() + "  " +
		mutedStyle().Render(fmt.Sprintf("%s/step", m.delay))

	body := Render(cur, m.view, m.width)

	side := []string{CountersView(cur)}
	if pts := m.series.Points(); len(pts) > 1 && m.view != ViewLoops {
		chart := asciigraph.Plot(pts, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("comparisons"))
		side = append(side, chartStyle.Render(chart))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(4).Render(body),
		panelStyle.Render(strings.Join(side, "\n")),
	)

	lines := []string{header, valueStyle.Render(cur.Message), main}
	if m.errMsg != "" {
		lines = append(lines, errorStyle().Render(m.errMsg))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n") + "\n"
}
