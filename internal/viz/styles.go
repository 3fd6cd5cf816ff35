package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/step"
)

// palette maps highlight roles and chrome to terminal colors.
type palette struct {
	Title   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Error   lipgloss.Color
	Roles   map[step.Role]lipgloss.Color
}

var colors = palette{
	Title:   lipgloss.Color("86"),
	Text:    lipgloss.Color("252"),
	Muted:   lipgloss.Color("242"),
	Running: lipgloss.Color("82"),
	Paused:  lipgloss.Color("220"),
	Error:   lipgloss.Color("196"),
	Roles: map[step.Role]lipgloss.Color{
		step.RoleCompare:   lipgloss.Color("220"),
		step.RoleSwap:      lipgloss.Color("203"),
		step.RolePivot:     lipgloss.Color("213"),
		step.RoleMin:       lipgloss.Color("213"),
		step.RoleKey:       lipgloss.Color("213"),
		step.RoleLow:       lipgloss.Color("75"),
		step.RoleMid:       lipgloss.Color("220"),
		step.RoleHigh:      lipgloss.Color("75"),
		step.RoleDiscard:   lipgloss.Color("238"),
		step.RoleSorted:    lipgloss.Color("82"),
		step.RoleCurrent:   lipgloss.Color("220"),
		step.RoleVisited:   lipgloss.Color("75"),
		step.RoleQueued:    lipgloss.Color("245"),
		step.RoleFound:     lipgloss.Color("82"),
		step.RoleSuccessor: lipgloss.Color("208"),
		step.RolePath:      lipgloss.Color("82"),
		step.RolePointer:   lipgloss.Color("86"),
		step.RoleRemoved:   lipgloss.Color("203"),
	},
}

// rolePriority decides which highlight wins when an index carries several
// roles.
var rolePriority = []step.Role{
	step.RoleSwap, step.RoleRemoved, step.RoleFound, step.RoleCurrent,
	step.RolePivot, step.RoleMin, step.RoleKey, step.RoleSuccessor,
	step.RoleCompare, step.RoleMid, step.RoleLow, step.RoleHigh,
	step.RolePath, step.RoleSorted, step.RoleVisited, step.RoleQueued,
	step.RoleDiscard,
}

func roleStyle(r step.Role) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch r {
	case "":
		return s.Foreground(colors.Text)
	case step.RoleDiscard:
		s = s.Faint(true)
	case step.RoleSorted, step.RoleVisited, step.RoleQueued:
	default:
		s = s.Bold(true)
	}
	if c, ok := colors.Roles[r]; ok {
		s = s.Foreground(c)
	}
	return s
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colors.Title).MarginBottom(1)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colors.Muted)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colors.Error)
}

func statusStyle(running bool) lipgloss.Style {
	if running {
		return lipgloss.NewStyle().Bold(true).Foreground(colors.Running)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colors.Paused)
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(13)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	chartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)
