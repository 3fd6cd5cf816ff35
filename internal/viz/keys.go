package viz

import "github.com/charmbracelet/bubbles/key"

type playKeys struct {
	Start  key.Binding
	Step   key.Binding
	Reset  key.Binding
	Faster key.Binding
	Slower key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newPlayKeys() playKeys {
	return playKeys{
		Start:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Step:   key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "step")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// running disables the manual controls while playback is active.
func (k *playKeys) running(on bool) {
	k.Step.SetEnabled(!on)
	k.Reset.SetEnabled(!on)
}

func (k playKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Step, k.Reset, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k playKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Step, k.Reset},
		{k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}

type structureKeys struct {
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func newStructureKeys() structureKeys {
	return structureKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear input")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k structureKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Quit}
}

func (k structureKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
