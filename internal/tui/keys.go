package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Move      key.Binding
	Step      key.Binding
	Cycle     key.Binding
	Select    key.Binding
	Save      key.Binding
	Delete    key.Binding
	Import    key.Binding
	Export    key.Binding
	Sample    key.Binding
	Filter    key.Binding
	Theme     key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Move:      key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", "move")),
		Step:      key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust")),
		Cycle:     key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "harmony kind")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save palette")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete palette")),
		Import:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "import")),
		Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Sample:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pick pixel")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter palettes")),
		Theme:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Move, k.Cycle, k.Save, k.Import, k.Export, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Move, k.Cycle, k.Select},
		{k.Save, k.Delete, k.Import, k.Export, k.Sample, k.Filter, k.Theme, k.Close, k.Quit},
	}
}
