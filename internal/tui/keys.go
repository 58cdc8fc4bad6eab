package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Goals   key.Binding
	Editor  key.Binding
	Rewards key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Tap   key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	More      key.Binding
	Less      key.Binding
	Color     key.Binding
	Delete    key.Binding
	Leave     key.Binding

	Secret key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Goals:   key.NewBinding(key.WithKeys("g", "1"), key.WithHelp("g", "goals")),
		Editor:  key.NewBinding(key.WithKeys("e", "2"), key.WithHelp("e", "editor")),
		Rewards: key.NewBinding(key.WithKeys("r", "3"), key.WithHelp("r", "rewards")),
		NextTab: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev tab")),

		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev goal")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next goal")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Tap:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "tap")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add goal")),
		More:      key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+", "more days")),
		Less:      key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("-", "fewer days")),
		Color:     key.NewBinding(key.WithKeys("c", " ", "right", "left"), key.WithHelp("c", "color")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),

		Secret: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "secret reward")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp returns the footer hints for a tab.
func (k keyMap) shortHelp(tab int) []key.Binding {
	switch tab {
	case tabEditor:
		return []key.Binding{k.NextField, k.Submit, k.Delete, k.Help, k.Quit}
	case tabRewards:
		return []key.Binding{k.Up, k.Down, k.Delete, k.Secret, k.Help, k.Quit}
	default:
		return []key.Binding{k.Left, k.Right, k.Tap, k.Help, k.Quit}
	}
}

// fullHelp groups every binding for the help overlay.
func (k keyMap) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Goals, k.Editor, k.Rewards, k.NextTab, k.PrevTab},
		{k.Left, k.Right, k.Tap, k.Up, k.Down},
		{k.NextField, k.PrevField, k.Submit, k.More, k.Less, k.Color},
		{k.Delete, k.Leave, k.Secret, k.Help, k.Quit},
	}
}
