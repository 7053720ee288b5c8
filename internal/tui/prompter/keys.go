package prompter

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keybindings for the prompter
type KeyMap struct {
	Quit         key.Binding
	TogglePlay   key.Binding
	Restart      key.Binding
	SpeedUp      key.Binding
	SpeedDown    key.Binding
	FontUp       key.Binding
	FontDown     key.Binding
	HeadingPause key.Binding
	AutoRestart  key.Binding
	Themes       key.Binding
	NudgeUp      key.Binding
	NudgeDown    key.Binding
	GoToTop      key.Binding
	GoToBottom   key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		TogglePlay: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		FontUp: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "bigger"),
		),
		FontDown: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "smaller"),
		),
		HeadingPause: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "heading pause"),
		),
		AutoRestart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto restart"),
		),
		Themes: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "themes"),
		),
		NudgeUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "scroll up"),
		),
		NudgeDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "scroll down"),
		),
		GoToTop: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		GoToBottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// ShortHelp returns keybindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePlay, k.Restart, k.SpeedUp, k.SpeedDown, k.Themes, k.Quit}
}

// FullHelp returns keybindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePlay, k.Restart, k.NudgeUp, k.NudgeDown, k.GoToTop, k.GoToBottom},
		{k.SpeedUp, k.SpeedDown, k.FontUp, k.FontDown},
		{k.HeadingPause, k.AutoRestart, k.Themes, k.Quit},
	}
}
