package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/shield-runner/internal/games/runner"
)

// KeyMap defines the key bindings for every screen.
// Bindings are matched per screen, so the same key may mean different
// things on the menu and during a run.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Skins   key.Binding
	Pick    key.Binding
	Back    key.Binding
	Jump    key.Binding
	Shield  key.Binding
	Pause   key.Binding
	Home    key.Binding
	Restart key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Skins: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skins"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "h"),
			key.WithHelp("esc/b", "back"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Shield: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "hold/release shield"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "b"),
			key.WithHelp("h", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter", " "),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// screenKeys is the help.KeyMap for a single screen.
type screenKeys []key.Binding

func (s screenKeys) ShortHelp() []key.Binding { return s }

func (s screenKeys) FullHelp() [][]key.Binding { return [][]key.Binding{s} }

// For returns the bindings active on the given screen, for the help bar.
// The shield key is listed only once the shield has unlocked.
func (k KeyMap) For(mode runner.Mode, shield bool) help.KeyMap {
	switch mode {
	case runner.ModeSkins:
		return screenKeys{k.Up, k.Down, k.Select, k.Pick, k.Back, k.Quit}
	case runner.ModePlaying:
		if !shield {
			return screenKeys{k.Jump, k.Pause, k.Mute, k.Quit}
		}
		return screenKeys{k.Jump, k.Shield, k.Pause, k.Mute, k.Quit}
	case runner.ModePaused:
		return screenKeys{withHelp(k.Pause, "p", "resume"), k.Home, k.Mute, k.Quit}
	case runner.ModeGameOver:
		return screenKeys{k.Restart, k.Home, k.Mute, k.Quit}
	default:
		return screenKeys{k.Up, k.Down, k.Select, k.Skins, k.Mute, k.Quit}
	}
}

// withHelp returns a copy of b with different help text.
func withHelp(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}

// pickIndex returns the zero-based index for a digit key, or -1.
func pickIndex(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}
