package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

// KeyMap defines the in-game key bindings. Letters are not bound: any
// rune key is typed into the game.
type KeyMap struct {
	Quit      key.Binding
	Pause     key.Binding
	Start     key.Binding
	Backspace key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.SpeedUp, k.SpeedDown, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Backspace},
		{k.SpeedUp, k.SpeedDown, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. Quit has no letter alias
// because letters are gameplay input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "slower"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to host actions and typed runes.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. When the key carries
// text it returns ActionNone and the runes to type.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, []rune) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, nil
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, nil
	case key.Matches(msg, km.keys.Start):
		return core.ActionRestart, nil
	case key.Matches(msg, km.keys.Backspace):
		return core.ActionBackspace, nil
	case key.Matches(msg, km.keys.SpeedUp):
		return core.ActionSpeedUp, nil
	case key.Matches(msg, km.keys.SpeedDown):
		return core.ActionSpeedDown, nil
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		return core.ActionNone, msg.Runes
	}
	return core.ActionNone, nil
}
