package core

import "unicode"

// Action represents a host-level action, abstracted from physical key presses.
// Letters are not actions: they are delivered to the engine as runes.
type Action int

const (
	ActionNone      Action = iota
	ActionBackspace        // Backspace - trim the relation candidate
	ActionPause            // Esc - pause/unpause
	ActionRestart          // Enter - restart after game over
	ActionSpeedUp          // PgUp - raise word speed
	ActionSpeedDown        // PgDown - lower word speed
	ActionQuit             // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionBackspace:
		return "Backspace"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsSupportedLetter reports whether r belongs to the playable alphabet.
// Word packs ship Latin and Cyrillic lists.
func IsSupportedLetter(r rune) bool {
	if !unicode.IsLetter(r) {
		return false
	}
	return unicode.Is(unicode.Latin, r) || unicode.Is(unicode.Cyrillic, r)
}
