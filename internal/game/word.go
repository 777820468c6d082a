package game

import (
	"math/rand"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/wordfall/internal/core"
)

// WordID identifies a word within one arena.
type WordID uint64

// wordHeight is the height of every word in rows.
const wordHeight = 1.0

// Word is a falling word. It is owned by the Arena; everything else
// reaches it through borrowed pointers and mutates it only through methods.
// All mutators are no-ops once the word is destroyed.
type Word struct {
	id       WordID
	text     []rune // displayed text, case may be randomized
	original []rune // lowercase source text
	bonus    BonusKind

	x, y      float64
	width     float64
	baseSpeed float64 // rows per second
	speed     float64

	cursor    int
	destroyed bool
}

func newWord(id WordID, text string, bonus BonusKind, x, speed float64) *Word {
	original := []rune(text)
	for i, r := range original {
		original[i] = unicode.ToLower(r)
	}
	display := make([]rune, len(original))
	copy(display, original)

	return &Word{
		id:        id,
		text:      display,
		original:  original,
		bonus:     bonus,
		x:         x,
		width:     float64(runewidth.StringWidth(string(original))),
		baseSpeed: speed,
		speed:     speed,
	}
}

// ID returns the word identity.
func (w *Word) ID() WordID { return w.id }

// Text returns the displayed text.
func (w *Word) Text() string { return string(w.text) }

// Original returns the lowercase source text.
func (w *Word) Original() string { return string(w.original) }

// Len returns the number of letters.
func (w *Word) Len() int { return len(w.text) }

// Bonus returns the bonus carried by the word, BonusNone for plain words.
func (w *Word) Bonus() BonusKind { return w.bonus }

// IsBonus reports whether completing the word starts a bonus.
func (w *Word) IsBonus() bool { return w.bonus != BonusNone }

// X returns the left edge.
func (w *Word) X() float64 { return w.x }

// Y returns the top edge.
func (w *Word) Y() float64 { return w.y }

// Width returns the measured text width in columns.
func (w *Word) Width() float64 { return w.width }

// Height returns the word height in rows.
func (w *Word) Height() float64 { return wordHeight }

// Box returns the text bounding box.
func (w *Word) Box() core.Box {
	return core.NewBox(w.x, w.y, w.width, wordHeight)
}

// Speed returns the current fall speed in rows per second.
func (w *Word) Speed() float64 { return w.speed }

// BaseSpeed returns the speed the word was spawned with.
func (w *Word) BaseSpeed() float64 { return w.baseSpeed }

// Cursor returns the number of confirmed leading letters.
func (w *Word) Cursor() int { return w.cursor }

// Destroyed reports whether the word has been destroyed.
func (w *Word) Destroyed() bool { return w.destroyed }

// Tracked reports whether the word is live and not a bonus word.
func (w *Word) Tracked() bool { return !w.destroyed && w.bonus == BonusNone }

// Destroy marks the word destroyed. It returns false if it already was.
func (w *Word) Destroy() bool {
	if w.destroyed {
		return false
	}
	w.destroyed = true
	w.cursor = 0
	return true
}

// SetSpeed sets the current speed.
func (w *Word) SetSpeed(v float64) {
	if w.destroyed {
		return
	}
	w.speed = v
}

// RestoreSpeed returns the word to its own base speed.
func (w *Word) RestoreSpeed() {
	w.SetSpeed(w.baseSpeed)
}

// Fall advances the word by its speed over dt seconds.
func (w *Word) Fall(dt float64) {
	if w.destroyed {
		return
	}
	w.y += w.speed * dt
}

// PlaceAbove puts the word flush on top of other and adopts its speed.
func (w *Word) PlaceAbove(other *Word) {
	if w.destroyed {
		return
	}
	w.y = other.y - wordHeight
	w.speed = other.speed
}

// Next returns the letter under the cursor, or 0 when fully selected.
func (w *Word) Next() rune {
	if w.cursor >= len(w.text) {
		return 0
	}
	return w.text[w.cursor]
}

// Advance moves the cursor one letter forward and reports whether the
// whole word is now selected.
func (w *Word) Advance() bool {
	if w.destroyed {
		return false
	}
	if w.cursor < len(w.text) {
		w.cursor++
	}
	return w.cursor == len(w.text)
}

// ResetCursor clears the selection.
func (w *Word) ResetCursor() {
	if w.destroyed {
		return
	}
	w.cursor = 0
}

// RandomizeCase uppercases each letter independently with the given chance.
func (w *Word) RandomizeCase(rng *rand.Rand, chance float64) {
	if w.destroyed {
		return
	}
	for i, r := range w.original {
		if rng.Float64() < chance {
			w.text[i] = unicode.ToUpper(r)
		} else {
			w.text[i] = r
		}
	}
}

// RestoreText reverts the displayed text to the lowercase original.
func (w *Word) RestoreText() {
	if w.destroyed {
		return
	}
	copy(w.text, w.original)
}
