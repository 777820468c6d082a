package game

// WordSet gives components borrowed access to the live words.
// Implementations must not hand out destroyed words.
type WordSet interface {
	// Each calls fn for every live word in insertion order until fn returns false.
	Each(fn func(w *Word) bool)
	// Tracked returns the live non-bonus words in insertion order.
	Tracked() []*Word
}

// Arena owns the active words. It is insertion-ordered and not safe for
// concurrent use.
type Arena struct {
	words  []*Word
	nextID WordID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{nextID: 1}
}

// Spawn creates a word at the top of the field.
func (a *Arena) Spawn(text string, bonus BonusKind, x, speed float64) *Word {
	w := newWord(a.nextID, text, bonus, x, speed)
	a.nextID++
	a.words = append(a.words, w)
	return w
}

// Each implements WordSet.
func (a *Arena) Each(fn func(w *Word) bool) {
	for _, w := range a.words {
		if w.destroyed {
			continue
		}
		if !fn(w) {
			return
		}
	}
}

// Live returns every non-destroyed word.
func (a *Arena) Live() []*Word {
	out := make([]*Word, 0, len(a.words))
	a.Each(func(w *Word) bool {
		out = append(out, w)
		return true
	})
	return out
}

// Tracked implements WordSet.
func (a *Arena) Tracked() []*Word {
	out := make([]*Word, 0, len(a.words))
	a.Each(func(w *Word) bool {
		if w.bonus == BonusNone {
			out = append(out, w)
		}
		return true
	})
	return out
}

// Get returns a live word by ID, or nil.
func (a *Arena) Get(id WordID) *Word {
	for _, w := range a.words {
		if w.id == id && !w.destroyed {
			return w
		}
	}
	return nil
}

// ActiveCount returns the number of live words.
func (a *Arena) ActiveCount() int {
	n := 0
	for _, w := range a.words {
		if !w.destroyed {
			n++
		}
	}
	return n
}

// Compact drops destroyed words from storage.
func (a *Arena) Compact() {
	live := a.words[:0]
	for _, w := range a.words {
		if !w.destroyed {
			live = append(live, w)
		}
	}
	for i := len(live); i < len(a.words); i++ {
		a.words[i] = nil
	}
	a.words = live
}

// Clear destroys and drops every word.
func (a *Arena) Clear() {
	for _, w := range a.words {
		w.Destroy()
	}
	a.words = a.words[:0]
}
