package game

import "unicode"

// MatchResult is the outcome of one primary keystroke.
type MatchResult struct {
	Accepted  bool    // at least one word advanced
	Completed []*Word // words fully selected by this keystroke, in arena order
}

// PrimaryMatcher selects words letter by letter.
//
// With no selection in progress a keystroke starts a selection on every
// word beginning with it. Otherwise only selected words are considered:
// matches advance, misses drop back to zero.
type PrimaryMatcher struct {
	caseSensitive bool
}

// NewPrimaryMatcher creates a case-insensitive matcher.
func NewPrimaryMatcher() *PrimaryMatcher {
	return &PrimaryMatcher{}
}

// SetCaseSensitive toggles exact-case comparison.
func (m *PrimaryMatcher) SetCaseSensitive(on bool) {
	m.caseSensitive = on
}

// CaseSensitive reports whether comparison is exact-case.
func (m *PrimaryMatcher) CaseSensitive() bool {
	return m.caseSensitive
}

func (m *PrimaryMatcher) equal(a, b rune) bool {
	if m.caseSensitive {
		return a == b
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// Feed applies one keystroke to the live words.
func (m *PrimaryMatcher) Feed(words WordSet, r rune) MatchResult {
	var res MatchResult

	selecting := false
	words.Each(func(w *Word) bool {
		if w.Cursor() > 0 {
			selecting = true
			return false
		}
		return true
	})

	words.Each(func(w *Word) bool {
		if selecting && w.Cursor() == 0 {
			return true
		}
		if !m.equal(w.Next(), r) {
			w.ResetCursor()
			return true
		}
		res.Accepted = true
		if w.Advance() {
			res.Completed = append(res.Completed, w)
		}
		return true
	})
	return res
}

// Reset clears every selection.
func (m *PrimaryMatcher) Reset(words WordSet) {
	words.Each(func(w *Word) bool {
		w.ResetCursor()
		return true
	})
}
