package game

import (
	"math/rand"
	"slices"
	"strings"
	"unicode"
)

// RelationKind selects which relation set the secondary matcher uses.
type RelationKind int

const (
	RelationSynonym RelationKind = iota
	RelationAntonym
)

// String returns the relation name.
func (k RelationKind) String() string {
	if k == RelationAntonym {
		return "antonym"
	}
	return "synonym"
}

// Relations answers relation-set queries. *dictionary.Dictionary satisfies it.
type Relations interface {
	Synonyms(word string) []string
	Antonyms(word string) []string
}

// RelationResult is the outcome of one secondary keystroke.
type RelationResult struct {
	Accepted bool    // the candidate is still a prefix of some relation word
	Matched  string  // the exact relation word, set when a cascade fired
	Cascade  []*Word // words to destroy, matched words first
}

// RelationMatcher destroys words by a typed synonym or antonym.
//
// It keeps a candidate string and a pool of tracked words. Each keystroke
// extends the candidate; the pool narrows to words that still have a
// relation word starting with it. A keystroke that leaves no such word is
// dropped: the candidate empties and the pool widens back to every tracked
// word. A nil pool stands for the full live tracked set.
type RelationMatcher struct {
	rel          Relations
	rng          *rand.Rand
	cascadeTotal int

	active    bool
	kind      RelationKind
	candidate []rune
	pool      []*Word
}

// NewRelationMatcher creates an inactive matcher.
func NewRelationMatcher(rel Relations, rng *rand.Rand, cascadeTotal int) *RelationMatcher {
	return &RelationMatcher{rel: rel, rng: rng, cascadeTotal: cascadeTotal}
}

// Activate starts matching against the given relation with a fresh candidate
// and the full pool.
func (m *RelationMatcher) Activate(kind RelationKind) {
	m.active = true
	m.kind = kind
	m.candidate = m.candidate[:0]
	m.pool = nil
}

// Deactivate stops matching and clears the candidate and pool.
func (m *RelationMatcher) Deactivate() {
	m.active = false
	m.candidate = m.candidate[:0]
	m.pool = nil
}

// Active reports whether the matcher consumes keystrokes.
func (m *RelationMatcher) Active() bool { return m.active }

// Kind returns the relation in use.
func (m *RelationMatcher) Kind() RelationKind { return m.kind }

// Candidate returns the accumulated string.
func (m *RelationMatcher) Candidate() string { return string(m.candidate) }

// InPool reports whether w is in the narrowed pool. With an empty candidate
// nothing is highlighted.
func (m *RelationMatcher) InPool(w *Word) bool {
	if !m.active || len(m.candidate) == 0 {
		return false
	}
	if m.pool == nil {
		return w.Tracked()
	}
	return slices.Contains(m.pool, w)
}

// Backspace removes the last candidate letter and keeps the pool.
func (m *RelationMatcher) Backspace() {
	if len(m.candidate) > 0 {
		m.candidate = m.candidate[:len(m.candidate)-1]
	}
}

func (m *RelationMatcher) related(w *Word) []string {
	if m.kind == RelationAntonym {
		return m.rel.Antonyms(w.Original())
	}
	return m.rel.Synonyms(w.Original())
}

// Feed applies one keystroke.
func (m *RelationMatcher) Feed(words WordSet, r rune) RelationResult {
	if !m.active {
		return RelationResult{}
	}

	candidate := string(append(slices.Clone(m.candidate), unicode.ToLower(r)))

	var pool []*Word
	if m.pool == nil {
		pool = words.Tracked()
	} else {
		for _, w := range m.pool {
			if w.Tracked() {
				pool = append(pool, w)
			}
		}
	}

	var narrowed []*Word
	for _, w := range pool {
		for _, rw := range m.related(w) {
			if strings.HasPrefix(rw, candidate) {
				narrowed = append(narrowed, w)
				break
			}
		}
	}
	if len(narrowed) == 0 {
		m.candidate = m.candidate[:0]
		m.pool = nil
		return RelationResult{}
	}

	m.candidate = []rune(candidate)
	m.pool = narrowed

	for _, w := range narrowed {
		if slices.Contains(m.related(w), candidate) {
			cascade := m.cascade(words, candidate)
			m.candidate = m.candidate[:0]
			m.pool = nil
			return RelationResult{Accepted: true, Matched: candidate, Cascade: cascade}
		}
	}
	return RelationResult{Accepted: true}
}

// cascade picks every tracked word whose relation set holds match, then
// random tracked words until cascadeTotal words are chosen.
func (m *RelationMatcher) cascade(words WordSet, match string) []*Word {
	tracked := words.Tracked()

	var chosen, rest []*Word
	for _, w := range tracked {
		if slices.Contains(m.related(w), match) {
			chosen = append(chosen, w)
		} else {
			rest = append(rest, w)
		}
	}

	for len(chosen) < m.cascadeTotal && len(rest) > 0 {
		i := m.rng.Intn(len(rest))
		chosen = append(chosen, rest[i])
		rest = slices.Delete(rest, i, i+1)
	}
	return chosen
}
