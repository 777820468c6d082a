package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
)

// BonusKind represents a timed effect carried by a bonus word.
type BonusKind int

const (
	BonusNone    BonusKind = iota // Plain word
	BonusFreeze                   // Stop movement and spawning
	BonusCase                     // Randomize letter case, typing becomes case-sensitive
	BonusSynonym                  // Destroy words by typing a synonym
	BonusAntonym                  // Destroy words by typing an antonym
)

// String returns the name of the bonus kind.
func (k BonusKind) String() string {
	switch k {
	case BonusNone:
		return "none"
	case BonusFreeze:
		return "freeze"
	case BonusCase:
		return "case"
	case BonusSynonym:
		return "synonym"
	case BonusAntonym:
		return "antonym"
	default:
		return "?"
	}
}

// ParseBonusKind maps a config name to a kind.
func ParseBonusKind(s string) (BonusKind, bool) {
	switch s {
	case "freeze":
		return BonusFreeze, true
	case "case":
		return BonusCase, true
	case "synonym":
		return BonusSynonym, true
	case "antonym":
		return BonusAntonym, true
	default:
		return BonusNone, false
	}
}

// Relation returns the relation kind used by the secondary matcher.
func (k BonusKind) Relation() (RelationKind, bool) {
	switch k {
	case BonusSynonym:
		return RelationSynonym, true
	case BonusAntonym:
		return RelationAntonym, true
	default:
		return 0, false
	}
}

// Bonus categories used by the weighted draw.
const (
	CategoryRelation = 1
	CategoryFreeze   = 2
	CategoryCase     = 3
	categoryCount    = 3
)

// CatalogEntry is one drawable bonus.
type CatalogEntry struct {
	Kind     BonusKind
	Category int
	Duration time.Duration
}

// Catalog holds the bonuses available for spawning, grouped by category.
type Catalog struct {
	byCategory        [categoryCount][]CatalogEntry
	relationThreshold float64
	freezeThreshold   float64
}

// NewCatalog builds a catalog from config. Entries with unknown kinds or
// categories are skipped.
func NewCatalog(cfg config.BonusConfig) *Catalog {
	c := &Catalog{
		relationThreshold: cfg.RelationThreshold,
		freezeThreshold:   cfg.FreezeThreshold,
	}
	for _, e := range cfg.Catalog {
		kind, ok := ParseBonusKind(e.Kind)
		if !ok || e.Category < 1 || e.Category > categoryCount || e.Duration <= 0 {
			continue
		}
		c.byCategory[e.Category-1] = append(c.byCategory[e.Category-1], CatalogEntry{
			Kind:     kind,
			Category: e.Category,
			Duration: e.Duration,
		})
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	n := 0
	for _, entries := range c.byCategory {
		n += len(entries)
	}
	return n
}

// Entry returns the first entry of the given kind.
func (c *Catalog) Entry(kind BonusKind) (CatalogEntry, bool) {
	for _, entries := range c.byCategory {
		for _, e := range entries {
			if e.Kind == kind {
				return e, true
			}
		}
	}
	return CatalogEntry{}, false
}

// CategoryFor maps a roll in [0,1) to a category.
func (c *Catalog) CategoryFor(roll float64) int {
	switch {
	case roll < c.relationThreshold:
		return CategoryRelation
	case roll < c.freezeThreshold:
		return CategoryFreeze
	default:
		return CategoryCase
	}
}

// Draw picks a bonus: roll a category, fall back to the first non-empty
// category in order 1, 2, 3 when it is empty, then pick uniformly inside.
// It returns false when the catalog is empty.
func (c *Catalog) Draw(rng *rand.Rand) (CatalogEntry, bool) {
	rolled := c.CategoryFor(rng.Float64())
	cat := rolled
	if len(c.byCategory[cat-1]) == 0 {
		cat = 0
		for i := 1; i <= categoryCount; i++ {
			if i != rolled && len(c.byCategory[i-1]) > 0 {
				cat = i
				break
			}
		}
		if cat == 0 {
			return CatalogEntry{}, false
		}
	}
	entries := c.byCategory[cat-1]
	return entries[rng.Intn(len(entries))], true
}

// BonusPhase is the scheduler state.
type BonusPhase int

const (
	PhaseIdle     BonusPhase = iota // No bonus
	PhaseActive                     // Counting down
	PhaseExpiring                   // Reverting side effects
)

// String returns the phase name.
func (p BonusPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseExpiring:
		return "expiring"
	default:
		return "?"
	}
}

// expiryEpsilon absorbs float error at the end of the countdown.
const expiryEpsilon = 1e-9

// bonusEffects applies and reverts the kind-specific side effects.
type bonusEffects interface {
	activateBonus(kind BonusKind)
	revertBonus(kind BonusKind)
}

// BonusScheduler runs at most one bonus at a time.
// State machine: Idle -> Active -> Expiring -> Idle. Starting a bonus while
// one is active passes the old one through Expiring first.
type BonusScheduler struct {
	effects  bonusEffects
	onChange func(kind BonusKind, progress float64)

	phase    BonusPhase
	kind     BonusKind
	duration time.Duration
	elapsed  time.Duration
	paused   bool
}

// NewBonusScheduler creates an idle scheduler.
func NewBonusScheduler(effects bonusEffects, onChange func(BonusKind, float64)) *BonusScheduler {
	return &BonusScheduler{effects: effects, onChange: onChange}
}

// Start stops the current bonus and activates entry.
func (s *BonusScheduler) Start(entry CatalogEntry) {
	s.Stop()
	if entry.Kind == BonusNone || entry.Duration <= 0 {
		return
	}
	s.phase = PhaseActive
	s.kind = entry.Kind
	s.duration = entry.Duration
	s.elapsed = 0
	s.effects.activateBonus(entry.Kind)
	s.notify()
}

// Stop reverts the active bonus, if any. The pause flag survives so that a
// bonus started during a pause stays paused.
func (s *BonusScheduler) Stop() {
	if s.phase != PhaseActive {
		return
	}
	kind := s.kind
	s.phase = PhaseExpiring
	s.effects.revertBonus(kind)

	s.phase = PhaseIdle
	s.kind = BonusNone
	s.duration = 0
	s.elapsed = 0
	s.notify()
}

// Reset stops the bonus and clears the pause flag.
func (s *BonusScheduler) Reset() {
	s.Stop()
	s.paused = false
}

// Advance counts down by dt unless paused; expires the bonus at zero progress.
func (s *BonusScheduler) Advance(dt time.Duration) {
	if s.phase != PhaseActive || s.paused || dt <= 0 {
		return
	}
	s.elapsed += dt
	if s.Progress() <= expiryEpsilon {
		s.Stop()
		return
	}
	s.notify()
}

// Pause suspends the countdown.
func (s *BonusScheduler) Pause() { s.paused = true }

// Resume continues the countdown.
func (s *BonusScheduler) Resume() { s.paused = false }

// Paused reports whether the countdown is suspended.
func (s *BonusScheduler) Paused() bool { return s.paused }

// Phase returns the state machine phase.
func (s *BonusScheduler) Phase() BonusPhase { return s.phase }

// Kind returns the active bonus kind, BonusNone when idle.
func (s *BonusScheduler) Kind() BonusKind { return s.kind }

// Active reports whether a bonus is running.
func (s *BonusScheduler) Active() bool { return s.phase == PhaseActive }

// Remaining returns the time left on the active bonus.
func (s *BonusScheduler) Remaining() time.Duration {
	if s.phase != PhaseActive {
		return 0
	}
	return max(s.duration-s.elapsed, 0)
}

// Progress returns 1 - elapsed/duration, or 0 when idle.
func (s *BonusScheduler) Progress() float64 {
	if s.phase != PhaseActive || s.duration <= 0 {
		return 0
	}
	p := 1 - float64(s.elapsed)/float64(s.duration)
	if p < 0 {
		return 0
	}
	return p
}

func (s *BonusScheduler) notify() {
	if s.onChange != nil {
		s.onChange(s.kind, s.Progress())
	}
}
