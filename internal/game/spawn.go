package game

import (
	"math/rand"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/wordfall/internal/config"
)

// WordSource supplies text for new words.
type WordSource interface {
	RandomWord(rng *rand.Rand) string
}

// Spawner fires on a jittered interval and creates words in the arena.
type Spawner struct {
	cfg     config.SpawnConfig
	rng     *rand.Rand
	nominal time.Duration
	timer   time.Duration // time left until the next spawn
}

// NewSpawner creates a spawner with the configured nominal interval.
func NewSpawner(cfg config.SpawnConfig, rng *rand.Rand) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng, nominal: cfg.Interval}
	s.timer = s.NextInterval()
	return s
}

// Reset makes the next Advance fire immediately.
func (s *Spawner) Reset() {
	s.nominal = s.cfg.Interval
	s.timer = 0
}

// SetNominal changes the nominal interval used for the next re-roll.
func (s *Spawner) SetNominal(d time.Duration) {
	if d > 0 {
		s.nominal = d
	}
}

// Nominal returns the nominal interval.
func (s *Spawner) Nominal() time.Duration {
	return s.nominal
}

// Remaining returns the time left until the next spawn.
func (s *Spawner) Remaining() time.Duration {
	return s.timer
}

// NextInterval rolls nominal * (1 + U(-jitter, +jitter)), floored at MinInterval.
func (s *Spawner) NextInterval() time.Duration {
	j := (s.rng.Float64()*2 - 1) * s.cfg.Jitter
	d := time.Duration(float64(s.nominal) * (1 + j))
	return max(d, s.cfg.MinInterval)
}

// Advance counts down by dt and reports whether a spawn is due.
// The interval is re-rolled after every firing.
func (s *Spawner) Advance(dt time.Duration) bool {
	s.timer -= dt
	if s.timer > 0 {
		return false
	}
	s.timer = s.NextInterval()
	return true
}

// Spawn creates one word at the top of a field of the given width.
// It returns nil when the arena is full.
func (s *Spawner) Spawn(arena *Arena, words WordSource, catalog *Catalog, baseSpeed, fieldWidth float64) *Word {
	if arena.ActiveCount() >= s.cfg.MaxActive {
		return nil
	}

	bonus := BonusNone
	if s.rng.Float64() < s.cfg.BonusChance {
		if entry, ok := catalog.Draw(s.rng); ok {
			bonus = entry.Kind
		}
	}

	text := words.RandomWord(s.rng)
	jitter := s.cfg.SpeedJitterMin + s.rng.Float64()*(s.cfg.SpeedJitterMax-s.cfg.SpeedJitterMin)
	speed := baseSpeed * (1 + jitter)

	room := fieldWidth - float64(runewidth.StringWidth(text))
	x := 0.0
	if room > 0 {
		x = s.rng.Float64() * room
	}
	return arena.Spawn(text, bonus, x, speed)
}
