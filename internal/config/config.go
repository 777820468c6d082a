// Package config provides YAML-based game configuration loading and
// difficulty management for wordfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// WordfallConfig contains all tunables of the simulation core.
type WordfallConfig struct {
	Speed      SpeedConfig      `yaml:"speed"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Collision  CollisionConfig  `yaml:"collision"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpeedConfig defines the player-facing word speed setting.
type SpeedConfig struct {
	WordSpeed float64 `yaml:"word_speed"` // Initial setting, clamped to [Min, Max]
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Scale     float64 `yaml:"scale"` // Rows per second per unit of word speed
}

// SpawnConfig defines the spawn cadence and the shape of new words.
type SpawnConfig struct {
	Interval       time.Duration `yaml:"interval"`     // Nominal time between spawns
	Jitter         float64       `yaml:"jitter"`       // Relative jitter, 0.5 = ±50%
	MinInterval    time.Duration `yaml:"min_interval"` // Floor after jitter
	MaxActive      int           `yaml:"max_active"`   // Spawn refused at this many live words
	BonusChance    float64       `yaml:"bonus_chance"`
	SpeedJitterMin float64       `yaml:"speed_jitter_min"` // Spawn speed = base * (1 + U(min, max))
	SpeedJitterMax float64       `yaml:"speed_jitter_max"`
}

// CollisionConfig defines word box inflation for stacking.
type CollisionConfig struct {
	Margin float64 `yaml:"margin"`
}

// BonusConfig defines the bonus catalog and the category roll.
type BonusConfig struct {
	RelationThreshold float64      `yaml:"relation_threshold"` // roll < this -> category 1
	FreezeThreshold   float64      `yaml:"freeze_threshold"`   // roll < this -> category 2, else 3
	CaseFlipChance    float64      `yaml:"case_flip_chance"`
	Catalog           []BonusEntry `yaml:"catalog"`
}

// BonusEntry is one catalog item.
type BonusEntry struct {
	Kind     string        `yaml:"kind"` // freeze, case, synonym, antonym
	Category int           `yaml:"category"`
	Duration time.Duration `yaml:"duration"`
}

// ScoringConfig defines point and multiplier rules.
type ScoringConfig struct {
	MaxMultiplier int `yaml:"max_multiplier"`
	CasePoints    int `yaml:"case_points"`   // Points per letter while register-case is active
	CascadeTotal  int `yaml:"cascade_total"` // Words destroyed by one relation match
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "destroyed", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Destroyed words or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WordfallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// ErrUnknownBonusKind is returned by Validate for catalog entries it cannot map.
var ErrUnknownBonusKind = errors.New("config: bonus catalog entry has unknown kind")

// Validate reports values the engine cannot work with.
func (c WordfallConfig) Validate() error {
	if c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("config: speed range [%v, %v] is invalid", c.Speed.Min, c.Speed.Max)
	}
	if c.Speed.Scale <= 0 {
		return fmt.Errorf("config: speed scale must be positive, got %v", c.Speed.Scale)
	}
	if c.Spawn.Interval <= 0 || c.Spawn.MinInterval <= 0 {
		return fmt.Errorf("config: spawn intervals must be positive")
	}
	if c.Spawn.MaxActive <= 0 {
		return fmt.Errorf("config: spawn max_active must be positive, got %d", c.Spawn.MaxActive)
	}
	if c.Spawn.SpeedJitterMax < c.Spawn.SpeedJitterMin {
		return fmt.Errorf("config: speed jitter range [%v, %v] is invalid", c.Spawn.SpeedJitterMin, c.Spawn.SpeedJitterMax)
	}
	if c.Bonus.RelationThreshold > c.Bonus.FreezeThreshold {
		return fmt.Errorf("config: bonus thresholds must be ascending")
	}
	for _, e := range c.Bonus.Catalog {
		switch e.Kind {
		case "freeze", "case", "synonym", "antonym":
		default:
			return fmt.Errorf("%w: %q", ErrUnknownBonusKind, e.Kind)
		}
		if e.Category < 1 || e.Category > 3 {
			return fmt.Errorf("config: bonus %s has category %d, expected 1..3", e.Kind, e.Category)
		}
		if e.Duration <= 0 {
			return fmt.Errorf("config: bonus %s needs a positive duration", e.Kind)
		}
	}
	if c.Scoring.MaxMultiplier < 1 {
		return fmt.Errorf("config: max_multiplier must be at least 1")
	}
	return nil
}
