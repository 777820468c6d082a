package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordfall.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded wordfall configuration.
func DefaultConfig() WordfallConfig {
	return WordfallConfig{
		Speed: SpeedConfig{
			WordSpeed: 10,
			Min:       1,
			Max:       100,
			Scale:     0.1,
		},
		Spawn: SpawnConfig{
			Interval:       2 * time.Second,
			Jitter:         0.5,
			MinInterval:    500 * time.Millisecond,
			MaxActive:      30,
			BonusChance:    0.10,
			SpeedJitterMin: -0.05,
			SpeedJitterMax: 0.50,
		},
		Collision: CollisionConfig{
			Margin: 0.1,
		},
		Bonus: BonusConfig{
			RelationThreshold: 0.35,
			FreezeThreshold:   0.80,
			CaseFlipChance:    0.4,
			Catalog: []BonusEntry{
				{Kind: "synonym", Category: 1, Duration: 20 * time.Second},
				{Kind: "antonym", Category: 1, Duration: 20 * time.Second},
				{Kind: "freeze", Category: 2, Duration: 10 * time.Second},
				{Kind: "case", Category: 3, Duration: 20 * time.Second},
			},
		},
		Scoring: ScoringConfig{
			MaxMultiplier: 9,
			CasePoints:    2,
			CascadeTotal:  4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "destroyed",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
