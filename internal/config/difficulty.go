package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters based on progress.
// Progress is measured in destroyed words or in elapsed seconds, depending
// on the configured progression type.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(destroyed int, elapsed time.Duration) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "destroyed":
		progress = float64(destroyed) / maxAt
	case "time":
		progress = elapsed.Seconds() / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the difficulty-scaled base speed.
func (d *DifficultyManager) Speed(baseSpeed float64, destroyed int, elapsed time.Duration) float64 {
	level := d.Level(destroyed, elapsed)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns the difficulty-scaled nominal spawn interval.
func (d *DifficultyManager) Interval(base time.Duration, destroyed int, elapsed time.Duration) time.Duration {
	level := d.Level(destroyed, elapsed)
	reduction := clampF(level*d.cfg.Scaling.IntervalReduction, 0.0, 0.9)
	return time.Duration(float64(base) * (1.0 - reduction))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
