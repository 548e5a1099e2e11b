// Package config provides YAML-based game configuration loading and
// difficulty presets for Mango Snake.
package config

import (
	"time"

	"github.com/vovakirdan/mango-snake/internal/core"
)

// SnakeConfig contains all configuration for the game.
// It is fixed once a game is constructed.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Start      StartConfig      `yaml:"start"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
}

// GridConfig defines the board dimensions in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig defines the tick interval and its progression.
type TimingConfig struct {
	BaseInterval time.Duration `yaml:"base_interval"` // Interval at the start of a game
	MinInterval  time.Duration `yaml:"min_interval"`  // Floor the interval never drops below
	DecayStep    time.Duration `yaml:"decay_step"`    // Subtracted per food eaten
}

// StartConfig defines the initial actor placement.
type StartConfig struct {
	Direction core.Direction `yaml:"direction"`
	Body      []core.Cell    `yaml:"body"` // Head first
	Food      *core.Cell     `yaml:"food,omitempty"`
}

// AppearanceConfig defines the glyphs used to draw the board.
type AppearanceConfig struct {
	Character string `yaml:"character"`
	Food      string `yaml:"food"`
}

// FeedbackConfig controls what happens when food is eaten.
type FeedbackConfig struct {
	Bell        bool `yaml:"bell"`
	FlashFrames int  `yaml:"flash_frames"`
}

// Clone returns a copy that shares no memory with c.
func (c SnakeConfig) Clone() SnakeConfig {
	c.Start.Body = append([]core.Cell(nil), c.Start.Body...)
	if c.Start.Food != nil {
		food := *c.Start.Food
		c.Start.Food = &food
	}
	return c
}

// GridModel returns the configured grid.
func (c SnakeConfig) GridModel() core.Grid {
	return core.NewGrid(c.Grid.Cols, c.Grid.Rows)
}

// Characters are the selectable actor glyphs.
var Characters = []string{
	"🐍", "🐸", "🐱", "🐼", "🐹", "🐵", "🦊", "🦄", "🚗", "🛸", "🌟",
}

// IsCharacter reports whether s is one of the selectable characters.
func IsCharacter(s string) bool {
	for _, c := range Characters {
		if c == s {
			return true
		}
	}
	return false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// ApplySnakePreset modifies the timing based on a difficulty preset.
// DifficultyFixed keeps the base interval for the whole game.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseInterval = 200 * time.Millisecond
		cfg.Timing.MinInterval = 100 * time.Millisecond
		cfg.Timing.DecayStep = 3 * time.Millisecond
	case DifficultyNormal:
		cfg.Timing.BaseInterval = 150 * time.Millisecond
		cfg.Timing.MinInterval = 70 * time.Millisecond
		cfg.Timing.DecayStep = 4 * time.Millisecond
	case DifficultyHard:
		cfg.Timing.BaseInterval = 110 * time.Millisecond
		cfg.Timing.MinInterval = 50 * time.Millisecond
		cfg.Timing.DecayStep = 5 * time.Millisecond
	case DifficultyFixed:
		cfg.Timing.DecayStep = 0
	}
}
