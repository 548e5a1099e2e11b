package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/mango-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default game configuration.
// It matches defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	food := core.Cell{X: 12, Y: 9}
	return SnakeConfig{
		Grid: GridConfig{
			Cols: 24,
			Rows: 18,
		},
		Timing: TimingConfig{
			BaseInterval: 150 * time.Millisecond,
			MinInterval:  70 * time.Millisecond,
			DecayStep:    4 * time.Millisecond,
		},
		Start: StartConfig{
			Direction: core.Right,
			Body: []core.Cell{
				{X: 5, Y: 9}, // Head
				{X: 4, Y: 9},
				{X: 3, Y: 9},
			},
			Food: &food,
		},
		Appearance: AppearanceConfig{
			Character: "🐍",
			Food:      "🥭",
		},
		Feedback: FeedbackConfig{
			Bell:        true,
			FlashFrames: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
