package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.mango/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
// Files are layered over the defaults, so partial files only override what they set.
// A file that exists but does not parse or validate is an error, not a fallthrough.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return loadFile(customPath, data)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if loaded, ok, err := tryLoad(userCfgPath); ok || err != nil {
			return loaded, err
		}
	}

	// Try local configs directory
	if loaded, ok, err := tryLoad(filepath.Join("configs", "snake.yaml")); ok || err != nil {
		return loaded, err
	}

	// Use embedded default YAML
	var embedded SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Only a missing file reports
// ok=false with no error.
func tryLoad(path string) (SnakeConfig, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return SnakeConfig{}, false, nil
	}
	if err != nil {
		return DefaultSnakeConfig(), false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := loadFile(path, data)
	return cfg, err == nil, err
}

// loadFile layers data over the defaults and validates the result.
func loadFile(path string, data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := decodeOver(data, &cfg); err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// decodeOver unmarshals data into cfg. The default food belongs to the
// default board, so it is dropped when a file moves the board or the
// body without placing food itself.
func decodeOver(data []byte, cfg *SnakeConfig) error {
	var set struct {
		Grid  *yaml.Node `yaml:"grid"`
		Start struct {
			Body *yaml.Node `yaml:"body"`
			Food *yaml.Node `yaml:"food"`
		} `yaml:"start"`
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if (set.Grid != nil || set.Start.Body != nil) && set.Start.Food == nil {
		cfg.Start.Food = nil
	}
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mango", "configs", filename)
}
