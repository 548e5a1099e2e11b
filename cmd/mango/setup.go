package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/core"
)

// loadSnakeConfig loads the config file and applies --difficulty.
func loadSnakeConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. Logs go to --log-file when set and
// to fallback otherwise. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mango",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FPS = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
