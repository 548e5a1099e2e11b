package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/platform/tui"
	"github.com/vovakirdan/mango-snake/internal/storage"
)

var flagCharacter string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Arrows/WASD       - Steer
  Space/Enter/P     - Pause
  R                 - Restart
  Q/Ctrl+C/Esc      - Quit

Difficulty options:
  easy   - 200ms start, 100ms floor
  normal - 150ms start, 70ms floor (default)
  hard   - 110ms start, 50ms floor
  fixed  - No speed-up, stays at the base interval

Examples:
  mango play
  mango play --character 🐼
  mango play --difficulty hard
  mango play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Character glyph: "+fmt.Sprint(config.Characters))
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}
	if flagCharacter != "" {
		if !config.IsCharacter(flagCharacter) {
			return fmt.Errorf("unknown character %q, pick one of %v", flagCharacter, config.Characters)
		}
		cfg.Appearance.Character = flagCharacter
	}

	// The alt screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(cfg, tui.GameOptions{
		Store:   store,
		Logger:  logger,
		Runtime: runtimeConfig(),
	})
}
