package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mango-snake/internal/platform/tui"
	"github.com/vovakirdan/mango-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start in interactive menu mode.

Pick a character, play, and look at the scoreboard.
After a game, Esc returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change character
  Enter/Space     - Select
  Tab             - Scores
  Q               - Quit

Examples:
  mango menu
  mango menu --fps 30
  mango menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, cfg, runtimeConfig(), logger)
}
