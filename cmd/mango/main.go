// mango is Mango Snake: a grid snake game for the terminal.
//
// Usage:
//
//	mango play               - Play a game
//	mango menu               - Start menu with character picker and scores
//	mango serve              - Start SSH server for remote play
//	mango scores             - Show the run history
//	mango autoplay           - Let the autopilot play headless
//	mango config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set render rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible food placement
//	--db <path>            - Set database path (default: ~/.mango/scores.db)
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-level <level>    - debug, info, warn, error
//	--log-file <path>      - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mango",
	Short: "Mango Snake - eat mangoes in your terminal",
	Long: `Mango Snake is a grid snake game for the terminal.
Steer the snake, eat mangoes, and every mango makes the game faster.

Available commands:
  play      - Play a game directly
  menu      - Menu with character picker and scoreboard
  serve     - Start SSH server for remote play
  scores    - Show the run history
  autoplay  - Let the autopilot play without a terminal UI
  config    - Print the effective configuration

Examples:
  mango play
  mango play --character 🦊 --difficulty hard
  mango menu
  mango serve --ssh :2222
  mango scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mango/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(configCmd)
}
