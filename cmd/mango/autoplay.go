package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mango-snake/internal/games/snake"
	"github.com/vovakirdan/mango-snake/internal/storage"
)

var (
	flagAutoGames    int
	flagAutoMaxTicks int
	flagAutoRealtime bool
	flagAutoRecord   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the autopilot play without a terminal UI",
	Long: `Run games driven by the built-in autopilot and log the results.

By default ticks run back to back. With --realtime the game is driven by
a frame clock at --fps, so speed-up happens in wall time like a real game.

Examples:
  mango autoplay
  mango autoplay --games 20 --seed 7
  mango autoplay --realtime --log-level debug
  mango autoplay --record --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagAutoGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagAutoMaxTicks, "max-ticks", 20000, "Stop a game after this many ticks")
	autoplayCmd.Flags().BoolVar(&flagAutoRealtime, "realtime", false, "Drive ticks from a wall-clock frame loop")
	autoplayCmd.Flags().BoolVar(&flagAutoRecord, "record", false, "Save results to the scores database")
}

// autoResult summarizes one autopilot game.
type autoResult struct {
	Score  int
	Length int
	Ticks  int
	Phase  snake.Phase
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	cfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []snake.Option{snake.WithLogger(logger)}
	var store *storage.Store
	if flagAutoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, snake.WithHighScoreStore(storage.NewHighScores(store, storage.DefaultGameID)))
	}

	best, played := 0, 0
	for i := 0; i < flagAutoGames; i++ {
		gameOpts := opts
		if flagSeed != 0 {
			gameOpts = append(gameOpts, snake.WithSeed(flagSeed+int64(i)))
		}

		game, err := snake.New(cfg, gameOpts...)
		if err != nil {
			return err
		}

		var res autoResult
		if flagAutoRealtime {
			res, err = autoplayRealtime(ctx, game, flagFPS, flagAutoMaxTicks)
		} else {
			res, err = autoplayFast(ctx, game, flagAutoMaxTicks)
		}
		interrupted := errors.Is(err, context.Canceled)
		if err != nil && !interrupted && !errors.Is(err, snake.ErrBoardFull) {
			return err
		}

		logger.Info("game finished",
			"game", i+1,
			"score", res.Score,
			"length", res.Length,
			"ticks", res.Ticks,
			"phase", res.Phase,
			"record", game.HighScore(),
			"interval", game.TickInterval(),
		)
		logger.Debug("final state\n" + game.DebugState())
		best = max(best, res.Score)
		played++

		if store != nil && res.Score > 0 {
			if _, err := store.SaveRun(storage.RunEntry{
				RunID:     uuid.New(),
				Score:     res.Score,
				Length:    res.Length,
				Character: cfg.Appearance.Character,
			}); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
		if interrupted {
			logger.Warn("interrupted", "games", played)
			break
		}
	}

	fmt.Printf("Played %d game(s), best score %d\n", played, best)
	return nil
}

// autoplayFast ticks the game back to back until it ends or maxTicks.
func autoplayFast(ctx context.Context, game *snake.Game, maxTicks int) (autoResult, error) {
	pilot := snake.NewAutopilot(game.Grid())
	ticks := 0
	for ticks < maxTicks && game.Phase() == snake.PhaseRunning {
		if err := ctx.Err(); err != nil {
			return summarize(game, ticks), err
		}
		game.RequestDirection(pilot.Next(game.Snapshot()))
		if _, err := game.Tick(); err != nil {
			return summarize(game, ticks+1), err
		}
		ticks++
	}
	return summarize(game, ticks), nil
}

// autoplayRealtime drives the game from a frame clock at fps.
func autoplayRealtime(parent context.Context, game *snake.Game, fps, maxTicks int) (autoResult, error) {
	pilot := snake.NewAutopilot(game.Grid())
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	ticks := 0
	var tickErr error
	snake.RunFrames(ctx, fps, func(delta time.Duration) { //nolint:errcheck // Ends by cancel
		game.RequestDirection(pilot.Next(game.Snapshot()))
		res, err := game.OnFrame(delta)
		if res.Moved || res.Collision != snake.CollisionNone {
			ticks++
		}
		if err != nil {
			tickErr = err
		}
		if err != nil || game.Phase() != snake.PhaseRunning || ticks >= maxTicks {
			cancel()
		}
	})

	if tickErr != nil {
		return summarize(game, ticks), tickErr
	}
	// Only an interrupt from outside is an error.
	return summarize(game, ticks), parent.Err()
}

func summarize(game *snake.Game, ticks int) autoResult {
	s := game.Snapshot()
	return autoResult{Score: s.Score, Length: len(s.Body), Ticks: ticks, Phase: s.Phase}
}
