package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/core"
)

// Game is the snake state machine. All methods are safe for concurrent use;
// every mutation happens under a single mutex.
type Game struct {
	mu sync.Mutex

	cfg     config.SnakeConfig
	grid    core.Grid
	rng     *rand.Rand
	spawner *FoodSpawner
	clock   Clock

	store    HighScoreStore
	notifier Notifier
	logger   *log.Logger

	tick      uint64
	body      []core.Cell // Head at index 0
	direction core.Direction
	pending   core.Direction // Applied at the start of the next tick
	food      core.Cell
	score     int
	highScore int
	interval  time.Duration
	phase     Phase
}

// TickResult reports what a single tick did.
type TickResult struct {
	Moved     bool      // The body advanced one cell
	Ate       bool      // The head landed on the food
	Collision Collision // Set when the tick ended the game
}

// Option configures a Game.
type Option func(*Game)

// WithHighScoreStore sets the persistence adapter for the high score.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithNotifier sets the receiver of food-consumed events.
func WithNotifier(n Notifier) Option {
	return func(g *Game) { g.notifier = n }
}

// WithSeed makes food placement deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game in the running phase. The high score is loaded from
// the store once; a failing store is logged and treated as zero.
func New(cfg config.SnakeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg = cfg.Clone()
	g := &Game{
		cfg:  cfg,
		grid: cfg.GridModel(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.store == nil {
		g.store = NewMemoryHighScores(0)
	}
	g.spawner = NewFoodSpawner(g.grid, g.rng)

	if hs, err := g.store.LoadHighScore(); err != nil {
		g.logger.Warn("could not load high score", "error", err)
	} else if hs > 0 {
		g.highScore = hs
	}

	g.resetState()
	if f := cfg.Start.Food; f != nil {
		g.food = *f
	} else if err := g.respawnFood(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards the current game and starts a new one from any phase.
// The high score is kept.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetState()
	if err := g.respawnFood(); err != nil {
		// Unreachable: the config guarantees a free cell next to the start body.
		g.logger.Error("could not place food after reset", "error", err)
		g.phase = PhaseGameOver
	}
	g.logger.Debug("game reset", "high_score", g.highScore)
}

// resetState reinitializes everything except food and high score.
func (g *Game) resetState() {
	g.tick = 0
	g.body = append([]core.Cell(nil), g.cfg.Start.Body...)
	g.direction = g.cfg.Start.Direction
	g.pending = g.cfg.Start.Direction
	g.score = 0
	g.interval = g.cfg.Timing.BaseInterval
	g.phase = PhaseRunning
	g.clock.Reset()
}

func (g *Game) respawnFood() error {
	food, err := g.spawner.Spawn(g.body)
	if err != nil {
		return err
	}
	g.food = food
	return nil
}

// TogglePause switches between running and paused. No-op after game over.
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
	}
}

// Tick advances the game by one step. It does nothing unless the game is
// running. The only error is ErrBoardFull, which also ends the game.
func (g *Game) Tick() (TickResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.step()
}

// OnFrame feeds elapsed wall time to the clock and ticks when the current
// tick interval has accumulated. Time does not accumulate while paused or
// after game over.
func (g *Game) OnFrame(delta time.Duration) (TickResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseRunning {
		return TickResult{}, nil
	}
	if !g.clock.Advance(delta, g.interval) {
		return TickResult{}, nil
	}
	return g.step()
}

// step implements Tick. Collisions are checked against the candidate head
// before the body is committed. The self check includes the current tail,
// so moving into the cell the tail is about to leave is still a collision.
func (g *Game) step() (TickResult, error) {
	if g.phase != PhaseRunning {
		return TickResult{}, nil
	}
	g.tick++

	g.direction = g.pending
	candidate := g.body[0].Add(g.direction)

	if !g.grid.InBounds(candidate) {
		g.phase = PhaseGameOver
		g.logger.Debug("hit the wall", "head", candidate, "score", g.score)
		return TickResult{Collision: CollisionWall}, nil
	}
	if g.occupies(candidate) {
		g.phase = PhaseGameOver
		g.logger.Debug("hit itself", "head", candidate, "score", g.score)
		return TickResult{Collision: CollisionSelf}, nil
	}

	ate := candidate == g.food
	g.body = append(g.body, core.Cell{})
	copy(g.body[1:], g.body)
	g.body[0] = candidate
	if !ate {
		g.body = g.body[:len(g.body)-1]
	}

	result := TickResult{Moved: true, Ate: ate}
	if !ate {
		return result, nil
	}

	g.score++
	g.interval = max(g.cfg.Timing.MinInterval, g.interval-g.cfg.Timing.DecayStep)
	g.updateHighScore()

	if g.notifier != nil {
		g.notifier.FoodConsumed(FoodEvent{Cell: candidate, Score: g.score, Length: len(g.body)})
	}

	if err := g.respawnFood(); err != nil {
		g.phase = PhaseGameOver
		if errors.Is(err, ErrBoardFull) {
			g.logger.Info("board filled", "score", g.score)
		}
		return result, err
	}
	g.logger.Debug("food eaten", "score", g.score, "interval", g.interval, "next_food", g.food)
	return result, nil
}

// updateHighScore raises and persists the high score when the score beats it.
// A failing store is logged; the game goes on.
func (g *Game) updateHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if err := g.store.SaveHighScore(g.highScore); err != nil {
		g.logger.Warn("could not save high score", "score", g.highScore, "error", err)
	}
}

// occupies checks if the body covers the given cell.
func (g *Game) occupies(c core.Cell) bool {
	for _, seg := range g.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// HighScore returns the best score seen by this process or loaded at start.
func (g *Game) HighScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.highScore
}

// TickInterval returns the current time between ticks.
func (g *Game) TickInterval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.interval
}

// Grid returns the board dimensions.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Config returns a copy of the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg.Clone()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, High: %d, Phase: %s\n", s.Tick, s.Score, s.HighScore, s.Phase)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", len(s.Body), s.Direction, s.Pending)
	fmt.Fprintf(&b, "Head: %v, Food: %v, Interval: %s\n", s.Head(), s.Food, s.TickInterval)
	return b.String()
}
