package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/core"
)

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	g, err := New(config.DefaultSnakeConfig(), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func cells(pts ...[2]int) []core.Cell {
	out := make([]core.Cell, len(pts))
	for i, p := range pts {
		out[i] = core.Cell{X: p[0], Y: p[1]}
	}
	return out
}

func hasDuplicates(body []core.Cell) bool {
	seen := make(map[core.Cell]bool, len(body))
	for _, c := range body {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

func TestNewInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()

	if s.Phase != PhaseRunning {
		t.Errorf("initial phase = %s, expected running", s.Phase)
	}
	if !reflect.DeepEqual(s.Body, cells([2]int{5, 9}, [2]int{4, 9}, [2]int{3, 9})) {
		t.Errorf("initial body = %v", s.Body)
	}
	if s.Direction != core.Right || s.Pending != core.Right {
		t.Errorf("initial direction = %v/%v, expected right", s.Direction, s.Pending)
	}
	if s.Food != (core.Cell{X: 12, Y: 9}) {
		t.Errorf("initial food = %v, expected (12,9)", s.Food)
	}
	if s.Score != 0 || s.TickInterval != 150*time.Millisecond {
		t.Errorf("initial score/interval = %d/%s", s.Score, s.TickInterval)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Cols = 0
	if _, err := New(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestNewWithoutStartFoodSpawns(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Start.Food = nil
	g, err := New(cfg, WithSeed(7))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s := g.Snapshot()
	if s.Occupied(s.Food) || !g.Grid().InBounds(s.Food) {
		t.Errorf("spawned food %v is invalid", s.Food)
	}
}

func TestConfigFixedAtConstruction(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	g, err := New(cfg, WithSeed(3))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	want := config.DefaultSnakeConfig().Start.Body

	// Neither the caller's config nor a returned copy reaches the game.
	cfg.Start.Body[0] = core.Cell{X: 20, Y: 1}
	cfg.Start.Food.X = 0
	got := g.Config()
	got.Start.Body[1] = core.Cell{X: 0, Y: 0}
	got.Start.Food.Y = 0

	if f := g.Config().Start.Food; f == nil || *f != (core.Cell{X: 12, Y: 9}) {
		t.Errorf("start food = %v, want (12,9)", f)
	}
	g.Reset()
	if s := g.Snapshot(); !reflect.DeepEqual(s.Body, want) {
		t.Errorf("body after reset = %v, want %v", s.Body, want)
	}
}

// Moving without eating keeps the length.
func TestTickMoveWithoutGrowth(t *testing.T) {
	g := newTestGame(t)

	res, err := g.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if !res.Moved || res.Ate || res.Collision != CollisionNone {
		t.Errorf("unexpected result %+v", res)
	}

	s := g.Snapshot()
	want := cells([2]int{6, 9}, [2]int{5, 9}, [2]int{4, 9})
	if !reflect.DeepEqual(s.Body, want) {
		t.Errorf("body = %v, expected %v", s.Body, want)
	}
	if s.Score != 0 || s.Phase != PhaseRunning {
		t.Errorf("score/phase = %d/%s, expected 0/running", s.Score, s.Phase)
	}
}

func TestTickEatAndGrow(t *testing.T) {
	var events []FoodEvent
	g := newTestGame(t, WithNotifier(NotifierFunc(func(ev FoodEvent) {
		events = append(events, ev)
	})))
	g.food = core.Cell{X: 6, Y: 9}

	res, err := g.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if !res.Ate {
		t.Error("expected Ate")
	}

	s := g.Snapshot()
	want := cells([2]int{6, 9}, [2]int{5, 9}, [2]int{4, 9}, [2]int{3, 9})
	if !reflect.DeepEqual(s.Body, want) {
		t.Errorf("body = %v, expected %v", s.Body, want)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, expected 1", s.Score)
	}
	if s.Occupied(s.Food) {
		t.Errorf("new food %v is on the body", s.Food)
	}
	if s.TickInterval != 146*time.Millisecond {
		t.Errorf("interval = %s, expected 146ms", s.TickInterval)
	}

	if len(events) != 1 {
		t.Fatalf("expected 1 food event, got %d", len(events))
	}
	if events[0] != (FoodEvent{Cell: core.Cell{X: 6, Y: 9}, Score: 1, Length: 4}) {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestTickWallCollision(t *testing.T) {
	g := newTestGame(t)
	g.body = cells([2]int{0, 9}, [2]int{1, 9}, [2]int{2, 9})
	g.direction = core.Left
	g.pending = core.Left

	res, err := g.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if res.Collision != CollisionWall || res.Moved {
		t.Errorf("unexpected result %+v", res)
	}

	s := g.Snapshot()
	if s.Phase != PhaseGameOver {
		t.Errorf("phase = %s, expected game_over", s.Phase)
	}
	if !reflect.DeepEqual(s.Body, cells([2]int{0, 9}, [2]int{1, 9}, [2]int{2, 9})) {
		t.Errorf("body changed on collision: %v", s.Body)
	}
}

func TestTickWallCollisionEachEdge(t *testing.T) {
	tests := []struct {
		name string
		head core.Cell
		dir  core.Direction
	}{
		{"top", core.Cell{X: 5, Y: 0}, core.Up},
		{"bottom", core.Cell{X: 5, Y: 17}, core.Down},
		{"left", core.Cell{X: 0, Y: 5}, core.Left},
		{"right", core.Cell{X: 23, Y: 5}, core.Right},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.body = []core.Cell{tc.head}
			g.direction, g.pending = tc.dir, tc.dir
			res, _ := g.Tick()
			if res.Collision != CollisionWall || g.Phase() != PhaseGameOver {
				t.Errorf("expected wall collision, got %+v phase %s", res, g.Phase())
			}
		})
	}
}

// The self check includes the tail cell even though the tail would move away.
func TestTickSelfCollisionIncludesTail(t *testing.T) {
	g := newTestGame(t)
	// A 2x2 loop: head (1,1) moving left, tail at (1,2) directly below.
	g.body = cells([2]int{1, 1}, [2]int{2, 1}, [2]int{2, 2}, [2]int{1, 2})
	g.direction, g.pending = core.Left, core.Left
	g.RequestDirection(core.Down)

	res, err := g.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if res.Collision != CollisionSelf {
		t.Errorf("collision = %s, expected self", res.Collision)
	}
	if g.Phase() != PhaseGameOver {
		t.Error("expected game over")
	}
	if len(g.Snapshot().Body) != 4 {
		t.Error("body changed on collision")
	}
}

func TestTickSelfCollisionBody(t *testing.T) {
	g := newTestGame(t)
	g.body = cells([2]int{5, 5}, [2]int{6, 5}, [2]int{6, 6}, [2]int{5, 6}, [2]int{4, 6})
	g.direction, g.pending = core.Left, core.Left
	g.RequestDirection(core.Down)

	res, _ := g.Tick()
	if res.Collision != CollisionSelf {
		t.Errorf("collision = %s, expected self", res.Collision)
	}
}

func TestTickNoopUnlessRunning(t *testing.T) {
	g := newTestGame(t)

	g.TogglePause()
	before := g.Snapshot()
	res, err := g.Tick()
	if err != nil || res != (TickResult{}) {
		t.Errorf("paused Tick() = %+v, %v", res, err)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("paused Tick() changed state")
	}

	g.TogglePause()
	g.body = []core.Cell{{X: 0, Y: 0}}
	g.direction, g.pending = core.Up, core.Up
	g.Tick() // dies
	before = g.Snapshot()
	res, err = g.Tick()
	if err != nil || res != (TickResult{}) {
		t.Errorf("game over Tick() = %+v, %v", res, err)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("game over Tick() changed state")
	}
}

func TestTogglePause(t *testing.T) {
	g := newTestGame(t)

	g.TogglePause()
	if g.Phase() != PhasePaused {
		t.Fatalf("phase = %s, expected paused", g.Phase())
	}
	g.TogglePause()
	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %s, expected running", g.Phase())
	}

	g.phase = PhaseGameOver
	g.TogglePause()
	if g.Phase() != PhaseGameOver {
		t.Error("TogglePause should not leave game over")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	store := NewMemoryHighScores(0)
	g := newTestGame(t, WithHighScoreStore(store))

	g.food = core.Cell{X: 6, Y: 9}
	g.Tick()
	g.food = core.Cell{X: 20, Y: 17} // Off the path to the wall
	g.RequestDirection(core.Up)
	for g.Phase() == PhaseRunning {
		g.Tick()
	}
	if g.Score() != 1 {
		t.Fatalf("score = %d, expected 1 before reset", g.Score())
	}

	g.Reset()
	s := g.Snapshot()
	if s.Phase != PhaseRunning || s.Score != 0 || s.TickInterval != 150*time.Millisecond {
		t.Errorf("after reset phase/score/interval = %s/%d/%s", s.Phase, s.Score, s.TickInterval)
	}
	if !reflect.DeepEqual(s.Body, cells([2]int{5, 9}, [2]int{4, 9}, [2]int{3, 9})) {
		t.Errorf("after reset body = %v", s.Body)
	}
	if s.Direction != core.Right || s.Pending != core.Right {
		t.Errorf("after reset direction = %v/%v", s.Direction, s.Pending)
	}
	if s.Occupied(s.Food) {
		t.Errorf("after reset food %v is on the body", s.Food)
	}
	if s.HighScore != 1 {
		t.Errorf("high score = %d, expected it to survive reset", s.HighScore)
	}
}

func TestResetFromPaused(t *testing.T) {
	g := newTestGame(t)
	g.TogglePause()
	g.Reset()
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %s after reset, expected running", g.Phase())
	}
}

func TestTickIntervalFloor(t *testing.T) {
	g := newTestGame(t)
	start := append([]core.Cell(nil), g.body...)

	for i := range 40 {
		// Put the snake back at the start and feed it directly ahead.
		g.body = append([]core.Cell(nil), start...)
		g.direction, g.pending = core.Right, core.Right
		g.food = core.Cell{X: 6, Y: 9}

		if _, err := g.Tick(); err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
		if g.TickInterval() < 70*time.Millisecond {
			t.Fatalf("eat %d: interval %s dropped below the floor", i, g.TickInterval())
		}
	}

	if g.Score() != 40 {
		t.Errorf("score = %d, expected 40", g.Score())
	}
	if g.TickInterval() != 70*time.Millisecond {
		t.Errorf("interval = %s, expected the 70ms floor", g.TickInterval())
	}
}

func TestHighScorePersistence(t *testing.T) {
	store := NewMemoryHighScores(5)
	g := newTestGame(t, WithHighScoreStore(store))

	if g.HighScore() != 5 {
		t.Fatalf("loaded high score = %d, expected 5", g.HighScore())
	}

	// Not a new record
	g.food = g.body[0].Add(g.direction)
	g.Tick()
	if store.Saves() != 0 {
		t.Errorf("saved %d times without beating the record", store.Saves())
	}

	// Beat the record
	g.score = 5
	g.food = g.body[0].Add(g.direction)
	g.Tick()
	if g.HighScore() != 6 || store.Saves() != 1 {
		t.Errorf("high score = %d, saves = %d, expected 6 and 1", g.HighScore(), store.Saves())
	}

	// A fresh game picks the saved value up
	g2 := newTestGame(t, WithHighScoreStore(store))
	if g2.HighScore() != 6 {
		t.Errorf("new game high score = %d, expected 6", g2.HighScore())
	}
}

type failingStore struct{}

func (failingStore) LoadHighScore() (int, error) { return 0, errors.New("disk on fire") }
func (failingStore) SaveHighScore(int) error     { return errors.New("disk on fire") }

func TestFailingStoreDoesNotBreakTick(t *testing.T) {
	g := newTestGame(t, WithHighScoreStore(failingStore{}))
	g.food = g.body[0].Add(g.direction)

	res, err := g.Tick()
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if !res.Ate || g.Score() != 1 || g.HighScore() != 1 {
		t.Errorf("result %+v, score %d, high %d", res, g.Score(), g.HighScore())
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.GridConfig{Cols: 3, Rows: 1}
	cfg.Start.Body = []core.Cell{{X: 1, Y: 0}, {X: 0, Y: 0}}
	cfg.Start.Food = &core.Cell{X: 2, Y: 0}

	g, err := New(cfg, WithSeed(1))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res, err := g.Tick()
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("expected ErrBoardFull, got %v", err)
	}
	if !res.Ate || g.Score() != 1 {
		t.Errorf("result %+v, score %d", res, g.Score())
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, expected game_over", g.Phase())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Start.Food = nil

	g1, _ := New(cfg, WithSeed(12345))
	g2, _ := New(cfg, WithSeed(12345))

	pilot := NewAutopilot(g1.Grid())
	for range 500 {
		g1.RequestDirection(pilot.Next(g1.Snapshot()))
		g2.RequestDirection(pilot.Next(g2.Snapshot()))
		g1.Tick()
		g2.Tick()
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%s\n%s", g1.DebugState(), g2.DebugState())
	}
}

// Random play checks the invariants that must hold after every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(t, WithSeed(seed))
		rng := rand.New(rand.NewSource(seed))
		pilot := NewAutopilot(g.Grid())
		floor := g.Config().Timing.MinInterval

		lastScore := 0
		for i := range 3000 {
			switch rng.Intn(10) {
			case 0:
				g.RequestDirection(core.Directions[rng.Intn(4)])
			case 1:
				g.TogglePause()
			default:
				g.RequestDirection(pilot.Next(g.Snapshot()))
			}

			res, err := g.Tick()
			if err != nil {
				t.Fatalf("seed %d tick %d: %v", seed, i, err)
			}
			s := g.Snapshot()

			if hasDuplicates(s.Body) {
				t.Fatalf("seed %d tick %d: duplicate body cells %v", seed, i, s.Body)
			}
			if s.Score < lastScore || s.Score < 0 {
				t.Fatalf("seed %d tick %d: score went from %d to %d", seed, i, lastScore, s.Score)
			}
			if s.TickInterval < floor {
				t.Fatalf("seed %d tick %d: interval %s below floor", seed, i, s.TickInterval)
			}
			if res.Ate && s.Occupied(s.Food) {
				t.Fatalf("seed %d tick %d: food %v spawned on body", seed, i, s.Food)
			}
			if s.HighScore < s.Score {
				t.Fatalf("seed %d tick %d: high score %d below score %d", seed, i, s.HighScore, s.Score)
			}
			lastScore = s.Score

			if s.Phase == PhaseGameOver {
				g.Reset()
				lastScore = 0
			}
		}
	}
}
