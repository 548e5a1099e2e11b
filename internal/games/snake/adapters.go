package snake

import (
	"sync"

	"github.com/vovakirdan/mango-snake/internal/core"
)

// HighScoreStore persists the best score across processes.
// LoadHighScore is called once when a game is constructed, SaveHighScore
// whenever the score newly exceeds the high score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// FoodEvent describes a food item being eaten.
type FoodEvent struct {
	Cell   core.Cell // Where the food was
	Score  int       // Score after eating
	Length int       // Body length after growing
}

// Notifier receives fire-and-forget game events, e.g. to ring a bell.
// Implementations must not block: they are called from inside Tick.
type Notifier interface {
	FoodConsumed(ev FoodEvent)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ev FoodEvent)

// FoodConsumed calls f(ev).
func (f NotifierFunc) FoodConsumed(ev FoodEvent) {
	f(ev)
}

// MemoryHighScores is an in-process HighScoreStore. It is used when no
// database is available and in tests.
type MemoryHighScores struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryHighScores creates a store seeded with an initial high score.
func NewMemoryHighScores(initial int) *MemoryHighScores {
	return &MemoryHighScores{score: initial}
}

// LoadHighScore returns the stored score.
func (m *MemoryHighScores) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SaveHighScore stores score if it is higher than the current value.
func (m *MemoryHighScores) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if score > m.score {
		m.score = score
	}
	return nil
}

// Saves returns how many times SaveHighScore was called.
func (m *MemoryHighScores) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
