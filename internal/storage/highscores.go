package storage

import (
	"github.com/vovakirdan/mango-snake/internal/games/snake"
)

// HighScores adapts a Store to the game's scalar high-score interface.
type HighScores struct {
	store  *Store
	gameID string
}

// NewHighScores creates a high-score adapter for gameID.
func NewHighScores(store *Store, gameID string) *HighScores {
	if gameID == "" {
		gameID = DefaultGameID
	}
	return &HighScores{store: store, gameID: gameID}
}

// LoadHighScore implements snake.HighScoreStore.
func (h *HighScores) LoadHighScore() (int, error) {
	return h.store.HighScore(h.gameID)
}

// SaveHighScore implements snake.HighScoreStore.
func (h *HighScores) SaveHighScore(score int) error {
	return h.store.SetHighScore(h.gameID, score)
}

// Ensure HighScores implements snake.HighScoreStore
var _ snake.HighScoreStore = (*HighScores)(nil)
