package snake

// Phase is the coarse mode of the game.
type Phase int

const (
	// PhaseRunning is the initial phase; only running games tick.
	PhaseRunning Phase = iota
	// PhasePaused is reachable from and reversible to PhaseRunning only.
	PhasePaused
	// PhaseGameOver is terminal until Reset.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Collision describes why a tick ended the game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}
