package i

import (
	"context"

	"github.com/google/uuid"
)

// GameSessionManager manages single-player game sessions.
type GameSessionManager interface {
	// NewSession creates a board with the given parameters and starts a game on it.
	NewSession(rows, cols, hazards int) (uuid.UUID, GameState, error)

	Uncover(ctx context.Context, sessionID uuid.UUID, row, col int) (GameState, error)

	State(ctx context.Context, sessionID uuid.UUID) (GameState, error)

	// End stops the session. Its board is discarded.
	End(sessionID uuid.UUID) error

	StopAll()
}
