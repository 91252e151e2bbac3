package i

import (
	"context"
	"time"
)

// GameServer defines the interface for a single-player minesweeper game loop.
type GameServer interface {
	// Start runs the game loop until Stop is called or no action arrives
	// within idle.
	Start(idle time.Duration)

	// Stop ends the game loop and publishes the final state.
	Stop()

	// Uncover reveals the cell at (row, col) and returns the resulting state.
	Uncover(ctx context.Context, row, col int) (GameState, error)

	// State returns the current state without changing it.
	State(ctx context.Context) (GameState, error)

	// EndChan delivers the final state once the loop has ended, then closes.
	EndChan() <-chan GameState
}
