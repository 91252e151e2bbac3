package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-minesweeper/board"
	"github.com/beka-birhanu/vinom-minesweeper/service/i"
)

// Game-related errors.
var (
	ErrGameEnded = errors.New("game session has ended")
	ErrNilBoard  = errors.New("board is nil")
)

// Action kinds handled by the game loop.
const (
	uncoverActionType = iota + 1
	stateRequestActionType
)

type action struct {
	kind     int
	row, col int
	reply    chan actionResult
}

type actionResult struct {
	state i.GameState
	err   error
}

// Game owns one board. Every read and write of the board happens on the
// goroutine running Start, so the board itself needs no locking.
type Game struct {
	board    *board.Board  // The board being played.
	outcome  i.Outcome     // Result inferred from the last uncovered cell.
	actions  chan action   // Requests from callers.
	stop     chan struct{} // Closed by Stop.
	done     chan struct{} // Closed once the loop has returned.
	endChan  chan i.GameState
	stopOnce sync.Once
}

// NewGame creates a Game around a freshly built board.
func NewGame(b *board.Board) (*Game, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	return &Game{
		board:   b,
		actions: make(chan action),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		endChan: make(chan i.GameState, 1),
	}, nil
}

// Start runs the game loop until Stop is called or no action arrives within
// idle. The final state is then sent on EndChan.
func (g *Game) Start(idle time.Duration) {
	timer := time.NewTimer(idle)
	defer func() {
		timer.Stop()
		close(g.done)
		g.endChan <- g.snapshot()
		close(g.endChan)
	}()

	for {
		select {
		case <-g.stop:
			return
		case <-timer.C:
			return
		case a := <-g.actions:
			a.reply <- g.handleAction(a)
			timer.Reset(idle)
		}
	}
}

// Stop ends the game loop. It is safe to call more than once.
func (g *Game) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
}

// Uncover reveals the cell at (row, col).
func (g *Game) Uncover(ctx context.Context, row, col int) (i.GameState, error) {
	return g.send(ctx, action{kind: uncoverActionType, row: row, col: col})
}

// State returns the current game state.
func (g *Game) State(ctx context.Context) (i.GameState, error) {
	return g.send(ctx, action{kind: stateRequestActionType})
}

// EndChan returns the end channel for the game.
func (g *Game) EndChan() <-chan i.GameState {
	return g.endChan
}

func (g *Game) send(ctx context.Context, a action) (i.GameState, error) {
	a.reply = make(chan actionResult, 1)
	select {
	case g.actions <- a:
	case <-g.done:
		return i.GameState{}, ErrGameEnded
	case <-ctx.Done():
		return i.GameState{}, ctx.Err()
	}

	select {
	case r := <-a.reply:
		return r.state, r.err
	case <-ctx.Done():
		return i.GameState{}, ctx.Err()
	}
}

// handleAction processes an action on the loop goroutine.
func (g *Game) handleAction(a action) actionResult {
	switch a.kind {
	case uncoverActionType:
		if err := g.board.Uncover(a.row, a.col); err != nil {
			return actionResult{state: g.snapshot(), err: err}
		}
		if g.board.GameOver() {
			g.outcome = i.Won
			if g.board.IsHazardAt(a.row, a.col) {
				g.outcome = i.Lost
			}
		}
	}
	return actionResult{state: g.snapshot()}
}

// snapshot creates a snapshot of the current game state.
func (g *Game) snapshot() i.GameState {
	return i.GameState{
		Board:         g.board.Render(),
		Rows:          g.board.Rows(),
		Cols:          g.board.Cols(),
		Hazards:       g.board.HazardCount(),
		Revealed:      g.board.RevealedCount(),
		SafeRemaining: g.board.SafeRemaining(),
		GameOver:      g.board.GameOver(),
		Outcome:       g.outcome,
	}
}
