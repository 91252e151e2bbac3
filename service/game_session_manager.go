package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/beka-birhanu/vinom-minesweeper/board"
	"github.com/beka-birhanu/vinom-minesweeper/service/i"
	"github.com/google/uuid"
)

const (
	defaultIdleTimeout = 10 * time.Minute
)

// Session manager errors.
var (
	ErrSessionNotFound = errors.New("no such session")
	ErrNilLogger       = errors.New("logger is required")
)

// GameSessionManager keeps one Game per session id.
type GameSessionManager struct {
	sessions     map[uuid.UUID]i.GameServer
	boardFactory func(rows, cols, hazards int) (*board.Board, error)
	idleTimeout  time.Duration
	logger       general_i.Logger
	sync.RWMutex
}

// Config wires a GameSessionManager. BoardFactory defaults to board.New with a
// random sampler and IdleTimeout to ten minutes.
type Config struct {
	BoardFactory func(rows, cols, hazards int) (*board.Board, error)
	IdleTimeout  time.Duration
	Logger       general_i.Logger
}

func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	gsm := &GameSessionManager{
		sessions:     make(map[uuid.UUID]i.GameServer),
		boardFactory: c.BoardFactory,
		idleTimeout:  c.IdleTimeout,
		logger:       c.Logger,
	}
	if gsm.boardFactory == nil {
		gsm.boardFactory = func(rows, cols, hazards int) (*board.Board, error) {
			return board.New(rows, cols, hazards)
		}
	}
	if gsm.idleTimeout <= 0 {
		gsm.idleTimeout = defaultIdleTimeout
	}
	return gsm, nil
}

func (g *GameSessionManager) NewSession(rows, cols, hazards int) (uuid.UUID, i.GameState, error) {
	b, err := g.boardFactory(rows, cols, hazards)
	if err != nil {
		g.logger.Warning(fmt.Sprintf("rejected board %dx%d with %d hazards: %s", rows, cols, hazards, err))
		return uuid.Nil, i.GameState{}, err
	}

	game, err := NewGame(b)
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating new game: %s", err))
		return uuid.Nil, i.GameState{}, err
	}

	state := game.snapshot()
	sessionID := g.saveSession(game)
	go game.Start(g.idleTimeout)
	go g.listenGameChan(sessionID, game)
	g.logger.Info(fmt.Sprintf("started session %s: %dx%d with %d hazards", sessionID, rows, cols, hazards))

	return sessionID, state, nil
}

func (g *GameSessionManager) Uncover(ctx context.Context, sessionID uuid.UUID, row, col int) (i.GameState, error) {
	gs, err := g.session(sessionID)
	if err != nil {
		return i.GameState{}, err
	}

	state, err := gs.Uncover(ctx, row, col)
	if err != nil {
		return state, err
	}
	if state.GameOver {
		g.logger.Info(fmt.Sprintf("session %s %s after revealing %d cells", sessionID, state.Outcome, state.Revealed))
	}
	return state, nil
}

func (g *GameSessionManager) State(ctx context.Context, sessionID uuid.UUID) (i.GameState, error) {
	gs, err := g.session(sessionID)
	if err != nil {
		return i.GameState{}, err
	}
	return gs.State(ctx)
}

func (g *GameSessionManager) End(sessionID uuid.UUID) error {
	gs, err := g.session(sessionID)
	if err != nil {
		return err
	}
	gs.Stop()
	return nil
}

func (g *GameSessionManager) StopAll() {
	g.RLock()
	defer g.RUnlock()

	for _, session := range g.sessions {
		session.Stop()
	}
}

// Len returns the number of live sessions.
func (g *GameSessionManager) Len() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.sessions)
}

func (g *GameSessionManager) session(sessionID uuid.UUID) (i.GameServer, error) {
	g.RLock()
	defer g.RUnlock()
	gs, ok := g.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return gs, nil
}

func (g *GameSessionManager) saveSession(gs i.GameServer) uuid.UUID {
	g.Lock()
	defer g.Unlock()

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}
	g.sessions[sessionID] = gs
	return sessionID
}

func (g *GameSessionManager) listenGameChan(id uuid.UUID, gs i.GameServer) {
	final, ok := <-gs.EndChan()
	if ok {
		g.logger.Info(fmt.Sprintf("session %s closed: %s, %d of %d safe cells revealed",
			id, final.Outcome, final.Revealed, final.Revealed+final.SafeRemaining))
	}
	g.clean(id)
}

func (g *GameSessionManager) clean(id uuid.UUID) {
	g.Lock()
	defer g.Unlock()
	delete(g.sessions, id)
}
