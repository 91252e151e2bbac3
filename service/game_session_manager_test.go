package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/beka-birhanu/vinom-minesweeper/board"
	"github.com/beka-birhanu/vinom-minesweeper/service/i"
	"github.com/google/uuid"
)

func newTestManager(t *testing.T, idle time.Duration) *GameSessionManager {
	t.Helper()
	l, err := logger.New("TEST", "", os.Stdout)
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	gsm, err := NewGameSessionManager(&Config{
		BoardFactory: func(rows, cols, hazards int) (*board.Board, error) {
			return board.New(rows, cols, hazards, board.WithSampler(board.NewSeededSampler(1)))
		},
		IdleTimeout: idle,
		Logger:      l,
	})
	if err != nil {
		t.Fatalf("NewGameSessionManager failed: %v", err)
	}
	t.Cleanup(gsm.StopAll)
	return gsm
}

func waitForLen(t *testing.T, gsm *GameSessionManager, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for gsm.Len() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Len() = %d, want %d", gsm.Len(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNewGameSessionManagerRequiresLogger(t *testing.T) {
	if _, err := NewGameSessionManager(&Config{}); !errors.Is(err, ErrNilLogger) {
		t.Fatalf("err = %v, want %v", err, ErrNilLogger)
	}
}

func TestNewSessionRejectsInvalidBoard(t *testing.T) {
	gsm := newTestManager(t, time.Minute)
	cases := []struct {
		name                string
		rows, cols, hazards int
		want                error
	}{
		{"dimensions", 0, 5, 1, board.ErrInvalidDimensions},
		{"no hazards", 3, 3, 0, board.ErrInvalidHazardCount},
		{"no safe cells", 3, 3, 9, board.ErrInvalidHazardCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, _, err := gsm.NewSession(tc.rows, tc.cols, tc.hazards)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if id != uuid.Nil {
				t.Fatalf("got session id %s on error", id)
			}
		})
	}
	if gsm.Len() != 0 {
		t.Fatalf("rejected boards were stored")
	}
}

func TestSessionPlaysToCompletion(t *testing.T) {
	gsm := newTestManager(t, time.Minute)
	ctx := context.Background()

	id, st, err := gsm.NewSession(4, 4, 3)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if st.Rows != 4 || st.Cols != 4 || st.Hazards != 3 || st.SafeRemaining != 13 || st.GameOver {
		t.Fatalf("initial state = %+v", st)
	}

	// Same seed as the factory, so the layout is known.
	ref, err := board.New(4, 4, 3, board.WithSampler(board.NewSeededSampler(1)))
	if err != nil {
		t.Fatalf("board.New failed: %v", err)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if ref.IsHazardAt(r, c) {
				continue
			}
			st, err = gsm.Uncover(ctx, id, r, c)
			if err != nil {
				t.Fatalf("Uncover(%d, %d) failed: %v", r, c, err)
			}
		}
	}
	if !st.GameOver || st.Outcome != i.Won || st.Revealed != 13 {
		t.Fatalf("final state = %+v, want a win", st)
	}

	got, err := gsm.State(ctx, id)
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if got.Board != st.Board {
		t.Fatalf("State board differs from last uncover")
	}
}

func TestUnknownSession(t *testing.T) {
	gsm := newTestManager(t, time.Minute)
	id := uuid.New()
	if _, err := gsm.Uncover(context.Background(), id, 0, 0); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Uncover err = %v, want %v", err, ErrSessionNotFound)
	}
	if _, err := gsm.State(context.Background(), id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("State err = %v, want %v", err, ErrSessionNotFound)
	}
	if err := gsm.End(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("End err = %v, want %v", err, ErrSessionNotFound)
	}
}

func TestEndRemovesSession(t *testing.T) {
	gsm := newTestManager(t, time.Minute)
	id, _, err := gsm.NewSession(3, 3, 2)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	other, _, err := gsm.NewSession(3, 3, 2)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if id == other {
		t.Fatalf("duplicate session ids")
	}
	waitForLen(t, gsm, 2)

	if err := gsm.End(id); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	waitForLen(t, gsm, 1)
	if _, err := gsm.State(context.Background(), other); err != nil {
		t.Fatalf("other session affected: %v", err)
	}

	gsm.StopAll()
	waitForLen(t, gsm, 0)
}

func TestIdleSessionExpires(t *testing.T) {
	gsm := newTestManager(t, 20*time.Millisecond)
	if _, _, err := gsm.NewSession(3, 3, 1); err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	waitForLen(t, gsm, 0)
}
