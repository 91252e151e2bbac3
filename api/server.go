package api

import (
	"context"
	"errors"
	"math"

	"github.com/beka-birhanu/vinom-minesweeper/board"
	"github.com/beka-birhanu/vinom-minesweeper/service"
	"github.com/beka-birhanu/vinom-minesweeper/service/i"
	"github.com/google/uuid"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// BoardDefaults fills in NewGame parameters a client leaves out.
type BoardDefaults struct {
	Rows    int
	Cols    int
	Hazards int
}

type Server struct {
	gameSessionManager i.GameSessionManager
	defaults           BoardDefaults

	UnimplementedSessionServer
}

func RegisterSessionManager(gsr grpc.ServiceRegistrar, gsm i.GameSessionManager, defaults BoardDefaults) error {
	if gsm == nil {
		return errors.New("game session manager is nil")
	}
	server := &Server{
		gameSessionManager: gsm,
		defaults:           defaults,
	}

	RegisterSessionServer(gsr, server)
	return nil
}

func (s *Server) NewGame(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	rows, err := intField(r, "rows", s.defaults.Rows)
	if err != nil {
		return nil, err
	}
	cols, err := intField(r, "cols", s.defaults.Cols)
	if err != nil {
		return nil, err
	}
	hazards, err := intField(r, "hazards", s.defaults.Hazards)
	if err != nil {
		return nil, err
	}

	id, state, err := s.gameSessionManager.NewSession(rows, cols, hazards)
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]any{
		"session_id": id.String(),
		"state":      stateFields(state),
	})
}

func (s *Server) Uncover(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	id, err := parseSessionID(r.GetFields()["session_id"].GetStringValue())
	if err != nil {
		return nil, err
	}

	var pos board.Position
	if coord, ok := r.GetFields()["coordinate"]; ok {
		pos, err = board.ParseCoordinate(coord.GetStringValue())
		if err != nil {
			return nil, toStatus(err)
		}
	} else {
		if pos.Row, err = intField(r, "row", -1); err != nil {
			return nil, err
		}
		if pos.Col, err = intField(r, "col", -1); err != nil {
			return nil, err
		}
		if pos.Row < 0 || pos.Col < 0 {
			return nil, status.Error(codes.InvalidArgument, "either coordinate or row and col are required")
		}
	}

	state, err := s.gameSessionManager.Uncover(ctx, id, pos.Row, pos.Col)
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]any{"state": stateFields(state)})
}

func (s *Server) Render(ctx context.Context, r *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	id, err := parseSessionID(r.GetValue())
	if err != nil {
		return nil, err
	}
	state, err := s.gameSessionManager.State(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(state.Board), nil
}

func (s *Server) EndGame(ctx context.Context, r *wrapperspb.StringValue) (*emptypb.Empty, error) {
	id, err := parseSessionID(r.GetValue())
	if err != nil {
		return nil, err
	}
	if err := s.gameSessionManager.End(id); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func parseSessionID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "parsing session_id: %s", err)
	}
	return id, nil
}

// intField reads a whole number from r, or fallback when the key is absent.
func intField(r *structpb.Struct, key string, fallback int) (int, error) {
	v, ok := r.GetFields()[key]
	if !ok {
		return fallback, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", key)
	}
	f := n.NumberValue
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a whole number, got %v", key, f)
	}
	return int(f), nil
}

func stateFields(st i.GameState) map[string]any {
	return map[string]any{
		"board":          st.Board,
		"rows":           st.Rows,
		"cols":           st.Cols,
		"hazards":        st.Hazards,
		"revealed":       st.Revealed,
		"safe_remaining": st.SafeRemaining,
		"game_over":      st.GameOver,
		"outcome":        st.Outcome.String(),
	}
}

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, board.ErrInvalidDimensions),
		errors.Is(err, board.ErrInvalidHazardCount),
		errors.Is(err, board.ErrInvalidPlacement),
		errors.Is(err, board.ErrOutOfBounds),
		errors.Is(err, board.ErrInvalidCoordinate):
		code = codes.InvalidArgument
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrGameEnded):
		code = codes.NotFound
	case errors.Is(err, board.ErrGameOver):
		code = codes.FailedPrecondition
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	}
	return status.Error(code, err.Error())
}
