package i

// Outcome tells how a game stands.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in_progress"
	}
}

// GameState is a read-only snapshot of a game.
type GameState struct {
	Board         string // rendered grid
	Rows          int
	Cols          int
	Hazards       int
	Revealed      int
	SafeRemaining int
	GameOver      bool
	Outcome       Outcome
}
