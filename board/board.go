package board

import (
	"fmt"
	"strings"
)

// Board is a rows x cols hazard grid. It is mutated only through Uncover and
// is not safe for concurrent use.
type Board struct {
	rows     int
	cols     int
	hazards  int
	grid     [][]Cell
	revealed int  // distinct safe cells uncovered so far
	gameOver bool // a hazard was uncovered or every safe cell was
}

// Option configures board construction.
type Option func(*options)

type options struct {
	sampler Sampler
}

// WithSampler sets the strategy used to place hazards.
func WithSampler(s Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// New builds a board and places its hazards immediately. Hazards are chosen
// by a random sampler unless WithSampler overrides it.
func New(rows, cols, hazards int, opts ...Option) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if hazards <= 0 || hazards >= rows*cols {
		return nil, fmt.Errorf("%w: got %d for %d cells", ErrInvalidHazardCount, hazards, rows*cols)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampler == nil {
		o.sampler = NewRandomSampler()
	}

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	b := &Board{rows: rows, cols: cols, hazards: hazards, grid: grid}

	if err := b.placeHazards(o.sampler.Sample(rows, cols, hazards)); err != nil {
		return nil, err
	}
	return b, nil
}

// placeHazards marks each position as a hazard and bumps the adjacency count
// of every cell around it, hazards included.
func (b *Board) placeHazards(positions []Position) error {
	if len(positions) != b.hazards {
		return fmt.Errorf("%w: want %d positions, got %d", ErrInvalidPlacement, b.hazards, len(positions))
	}
	for _, p := range positions {
		if !b.InBound(p.Row, p.Col) {
			return fmt.Errorf("%w: %v is off the board", ErrInvalidPlacement, p)
		}
		if b.grid[p.Row][p.Col].hazard {
			return fmt.Errorf("%w: %v chosen twice", ErrInvalidPlacement, p)
		}
		b.grid[p.Row][p.Col].hazard = true
	}

	for _, p := range positions {
		for r := max(0, p.Row-1); r <= min(p.Row+1, b.rows-1); r++ {
			for c := max(0, p.Col-1); c <= min(p.Col+1, b.cols-1); c++ {
				if r == p.Row && c == p.Col {
					continue
				}
				b.grid[r][c].adjacent++
			}
		}
	}
	return nil
}

// Uncover reveals the cell at (row, col). Uncovering a hazard ends the game
// as a loss; uncovering the last covered safe cell ends it as a win.
// Uncovering an already revealed cell changes nothing.
func (b *Board) Uncover(row, col int) error {
	if !b.InBound(row, col) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	if b.gameOver {
		return ErrGameOver
	}

	cell := &b.grid[row][col]
	if cell.hazard {
		cell.Reveal()
		b.gameOver = true
		return nil
	}
	if cell.revealed {
		return nil
	}

	cell.Reveal()
	b.revealed++
	if b.revealed == b.rows*b.cols-b.hazards {
		b.gameOver = true
	}
	return nil
}

// InBound reports whether (row, col) addresses a cell of the board.
func (b *Board) InBound(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsHazardAt reports whether (row, col) holds a hazard. Positions off the
// board hold none.
func (b *Board) IsHazardAt(row, col int) bool {
	if !b.InBound(row, col) {
		return false
	}
	return b.grid[row][col].hazard
}

// CellAt returns a copy of the cell at (row, col).
func (b *Board) CellAt(row, col int) (Cell, error) {
	if !b.InBound(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return b.grid[row][col], nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }
func (b *Board) HazardCount() int { return b.hazards }
func (b *Board) RevealedCount() int { return b.revealed }
func (b *Board) GameOver() bool { return b.gameOver }

// SafeRemaining returns how many safe cells are still covered.
func (b *Board) SafeRemaining() int {
	return b.rows*b.cols - b.hazards - b.revealed
}

// Render draws the grid: a header of 1-based column numbers, then one line
// per row labelled with letters.
//
//	    1   2   3
//	A | - | 1 | - |
//	B |   | 2 | * |
func (b *Board) Render() string {
	labelWidth := len(RowLabel(b.rows - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", labelWidth+3))
	// Each number starts above its cell token; cells are four wide.
	var header strings.Builder
	for c := 0; c < b.cols; c++ {
		fmt.Fprintf(&header, "%-4d", c+1)
	}
	sb.WriteString(strings.TrimRight(header.String(), " "))

	for r, row := range b.grid {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "%-*s |", labelWidth, RowLabel(r))
		for _, cell := range row {
			sb.WriteByte(' ')
			sb.WriteString(cell.Render())
			sb.WriteString(" |")
		}
	}
	return sb.String()
}

func (b *Board) String() string { return b.Render() }
