// Package cli is the interactive text front end: it prompts for board
// parameters and coordinates and reports the result of each uncover.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/beka-birhanu/vinom-minesweeper/board"
)

// MaxSide bounds prompted rows and columns so every row keeps a single letter.
const MaxSide = 26

const (
	msgInvalidInput = "Invalid input."
	msgOutOfRange   = "That coordinate is not on the board."
	msgWin          = "Congratulations, you win!"
	msgLoss         = "Game over! You uncovered a mine."
	msgQuit         = "Goodbye."
)

// Options presets board parameters. Zero values are prompted for.
type Options struct {
	Rows    int
	Cols    int
	Hazards int
	Sampler board.Sampler    // nil places hazards at random
	Logger  general_i.Logger // optional
}

type session struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

// Run plays one game reading from in and writing to out. It returns when the
// game ends, the player quits or in is exhausted.
func Run(in io.Reader, out io.Writer, opts Options) error {
	s := &session{in: bufio.NewScanner(in), out: out, opts: opts}

	s.println("Welcome to Minesweeper!")
	s.println("To play, enter the coordinates of a square to uncover.")
	s.println("For example, 'A1' uncovers the square in the first row and first column.")
	s.println("Enter 'quit' at any time to quit the game.")

	b, err := s.newBoard()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.println(msgQuit)
			return nil
		}
		return err
	}
	s.logf("started %dx%d game with %d hazards", b.Rows(), b.Cols(), b.HazardCount())
	s.println(b.Render())

	last := board.Position{Row: -1, Col: -1}
	for !b.GameOver() {
		line, ok := s.prompt("Enter a coordinate to uncover: ")
		if !ok || strings.EqualFold(line, "quit") {
			s.println(msgQuit)
			s.logf("player quit with %d safe cells left", b.SafeRemaining())
			return nil
		}
		pos, err := board.ParseCoordinate(line)
		if err != nil {
			s.println(msgInvalidInput)
			continue
		}
		if !b.InBound(pos.Row, pos.Col) {
			s.println(msgOutOfRange)
			continue
		}
		if err := b.Uncover(pos.Row, pos.Col); err != nil {
			return err
		}
		last = pos
		s.println(b.Render())
	}

	if b.IsHazardAt(last.Row, last.Col) {
		s.println(msgLoss)
		s.logf("game lost at %s%d", board.RowLabel(last.Row), last.Col+1)
	} else {
		s.println(msgWin)
		s.logf("game won")
	}
	return nil
}

// newBoard asks for any parameters not preset and builds the board. Prompted
// values are range-checked so only presets can be rejected by board.New.
func (s *session) newBoard() (*board.Board, error) {
	var err error
	rows, cols, hazards := s.opts.Rows, s.opts.Cols, s.opts.Hazards
	if rows == 0 {
		if rows, err = s.promptInt(fmt.Sprintf("Enter the number of rows (1-%d): ", MaxSide), 1, MaxSide); err != nil {
			return nil, err
		}
	}
	if cols == 0 {
		lo := 1
		if rows == 1 {
			lo = 2
		}
		if cols, err = s.promptInt(fmt.Sprintf("Enter the number of columns (%d-%d): ", lo, MaxSide), lo, MaxSide); err != nil {
			return nil, err
		}
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: got %dx%d", board.ErrInvalidDimensions, rows, cols)
	}
	if rows == 1 && cols == 1 {
		return nil, fmt.Errorf("%w: a %dx%d board has no room for a safe cell", board.ErrInvalidHazardCount, rows, cols)
	}
	if hazards == 0 {
		if hazards, err = s.promptInt("Enter the number of mines: ", 1, rows*cols-1); err != nil {
			return nil, err
		}
	}

	var opts []board.Option
	if s.opts.Sampler != nil {
		opts = append(opts, board.WithSampler(s.opts.Sampler))
	}
	return board.New(rows, cols, hazards, opts...)
}

// promptInt asks until it reads an integer in [lo, hi].
func (s *session) promptInt(label string, lo, hi int) (int, error) {
	for {
		line, ok := s.prompt(label)
		if !ok {
			return 0, io.EOF
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		s.println(msgInvalidInput)
	}
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *session) logf(format string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Info(fmt.Sprintf(format, args...))
	}
}
