package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RowLabel returns the letter label of a zero-based row: A..Z, then AA, AB...
func RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	var label []byte
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte('A' + (n-1)%26)}, label...)
	}
	return string(label)
}

// ParseCoordinate converts notation such as "B3" into a zero-based position.
// Letters are case-insensitive. Bounds are left to the caller.
func ParseCoordinate(s string) (Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	split := 0
	for split < len(s) && s[split] >= 'A' && s[split] <= 'Z' {
		split++
	}
	if split == 0 || split == len(s) {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	row := 0
	for i := 0; i < split; i++ {
		if row > (math.MaxInt-26)/26 {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
		}
		row = row*26 + int(s[i]-'A'+1)
	}

	digits := s[split:]
	if digits[0] == '+' || digits[0] == '-' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	col, err := strconv.Atoi(digits)
	if err != nil || col < 1 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	return Position{Row: row - 1, Col: col - 1}, nil
}
