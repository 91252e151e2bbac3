package board

import "errors"

// Board-related errors.
var (
	ErrInvalidDimensions  = errors.New("rows and cols must be positive")
	ErrInvalidHazardCount = errors.New("hazard count must leave at least one hazard and one safe cell")
	ErrInvalidPlacement   = errors.New("sampler returned an invalid hazard placement")
	ErrOutOfBounds        = errors.New("position is outside the board")
	ErrGameOver           = errors.New("game is already over")
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
)
