package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrOutOfBounds    = errors.New("coordinates are outside the board")
	ErrGameFinished   = errors.New("game is already finished")
	ErrInvalidSetup   = errors.New("invalid game setup")
	ErrMalformedInput = errors.New("malformed input")
)
