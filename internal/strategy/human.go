package strategy

import (
	"fmt"
	"io"

	"tictactoe-cli/internal/board"
)

// CoordinateSource supplies (row, col) pairs as the user typed them, 1-based.
type CoordinateSource interface {
	RequestCoordinates() (row, col int, err error)
}

type humanStrategy struct {
	input  CoordinateSource
	output io.Writer
}

// NewHuman - returns a strategy that asks the input source for coordinates
// until a legal move is given. Illegal moves get a retry message with no
// attempt limit; a read failure (malformed input) is returned as a hard error.
func NewHuman(input CoordinateSource, output io.Writer) Strategy {
	return &humanStrategy{input: input, output: output}
}

func (that *humanStrategy) ProduceMove(gameBoard *board.Board, _ string) (int, int, error) {
	for {
		row, col, err := that.input.RequestCoordinates()
		if err != nil {
			return 0, 0, fmt.Errorf("failed to read coordinates: %w", err)
		}

		// users type 1-based coordinates
		row--
		col--

		if gameBoard.IsValidMove(row, col) {
			return row, col, nil
		}

		fmt.Fprintln(that.output, "Invalid move. Try again.")
	}
}
