package strategy

import (
	"errors"
	"math/rand"

	"tictactoe-cli/internal/board"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type cell struct {
	row, col int
}

type botStrategy struct {
	rng *rand.Rand
}

// NewBot - returns a strategy that picks uniformly among the free cells.
func NewBot(rng *rand.Rand) Strategy {
	return &botStrategy{rng: rng}
}

func (that *botStrategy) ProduceMove(gameBoard *board.Board, _ string) (int, int, error) {
	size := gameBoard.Size()

	availableCells := make([]cell, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if gameBoard.IsValidMove(row, col) {
				availableCells = append(availableCells, cell{row: row, col: col})
			}
		}
	}

	if len(availableCells) == 0 {
		return 0, 0, ErrNoAvailableMoves
	}

	chosen := availableCells[that.rng.Intn(len(availableCells))]

	return chosen.row, chosen.col, nil
}
