package strategy

import "tictactoe-cli/internal/board"

// Strategy produces a legal move for the given mark. Strategies only decide;
// applying the move to the board is the caller's job, so the board stays the
// sole mutator of its own cells.
type Strategy interface {
	ProduceMove(gameBoard *board.Board, mark string) (row, col int, err error)
}
