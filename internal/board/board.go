package board

import (
	"fmt"
	"strings"

	"tictactoe-cli/internal/apperror"
)

const EmptyCell = ""

// Board is a square grid of cells. Marks are written once and never overwritten.
type Board struct {
	size int
	grid [][]string
}

// New - creates an empty size×size board.
func New(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: board size must be positive, got %d", apperror.ErrInvalidSetup, size)
	}

	grid := make([][]string, size)
	for i := range grid {
		grid[i] = make([]string, size)
	}

	return &Board{size: size, grid: grid}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Cell - returns the mark at (row, col), or EmptyCell for unoccupied or out-of-range cells.
func (that *Board) Cell(row, col int) string {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return EmptyCell
	}
	return that.grid[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that.grid {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// IsValidMove - reports whether (row, col) lies on the board and the cell is unoccupied.
func (that *Board) IsValidMove(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size && that.grid[row][col] == EmptyCell
}

// Place - writes mark into (row, col). Invalid coordinates and occupied cells
// are rejected so a mark can never be silently overwritten.
func (that *Board) Place(row, col int, mark string) error {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that.grid[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.grid[row][col] = mark

	return nil
}

// HasWinner - reports whether mark holds a full row, a full column, the main
// diagonal or the anti-diagonal.
func (that *Board) HasWinner(mark string) bool {
	return that.hasWinningRow(mark) || that.hasWinningColumn(mark) || that.hasWinningDiagonal(mark)
}

func (that *Board) hasWinningRow(mark string) bool {
	for row := 0; row < that.size; row++ {
		win := true
		for col := 0; col < that.size; col++ {
			if that.grid[row][col] != mark {
				win = false
				break
			}
		}
		if win {
			return true
		}
	}

	return false
}

func (that *Board) hasWinningColumn(mark string) bool {
	for col := 0; col < that.size; col++ {
		win := true
		for row := 0; row < that.size; row++ {
			if that.grid[row][col] != mark {
				win = false
				break
			}
		}
		if win {
			return true
		}
	}

	return false
}

func (that *Board) hasWinningDiagonal(mark string) bool {
	mainDiagonal, antiDiagonal := true, true
	for i := 0; i < that.size; i++ {
		if that.grid[i][i] != mark {
			mainDiagonal = false
		}
		if that.grid[i][that.size-i-1] != mark {
			antiDiagonal = false
		}
	}

	return mainDiagonal || antiDiagonal
}

// Render - returns the grid as display rows, one cell per column. No side effects.
func (that *Board) Render() string {
	var builder strings.Builder

	for _, row := range that.grid {
		for _, cell := range row {
			if cell == EmptyCell {
				cell = " "
			}
			builder.WriteString("| " + cell + " ")
		}
		builder.WriteString("|\n")
	}

	return builder.String()
}
