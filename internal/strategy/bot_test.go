package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-cli/internal/board"
)

func TestBot_ProduceMove(t *testing.T) {
	t.Run("Move is legal on a fresh board", func(t *testing.T) {
		// Given: an empty 3x3 board and a seeded bot
		gameBoard, err := board.New(3)
		require.NoError(t, err)

		bot := NewBot(rand.New(rand.NewSource(1)))

		// When: the bot produces a move
		row, col, err := bot.ProduceMove(gameBoard, "X")

		// Then: the move is legal at the moment of return
		require.NoError(t, err)
		assert.True(t, gameBoard.IsValidMove(row, col))
	})

	t.Run("Finds the single free cell", func(t *testing.T) {
		// Given: a 2x2 board with exactly one free cell
		gameBoard, err := board.New(2)
		require.NoError(t, err)
		require.NoError(t, gameBoard.Place(0, 0, "X"))
		require.NoError(t, gameBoard.Place(0, 1, "O"))
		require.NoError(t, gameBoard.Place(1, 0, "X"))

		bot := NewBot(rand.New(rand.NewSource(1)))

		// When: the bot produces a move
		row, col, err := bot.ProduceMove(gameBoard, "O")

		// Then: it picks the only remaining cell
		require.NoError(t, err)
		assert.Equal(t, 1, row)
		assert.Equal(t, 1, col)
	})

	t.Run("Every move is legal until the board fills", func(t *testing.T) {
		// Given: an empty 4x4 board
		gameBoard, err := board.New(4)
		require.NoError(t, err)

		bot := NewBot(rand.New(rand.NewSource(42)))

		// When: the bot plays until the board is full
		for !gameBoard.IsFull() {
			row, col, moveErr := bot.ProduceMove(gameBoard, "X")
			require.NoError(t, moveErr)
			require.True(t, gameBoard.IsValidMove(row, col))
			require.NoError(t, gameBoard.Place(row, col, "X"))
		}

		// Then: invoking it once more fails
		_, _, err = bot.ProduceMove(gameBoard, "X")
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
