package player

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-cli/internal/board"
	"tictactoe-cli/internal/console"
)

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("Bot flag selects the bot strategy", func(t *testing.T) {
		// Given: a bot player on an empty board
		gameBoard, err := board.New(3)
		require.NoError(t, err)

		cons := console.New(strings.NewReader(""), &bytes.Buffer{})
		bot := New(1, "X", true, cons, cons.Writer(), rng)

		// When: the bot produces a move without any console input
		row, col, err := bot.ProduceMove(gameBoard)

		// Then: a legal move comes back and the player reports as a bot
		require.NoError(t, err)
		assert.True(t, gameBoard.IsValidMove(row, col))
		assert.True(t, bot.IsBot())
		assert.Equal(t, 1, bot.Number)
		assert.Equal(t, "X", bot.Mark)
	})

	t.Run("Human flag selects the console strategy", func(t *testing.T) {
		// Given: a human player whose console input holds "2 2"
		gameBoard, err := board.New(3)
		require.NoError(t, err)

		cons := console.New(strings.NewReader("2 2\n"), &bytes.Buffer{})
		human := New(2, "O", false, cons, cons.Writer(), rng)

		// When: the human produces a move
		row, col, err := human.ProduceMove(gameBoard)

		// Then: the typed 1-based pair maps to cell (1, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, row)
		assert.Equal(t, 1, col)
		assert.False(t, human.IsBot())
	})
}
