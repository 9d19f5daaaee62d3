package player

import (
	"io"
	"math/rand"

	"tictactoe-cli/internal/board"
	"tictactoe-cli/internal/strategy"
)

// Player couples a sequence number and a mark with a move strategy.
// Immutable after construction.
type Player struct {
	Number int
	Mark   string

	bot      bool
	strategy strategy.Strategy
}

// New - builds a player, choosing the strategy from the isBot flag: bots pick
// random legal cells from rng, humans read coordinates from input.
func New(number int, mark string, isBot bool, input strategy.CoordinateSource, output io.Writer, rng *rand.Rand) *Player {
	var moveStrategy strategy.Strategy
	if isBot {
		moveStrategy = strategy.NewBot(rng)
	} else {
		moveStrategy = strategy.NewHuman(input, output)
	}

	return &Player{
		Number:   number,
		Mark:     mark,
		bot:      isBot,
		strategy: moveStrategy,
	}
}

func (that *Player) IsBot() bool {
	return that.bot
}

// ProduceMove - asks the player's strategy for a legal move on the board.
func (that *Player) ProduceMove(gameBoard *board.Board) (int, int, error) {
	return that.strategy.ProduceMove(gameBoard, that.Mark)
}
