package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tictactoe-cli/internal/apperror"
	"tictactoe-cli/internal/board"
	"tictactoe-cli/internal/player"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

var ErrNoPlayers = errors.New("game needs at least one player")

// Result is the terminal outcome of a game. Winner is nil on a draw.
type Result struct {
	Status string
	Winner *player.Player
}

// Manager owns the turn order and drives the game until a win or a full board.
// It references the board and the players but leaves cell mutation to the
// board itself. One Manager runs exactly one game; there is no restart.
type Manager struct {
	logger  *slog.Logger
	board   *board.Board
	players []*player.Player
	output  io.Writer

	current int
	status  string
	winner  *player.Player
}

func NewManager(logger *slog.Logger, gameBoard *board.Board, players []*player.Player, output io.Writer) (*Manager, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	return &Manager{
		logger:  logger.With("component", "game"),
		board:   gameBoard,
		players: players,
		output:  output,
		status:  StatusOngoing,
	}, nil
}

func (that *Manager) Status() string {
	return that.status
}

// Play - runs turns until a player wins or the board fills up, then announces
// the result. The context stops the loop between turns; a pending input read
// is not interrupted.
func (that *Manager) Play(ctx context.Context) (*Result, error) {
	if that.status != StatusOngoing {
		return nil, apperror.ErrGameFinished
	}

	for that.status == StatusOngoing && !that.board.IsFull() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playTurn(); err != nil {
			return nil, fmt.Errorf("turn failed: %w", err)
		}
	}

	if that.status == StatusOngoing {
		that.status = StatusDraw
	}

	that.announceResult()

	return &Result{Status: that.status, Winner: that.winner}, nil
}

func (that *Manager) playTurn() error {
	currentPlayer := that.players[that.current]

	fmt.Fprintf(that.output, "Player %d's Turn (%s)\n", currentPlayer.Number, currentPlayer.Mark)

	row, col, err := currentPlayer.ProduceMove(that.board)
	if err != nil {
		return fmt.Errorf("player %d could not produce a move: %w", currentPlayer.Number, err)
	}

	if err = that.board.Place(row, col, currentPlayer.Mark); err != nil {
		// strategies return only legal moves, so this is a programming error
		return fmt.Errorf("player %d move rejected: %w", currentPlayer.Number, err)
	}

	if currentPlayer.IsBot() {
		fmt.Fprintf(that.output, "Bot chose: %d %d\n", row+1, col+1)
	}

	fmt.Fprint(that.output, that.board.Render())

	that.logger.Debug("move applied", "player", currentPlayer.Number, "mark", currentPlayer.Mark, "row", row, "col", col)

	if that.board.HasWinner(currentPlayer.Mark) {
		that.status = StatusWon
		that.winner = currentPlayer

		return nil
	}

	that.current = (that.current + 1) % len(that.players)

	return nil
}

func (that *Manager) announceResult() {
	switch that.status {
	case StatusWon:
		fmt.Fprintf(that.output, "Player %d wins!\n", that.winner.Number)
	case StatusDraw:
		fmt.Fprintln(that.output, "It's a draw!")
	}
}
