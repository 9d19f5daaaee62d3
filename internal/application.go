package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"tictactoe-cli/internal/board"
	"tictactoe-cli/internal/config"
	"tictactoe-cli/internal/console"
	"tictactoe-cli/internal/game"
	"tictactoe-cli/internal/player"
)

// RunApp - runs one game: gathers the setup, builds the board and the players,
// and drives the game loop until it finishes or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app", "game_id", uuid.NewString())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	cons := console.New(os.Stdin, os.Stdout)

	setup, err := gatherSetup(cons, &conf.Game)
	if err != nil {
		return fmt.Errorf("failed to gather game setup: %w", err)
	}

	if err = setup.Validate(); err != nil {
		return fmt.Errorf("rejected game setup: %w", err)
	}

	gameBoard, err := board.New(setup.BoardSize)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok

	players := make([]*player.Player, 0, len(setup.PlayerMarks))
	for i, mark := range setup.PlayerMarks {
		number := i + 1
		players = append(players, player.New(number, mark, number <= setup.BotCount, cons, cons.Writer(), rng))
	}

	manager, err := game.NewManager(log, gameBoard, players, cons.Writer())
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("Starting game", "board_size", setup.BoardSize, "players", len(players), "bots", setup.BotCount)

	result, err := manager.Play(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Game interrupted")
		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game finished", "status", result.Status)

	return nil
}

// gatherSetup - takes the game setup from config when it is fully specified,
// otherwise prompts for it the way the console flow expects: board size,
// player count, bot count, then one mark per player.
func gatherSetup(cons *console.Console, configured *config.Game) (*config.Game, error) {
	if configured.IsComplete() {
		return configured, nil
	}

	boardSize, err := cons.PromptInt("Enter board size (n): ")
	if err != nil {
		return nil, err
	}

	playerCount, err := cons.PromptInt("Enter number of players: ")
	if err != nil {
		return nil, err
	}

	botCount, err := cons.PromptInt("Enter number of bots: ")
	if err != nil {
		return nil, err
	}

	marks := make([]string, 0, max(playerCount, 0))
	for i := 1; i <= playerCount; i++ {
		mark, promptErr := cons.PromptString(fmt.Sprintf("Enter symbol for Player %d: ", i))
		if promptErr != nil {
			return nil, promptErr
		}
		marks = append(marks, mark)
	}

	return &config.Game{
		BoardSize:   boardSize,
		BotCount:    botCount,
		PlayerMarks: marks,
	}, nil
}
