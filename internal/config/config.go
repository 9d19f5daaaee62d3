package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"tictactoe-cli/internal/apperror"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

// Game is the optional pre-set game setup. When complete it replaces the
// interactive setup prompts. Players with sequence number <= BotCount play as
// bots.
type Game struct {
	BoardSize   int      `yaml:"board-size" env:"BOARD_SIZE" env-default:"0"`
	BotCount    int      `yaml:"bot-count" env:"BOT_COUNT" env-default:"0"`
	PlayerMarks []string `yaml:"player-marks" env:"PLAYER_MARKS"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Game) IsComplete() bool {
	return that.BoardSize > 0 && len(that.PlayerMarks) > 0
}

// Validate - rejects setups the game cannot run with.
func (that *Game) Validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("%w: board size must be positive, got %d", apperror.ErrInvalidSetup, that.BoardSize)
	}

	if len(that.PlayerMarks) == 0 {
		return fmt.Errorf("%w: at least one player is required", apperror.ErrInvalidSetup)
	}

	if that.BotCount < 0 || that.BotCount > len(that.PlayerMarks) {
		return fmt.Errorf("%w: bot count %d must be between 0 and the player count %d",
			apperror.ErrInvalidSetup, that.BotCount, len(that.PlayerMarks))
	}

	for i, mark := range that.PlayerMarks {
		if mark == "" {
			return fmt.Errorf("%w: player %d has an empty mark", apperror.ErrInvalidSetup, i+1)
		}
	}

	return nil
}
