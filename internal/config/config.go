package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
	"github.com/rocketscienceinc/caro-engine/internal/caro"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Matches  int      `yaml:"matches" env:"MATCHES" env-default:"1"`
	Seed     int64    `yaml:"seed" env:"SEED" env-default:"0"`
	Game     Game     `yaml:"game"`
	Opponent Opponent `yaml:"opponent"`
}

type Game struct {
	Rows             int    `yaml:"rows" env:"GAME_ROWS" env-default:"15"`
	Cols             int    `yaml:"cols" env:"GAME_COLS" env-default:"15"`
	WinningCondition int    `yaml:"winning-condition" env:"GAME_WINNING_CONDITION" env-default:"5"`
	StartingSymbol   string `yaml:"starting-symbol" env:"GAME_STARTING_SYMBOL" env-default:"X"`
}

type Opponent struct {
	Enabled    bool   `yaml:"enabled" env:"OPPONENT_ENABLED"`
	TurnSlot   int    `yaml:"turn-slot" env:"OPPONENT_TURN_SLOT" env-default:"2"`
	Difficulty string `yaml:"difficulty" env:"OPPONENT_DIFFICULTY" env-default:"medium"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// EngineConfig - converts the file configuration into an engine configuration.
func (that *Config) EngineConfig() (caro.Config, error) {
	symbol, err := entity.ParseSymbol(that.Game.StartingSymbol)
	if err != nil {
		return caro.Config{}, fmt.Errorf("bad starting symbol: %w", err)
	}

	slot := entity.TurnSlot(that.Opponent.TurnSlot) //nolint: gosec // checked right below
	if int(slot) != that.Opponent.TurnSlot || !slot.IsValid() {
		return caro.Config{}, fmt.Errorf("bad opponent turn slot: %w %d", apperror.ErrInvalidTurnSlot, that.Opponent.TurnSlot)
	}

	return caro.Config{
		Rows:             that.Game.Rows,
		Cols:             that.Game.Cols,
		WinningCondition: that.Game.WinningCondition,
		StartingSymbol:   symbol,
		Opponent: caro.OpponentConfig{
			Enabled:    that.Opponent.Enabled,
			TurnSlot:   slot,
			Difficulty: entity.ParseDifficulty(that.Opponent.Difficulty),
		},
	}, nil
}
