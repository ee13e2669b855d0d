package caro

import (
	"fmt"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

const (
	DefaultWinningCondition = 5
	DefaultStartingSymbol   = entity.PlayerX
	DefaultOpponentTurnSlot = entity.SecondSlot
	DefaultDifficulty       = entity.Medium
)

// Config describes a game. Zero values are replaced by the Default* constants.
type Config struct {
	Rows             int
	Cols             int
	WinningCondition int
	StartingSymbol   entity.Symbol
	Opponent         OpponentConfig
}

// OpponentConfig configures the automated opponent. It is disabled by default.
type OpponentConfig struct {
	Enabled    bool
	TurnSlot   entity.TurnSlot
	Difficulty entity.Difficulty
}

func (that Config) withDefaults() Config {
	if that.WinningCondition == 0 {
		that.WinningCondition = DefaultWinningCondition
	}

	if that.StartingSymbol == entity.Empty {
		that.StartingSymbol = DefaultStartingSymbol
	}

	if that.Opponent.TurnSlot == 0 {
		that.Opponent.TurnSlot = DefaultOpponentTurnSlot
	}

	if !that.Opponent.Difficulty.IsValid() {
		that.Opponent.Difficulty = DefaultDifficulty
	}

	return that
}

func (that Config) validate() error {
	if that.Rows < 1 || that.Cols < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", apperror.ErrInvalidConfig, that.Rows, that.Cols)
	}

	if longest := max(that.Rows, that.Cols); that.WinningCondition < 1 || that.WinningCondition > longest {
		return fmt.Errorf("%w: winning condition %d must be between 1 and %d",
			apperror.ErrInvalidConfig, that.WinningCondition, longest)
	}

	if that.StartingSymbol != entity.PlayerX && that.StartingSymbol != entity.PlayerO {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfig, apperror.ErrInvalidSymbol)
	}

	if !that.Opponent.TurnSlot.IsValid() {
		return fmt.Errorf("%w: %w %d", apperror.ErrInvalidConfig, apperror.ErrInvalidTurnSlot, that.Opponent.TurnSlot)
	}

	return nil
}
