package caro

import (
	"fmt"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
	"github.com/rocketscienceinc/caro-engine/internal/service"
)

// MoveSource picks the automated opponent's move among the legal ones.
type MoveSource interface {
	ChooseMove(moves []entity.Move) (entity.Move, error)
}

// Engine owns the board, the turn state and the rules of one game.
// It is not safe for concurrent use.
type Engine struct {
	board            *entity.Board
	winningCondition int
	startingSymbol   entity.Symbol

	currentSymbol entity.Symbol
	turn          entity.TurnSlot
	history       []entity.Move

	opponent OpponentConfig
	source   MoveSource
}

// NewEngine - creates an engine with an empty board. A nil source falls back
// to the uniform random bot.
func NewEngine(conf Config, source MoveSource) (*Engine, error) {
	conf = conf.withDefaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}

	if source == nil {
		source = service.NewBotService(nil)
	}

	engine := &Engine{
		board:            entity.NewBoard(conf.Rows, conf.Cols),
		winningCondition: conf.WinningCondition,
		startingSymbol:   conf.StartingSymbol,
		opponent:         conf.Opponent,
		source:           source,
	}
	engine.Reset()

	return engine, nil
}

// Reset - clears the board and history and gives the move back to the configured starting symbol.
func (that *Engine) Reset() {
	that.board.Clear()
	that.history = nil
	that.turn = entity.FirstSlot
	that.currentSymbol = that.startingSymbol
}

// PossibleMoves - returns all empty cells in row-major order.
func (that *Engine) PossibleMoves() []entity.Move {
	return that.board.EmptyCells()
}

func (that *Engine) Rows() [][]entity.Symbol {
	return that.board.LinesByRow()
}

func (that *Engine) Columns() [][]entity.Symbol {
	return that.board.LinesByColumn()
}

func (that *Engine) Diagonals() [][]entity.Symbol {
	return that.board.LinesByDiagonal()
}

// IsTerminate - true when the board is full. A full board can still hold a winner.
func (that *Engine) IsTerminate() bool {
	return that.board.IsFull()
}

// Winner - returns the current outcome of the game.
func (that *Engine) Winner() entity.Outcome {
	return determineOutcome(that.board, that.winningCondition)
}

// MakeMove - places the current symbol at (row, col) and passes the turn.
// A move onto an occupied cell is ignored.
func (that *Engine) MakeMove(row, col int) error {
	placed, err := that.board.Place(row, col, that.currentSymbol)
	if err != nil {
		return fmt.Errorf("could not make move: %w", err)
	}

	if !placed {
		return nil
	}

	that.history = append(that.history, entity.Move{Row: row, Col: col, Symbol: that.currentSymbol})
	that.currentSymbol = that.currentSymbol.Opponent()
	that.turn = that.turn.Next()

	return nil
}

// SetDifficulty - unknown levels fall back to medium.
func (that *Engine) SetDifficulty(level entity.Difficulty) {
	if !level.IsValid() {
		level = DefaultDifficulty
	}
	that.opponent.Difficulty = level
}

func (that *Engine) SetDifficultyLabel(label string) {
	that.opponent.Difficulty = entity.ParseDifficulty(label)
}

func (that *Engine) EnableAutomatedOpponent(enabled bool) {
	that.opponent.Enabled = enabled
}

func (that *Engine) SetOpponentTurnSlot(slot entity.TurnSlot) error {
	if !slot.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidTurnSlot, slot)
	}
	that.opponent.TurnSlot = slot

	return nil
}

// PlayRandomMove - lets the automated opponent move when it is enabled and on
// its turn slot. It reports whether a move was made; a full board yields
// ErrNoAvailableMoves and leaves the game untouched.
func (that *Engine) PlayRandomMove() (bool, error) {
	if !that.opponent.Enabled || that.opponent.TurnSlot != that.turn {
		return false, nil
	}

	moves := that.PossibleMoves()
	if len(moves) == 0 {
		return false, apperror.ErrNoAvailableMoves
	}

	move, err := that.source.ChooseMove(moves)
	if err != nil {
		return false, fmt.Errorf("opponent failed to choose move: %w", err)
	}

	if err = that.MakeMove(move.Row, move.Col); err != nil {
		return false, fmt.Errorf("opponent failed to make move: %w", err)
	}

	return true, nil
}

// OpponentSymbol - the symbol the automated opponent plays, derived from the
// configured starting symbol and the opponent's turn slot.
func (that *Engine) OpponentSymbol() entity.Symbol {
	if that.opponent.TurnSlot == entity.FirstSlot {
		return that.startingSymbol
	}
	return that.startingSymbol.Opponent()
}

func (that *Engine) CurrentSymbol() entity.Symbol {
	return that.currentSymbol
}

func (that *Engine) Turn() entity.TurnSlot {
	return that.turn
}

func (that *Engine) WinningCondition() int {
	return that.winningCondition
}

func (that *Engine) Dimensions() (int, int) {
	return that.board.Rows(), that.board.Cols()
}

// History - returns the moves played so far, oldest first.
func (that *Engine) History() []entity.Move {
	return append([]entity.Move(nil), that.history...)
}

func (that *Engine) Difficulty() entity.Difficulty {
	return that.opponent.Difficulty
}

func (that *Engine) OpponentEnabled() bool {
	return that.opponent.Enabled
}

func (that *Engine) OpponentTurnSlot() entity.TurnSlot {
	return that.opponent.TurnSlot
}

func (that *Engine) String() string {
	return that.board.String()
}
