package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
)

// Symbol is the content of a board cell and the mark a player puts on it.
type Symbol uint8

const (
	Empty Symbol = iota
	PlayerX
	PlayerO
)

func (that Symbol) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent - returns the other player's symbol. Empty stays Empty.
func (that Symbol) Opponent() Symbol {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// ParseSymbol - converts "X" or "O" (any case) into a player symbol.
func ParseSymbol(value string) (Symbol, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, value)
	}
}

// Difficulty of the automated opponent. Every level plays the same random strategy.
type Difficulty uint8

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// ParseDifficulty - maps a label to a level, unknown labels become Medium.
func ParseDifficulty(label string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

func (that Difficulty) IsValid() bool {
	return that >= Easy && that <= Hard
}

func (that Difficulty) String() string {
	switch that {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// TurnSlot is one of the two alternating turn positions.
type TurnSlot uint8

const (
	FirstSlot  TurnSlot = 1
	SecondSlot TurnSlot = 2
)

func (that TurnSlot) IsValid() bool {
	return that == FirstSlot || that == SecondSlot
}

// Next - returns the slot that moves after this one.
func (that TurnSlot) Next() TurnSlot {
	if that == FirstSlot {
		return SecondSlot
	}
	return FirstSlot
}

// Outcome of a position. The numeric codes are stable and used in logs.
type Outcome int

const (
	InProgress Outcome = -1
	WinnerX    Outcome = 0
	WinnerO    Outcome = 1
	Draw       Outcome = 2
)

// OutcomeFor - returns the winning outcome for a player symbol.
func OutcomeFor(symbol Symbol) Outcome {
	switch symbol {
	case PlayerX:
		return WinnerX
	case PlayerO:
		return WinnerO
	default:
		return InProgress
	}
}

// Winner - returns the symbol that won, if any.
func (that Outcome) Winner() (Symbol, bool) {
	switch that {
	case WinnerX:
		return PlayerX, true
	case WinnerO:
		return PlayerO, true
	default:
		return Empty, false
	}
}

func (that Outcome) IsFinished() bool {
	return that != InProgress
}

func (that Outcome) String() string {
	switch that {
	case WinnerX:
		return "X wins"
	case WinnerO:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Move is a single placed mark.
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Symbol Symbol `json:"symbol"`
}
