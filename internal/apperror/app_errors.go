package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("cell is out of range")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidConfig    = errors.New("invalid game config")
	ErrInvalidSymbol    = errors.New("invalid player symbol")
	ErrInvalidTurnSlot  = errors.New("invalid turn slot")
)
