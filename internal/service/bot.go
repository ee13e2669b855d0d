package service

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

type BotService interface {
	ChooseMove(moves []entity.Move) (entity.Move, error)
}

type botService struct {
	rng *rand.Rand
}

// NewBotService - creates a bot that picks uniformly among the legal moves.
// A nil rng is seeded from the clock.
func NewBotService(rng *rand.Rand) BotService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &botService{rng: rng}
}

func (that *botService) ChooseMove(moves []entity.Move) (entity.Move, error) {
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return moves[that.rng.Intn(len(moves))], nil
}
