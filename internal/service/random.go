package service

import (
	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/random"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

// Random picks a blank cell uniformly.
type Random struct {
	rng random.Source
}

func NewRandom(rng random.Source) *Random {
	return &Random{
		rng: rng,
	}
}

func (that *Random) Choose(board *tictactoe.Board, _ entity.Side) (entity.Position, error) {
	availableCells := board.Blanks()
	if len(availableCells) == 0 {
		return entity.Position{}, apperror.ErrNoLegalMove
	}

	return random.Pick(that.rng, availableCells), nil
}
