package service

import (
	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/random"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

// Heuristic looks one ply ahead: it takes an immediate win, otherwise blocks an immediate
// win of the opponent, otherwise plays at random.
type Heuristic struct {
	fallback *Random
}

func NewHeuristic(rng random.Source) *Heuristic {
	return &Heuristic{
		fallback: NewRandom(rng),
	}
}

func (that *Heuristic) Choose(board *tictactoe.Board, side entity.Side) (entity.Position, error) {
	blanks := board.Blanks()
	if len(blanks) == 0 {
		return entity.Position{}, apperror.ErrNoLegalMove
	}

	if pos, ok := firstWinning(board, blanks, side); ok {
		return pos, nil
	}

	if pos, ok := firstWinning(board, blanks, side.Opponent()); ok {
		return pos, nil
	}

	return that.fallback.Choose(board, side)
}

// firstWinning - first blank, in enumeration order, that completes a line for the side.
func firstWinning(board *tictactoe.Board, blanks []entity.Position, side entity.Side) (entity.Position, bool) {
	for _, pos := range blanks {
		if board.With(pos, side).CheckWin(side) {
			return pos, true
		}
	}

	return entity.Position{}, false
}
