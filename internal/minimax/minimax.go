// Package minimax implements exhaustive negamax search over tic-tac-toe boards with a ply cap
// and uniform random tie-breaking among equally good moves.
//
// The cap is exact on a 3x3 board (a game never lasts longer than 9 plies). On larger boards
// subtrees below the cap are scored as neutral, which makes the result an approximation.
package minimax

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/random"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

// DefaultDepthCap is the number of cells of a classic board.
const DefaultDepthCap = 9

const (
	ScoreLoss = -1
	ScoreDraw = 0
	ScoreWin  = 1
)

// Move is a candidate position with its score from the mover's point of view.
type Move struct {
	Position entity.Position
	Score    int
}

type Engine struct {
	depthCap int
	rng      random.Source
	nodes    int
}

// New - creates an engine. A depth cap below 1 falls back to DefaultDepthCap.
func New(depthCap int, rng random.Source) *Engine {
	if depthCap < 1 {
		depthCap = DefaultDepthCap
	}

	return &Engine{
		depthCap: depthCap,
		rng:      rng,
	}
}

func (that *Engine) DepthCap() int {
	return that.depthCap
}

// Nodes - number of boards evaluated by the last BestMove call.
func (that *Engine) Nodes() int {
	return that.nodes
}

// BestMove - returns an optimal position for the side together with its score in {-1, 0, 1}.
func (that *Engine) BestMove(board *tictactoe.Board, side entity.Side) (entity.Position, int, error) {
	if !side.Valid() {
		return entity.Position{}, 0, fmt.Errorf("invalid side %d", side)
	}

	if !board.HasBlanks() {
		return entity.Position{}, 0, apperror.ErrNoLegalMove
	}

	that.nodes = 0
	move := that.search(board, side, 0)

	return move.Position, move.Score, nil
}

func (that *Engine) search(board *tictactoe.Board, side entity.Side, depth int) Move {
	blanks := board.Blanks()
	candidates := make([]Move, 0, len(blanks))

	for i, pos := range blanks {
		next := board.With(pos, side)
		that.nodes++

		switch next.State() {
		case side.WinState():
			return that.pickWin(board, side, pos, blanks[i+1:])
		case entity.StateDraw:
			// the board just filled up, so this is the only candidate
			return Move{Position: pos, Score: ScoreDraw}
		case side.Opponent().WinState():
			candidates = append(candidates, Move{Position: pos, Score: ScoreLoss})
			continue
		case entity.StateIncomplete:
		}

		score := ScoreDraw
		if depth+1 < that.depthCap {
			score = -that.search(next, side.Opponent(), depth+1).Score
		}

		candidates = append(candidates, Move{Position: pos, Score: score})
	}

	return that.pickBest(candidates)
}

// pickWin - the first immediate win ends the search at this ply. The remaining blanks are only
// checked for other immediate wins so the choice among them stays uniform.
func (that *Engine) pickWin(board *tictactoe.Board, side entity.Side, first entity.Position, rest []entity.Position) Move {
	wins := []entity.Position{first}
	for _, pos := range rest {
		that.nodes++
		if board.With(pos, side).CheckWin(side) {
			wins = append(wins, pos)
		}
	}

	return Move{Position: random.Pick(that.rng, wins), Score: ScoreWin}
}

// pickBest - sorts candidates ascending by score and picks uniformly among the best ones.
func (that *Engine) pickBest(candidates []Move) Move {
	slices.SortStableFunc(candidates, func(a, b Move) int {
		return cmp.Compare(a.Score, b.Score)
	})

	best := candidates[len(candidates)-1].Score
	top := len(candidates) - 1
	for top > 0 && candidates[top-1].Score == best {
		top--
	}

	return random.Pick(that.rng, candidates[top:])
}
