package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/minimax"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

// Search delegates to the minimax engine.
type Search struct {
	logger *slog.Logger
	engine *minimax.Engine
}

func NewSearch(logger *slog.Logger, engine *minimax.Engine) *Search {
	return &Search{
		logger: logger,
		engine: engine,
	}
}

func (that *Search) Choose(board *tictactoe.Board, side entity.Side) (entity.Position, error) {
	pos, score, err := that.engine.BestMove(board, side)
	if err != nil {
		return entity.Position{}, fmt.Errorf("search failed: %w", err)
	}

	that.logger.Debug("search finished",
		"side", side.String(),
		"cell", board.PositionLabel(pos),
		"score", score,
		"nodes", that.engine.Nodes(),
	)

	return pos, nil
}
