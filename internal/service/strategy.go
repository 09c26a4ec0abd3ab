package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/minimax"
	"github.com/rocketscienceinc/xo-engine/internal/random"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

var ErrHumanNeedsConsole = errors.New("human strategy needs an input source and a prompter")

// Strategy chooses a blank cell for the side to move. It never modifies the board.
type Strategy interface {
	Choose(board *tictactoe.Board, side entity.Side) (entity.Position, error)
}

// Options carries what the strategies may need. Rand is required for every kind except human,
// Input and Prompter only for human.
type Options struct {
	Logger   *slog.Logger
	Rand     random.Source
	DepthCap int
	Input    LineReader
	Prompter Prompter
}

// New - builds the strategy for the given kind.
func New(kind entity.StrategyKind, opts Options) (Strategy, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch kind {
	case entity.StrategyHuman:
		if opts.Input == nil || opts.Prompter == nil {
			return nil, ErrHumanNeedsConsole
		}
		return NewHuman(opts.Input, opts.Prompter), nil
	case entity.StrategyRandom:
		return NewRandom(opts.Rand), nil
	case entity.StrategyHeuristic:
		return NewHeuristic(opts.Rand), nil
	case entity.StrategySearch:
		engine := minimax.New(opts.DepthCap, opts.Rand)
		return NewSearch(logger.With("component", "search"), engine), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, kind)
	}
}
