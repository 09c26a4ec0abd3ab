package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/random"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

// StrategyFactory builds the pair of strategies for one worker on top of its own generator.
type StrategyFactory func(rng random.Source) (strategyA, strategyB Strategy, err error)

// Arena plays many independent rounds between two strategies across worker goroutines.
// Workers share nothing: each one owns its board, strategies, generator and scheduler.
type Arena struct {
	logger *slog.Logger

	games     int
	workers   int
	seed      uint64
	boardSize int
	factory   StrategyFactory
}

func NewArena(logger *slog.Logger, games, workers int, seed uint64, boardSize int, factory StrategyFactory) *Arena {
	if workers < 1 {
		workers = 1
	}

	return &Arena{
		logger:    logger.With("component", "arena"),
		games:     games,
		workers:   workers,
		seed:      seed,
		boardSize: boardSize,
		factory:   factory,
	}
}

// Run - plays all games and returns the summed tally. Cancellation is checked between rounds.
func (that *Arena) Run(ctx context.Context) (entity.Tally, error) {
	group, ctx := errgroup.WithContext(ctx)

	results := make([]entity.Tally, that.workers)
	perWorker, rest := that.games/that.workers, that.games%that.workers

	for worker := range that.workers {
		games := perWorker
		if worker < rest {
			games++
		}

		group.Go(func() error {
			tally, err := that.runWorker(ctx, worker, games)
			results[worker] = tally

			return err
		})
	}

	err := group.Wait()

	var total entity.Tally
	for _, tally := range results {
		total = total.Add(tally)
	}

	if err != nil {
		return total, fmt.Errorf("arena stopped after %d games: %w", total.Total(), err)
	}

	that.logger.Info("arena finished",
		"games", total.Total(),
		"wins_x", total.WinsA,
		"wins_o", total.WinsB,
		"draws", total.Draws,
	)

	return total, nil
}

func (that *Arena) runWorker(ctx context.Context, worker, games int) (entity.Tally, error) {
	log := that.logger.With("worker", worker)

	rng := random.NewStream(that.seed, worker)

	board, err := tictactoe.NewBoard(that.boardSize)
	if err != nil {
		return entity.Tally{}, fmt.Errorf("worker %d: %w", worker, err)
	}

	strategyA, strategyB, err := that.factory(rng)
	if err != nil {
		return entity.Tally{}, fmt.Errorf("worker %d: failed to build strategies: %w", worker, err)
	}

	scheduler := NewScheduler(log, board, strategyA, strategyB, rng, nil)
	for range games {
		if err = ctx.Err(); err != nil {
			return scheduler.Tally(), err
		}

		if _, err = scheduler.PlayRound(); err != nil {
			return scheduler.Tally(), fmt.Errorf("worker %d: %w", worker, err)
		}
	}

	log.Debug("worker finished", "games", games)

	return scheduler.Tally(), nil
}
